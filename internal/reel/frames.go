// Package reel drives the gesture controller frame by frame and renders the
// resulting camera motion to an image sequence.
package reel

import (
	"context"
	"fmt"
	"math"
	"time"

	"hand-showreel/internal/gesture"
	"hand-showreel/internal/handtrack"
)

// Frame is one tick of the render loop: the sample the controller saw and
// the transform it produced.
type Frame struct {
	Index     int                `json:"index"`
	Time      float64            `json:"time"`
	Delta     float64            `json:"delta"`
	Hand      gesture.HandSample `json:"hand"`
	Transform gesture.Transform  `json:"transform"`

	// Fresh is set by Play when a new sample arrived since the previous tick.
	Fresh bool `json:"fresh,omitempty"`
}

// MaxFPS bounds frame rates accepted by the frame loops.
const MaxFPS = 1000

// CheckFPS rejects frame rates outside (0, MaxFPS].
func CheckFPS(fps float64) error {
	if !(fps > 0) || fps > MaxFPS {
		return fmt.Errorf("reel: invalid fps %v: must be in (0, %d]", fps, MaxFPS)
	}
	return nil
}

// FrameCount is the number of ticks needed to cover duration at fps.
func FrameCount(fps, duration float64) int {
	if fps <= 0 || duration <= 0 {
		return 0
	}
	return int(math.Ceil(duration*fps - 1e-9))
}

// Simulate steps ctrl at a fixed 1/fps delta for duration seconds, reading
// the newest sample from src at each tick. The controller is the only state;
// the same source and starting transform always yield the same frames.
func Simulate(src handtrack.Source, ctrl *gesture.Controller, fps, duration float64) []Frame {
	n := FrameCount(fps, duration)
	delta := 1 / fps
	frames := make([]Frame, n)
	for k := range frames {
		t := float64(k) * delta
		hand := src.At(t)
		frames[k] = Frame{
			Index:     k,
			Time:      t,
			Delta:     delta,
			Hand:      hand,
			Transform: ctrl.Update(delta, hand),
		}
	}
	return frames
}

// Play runs a wall-clock frame loop at fps against a live sample mailbox,
// calling onFrame after each update. Delta is the measured time since the
// previous tick. It stops after n frames (n <= 0 runs until ctx ends).
func Play(ctx context.Context, ctrl *gesture.Controller, latest *handtrack.Latest, fps float64, n int, onFrame func(Frame)) error {
	if err := CheckFPS(fps); err != nil {
		return err
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / fps))
	defer ticker.Stop()

	start := time.Now()
	prev := start
	var lastSeq int64
	for k := 0; n <= 0 || k < n; k++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			seq := latest.Seq()
			hand := latest.Load()
			delta := now.Sub(prev).Seconds()
			prev = now
			f := Frame{
				Index:     k,
				Time:      now.Sub(start).Seconds(),
				Delta:     delta,
				Hand:      hand,
				Transform: ctrl.Update(delta, hand),
				Fresh:     seq != lastSeq,
			}
			lastSeq = seq
			if onFrame != nil {
				onFrame(f)
			}
		}
	}
	return nil
}
