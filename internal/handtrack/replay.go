package handtrack

import (
	"context"
	"time"
)

// Replay publishes each sample of tr into dst when its timestamp comes due,
// scaled by speed (2 plays twice as fast). It returns nil once every sample
// was delivered, or ctx's error if cancelled first.
func Replay(ctx context.Context, tr *Trace, dst *Latest, speed float64) error {
	if speed <= 0 {
		speed = 1
	}
	start := time.Now()

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for _, s := range tr.Samples {
		due := start.Add(time.Duration(s.T / speed * float64(time.Second)))
		if wait := time.Until(due); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		dst.Store(s.HandSample)
	}
	return nil
}
