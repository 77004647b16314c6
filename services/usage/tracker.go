package usage

import (
	"context"
	"sync/atomic"
	"time"

	"aria/utils"

	"go.uber.org/zap"
)

// Tracker is the fire-and-forget usage reporter the voice dispatcher uses.
// Tracking is armed once after login and stays armed until re-login; calls
// made while unarmed are silently skipped, and reporting errors never reach
// the caller.
type Tracker struct {
	Service UsageService

	armed atomic.Bool
}

func NewTracker(svc UsageService) *Tracker {
	return &Tracker{Service: svc}
}

// Arm enables tracking. Called after a successful login.
func (t *Tracker) Arm() {
	t.armed.Store(true)
}

// Disarm disables tracking, e.g. on logout.
func (t *Tracker) Disarm() {
	t.armed.Store(false)
}

// Track reports one feature use in the background.
func (t *Tracker) Track(userID, feature string) {
	if userID == "" || !t.armed.Load() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := t.Service.Increment(ctx, userID, feature); err != nil {
			// Silent fail for tracking.
			utils.GetLogger().Debug("usage tracking failed",
				zap.String("feature", feature), zap.Error(err))
		}
	}()
}
