package device

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"aria/models"
	"aria/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	// TypeDirectivePush is the asynq task fired after a directive is queued.
	TypeDirectivePush = "directive:push"

	// queueCap bounds each per-user directive list.
	queueCap = 100
)

// DirectivePushPayload is the asynq payload for TypeDirectivePush.
type DirectivePushPayload struct {
	UserID string `json:"userId"`
}

// DirectiveGateway delivers device-automation directives: every effect the
// dispatcher requests is queued per user in Redis and the device is nudged
// over FCM to drain its queue.
type DirectiveGateway struct {
	Queue *redis.Client
	Tasks *asynq.Client
}

func NewDirectiveGateway(queue *redis.Client, tasks *asynq.Client) *DirectiveGateway {
	return &DirectiveGateway{Queue: queue, Tasks: tasks}
}

func directiveKey(userID string) string {
	return "device:directives:" + userID
}

// Push appends one directive to the user's queue, trims it to capacity, and
// enqueues a push nudge.
func (g *DirectiveGateway) Push(ctx context.Context, userID string, d models.Directive) error {
	d.CreatedAt = time.Now().UnixMilli()
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode directive: %w", err)
	}

	key := directiveKey(userID)
	pipe := g.Queue.TxPipeline()
	pipe.RPush(ctx, key, raw)
	pipe.LTrim(ctx, key, -queueCap, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to queue directive: %w", err)
	}

	if g.Tasks != nil {
		payload, _ := json.Marshal(DirectivePushPayload{UserID: userID})
		if _, err := g.Tasks.EnqueueContext(ctx, asynq.NewTask(TypeDirectivePush, payload)); err != nil {
			// The queue entry survives; the device picks it up on its next poll.
			utils.GetLogger().Warn("failed to enqueue directive push", zap.Error(err))
		}
	}
	return nil
}

// Drain pops all pending directives for the user, oldest first.
func (g *DirectiveGateway) Drain(ctx context.Context, userID string) ([]models.Directive, error) {
	key := directiveKey(userID)
	pipe := g.Queue.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to drain directives: %w", err)
	}

	raws, err := items.Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read directives: %w", err)
	}
	directives := make([]models.Directive, 0, len(raws))
	for _, raw := range raws {
		var d models.Directive
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			utils.GetLogger().Warn("dropping undecodable directive", zap.Error(err))
			continue
		}
		directives = append(directives, d)
	}
	return directives, nil
}

// --- voice collaborator implementations ---

// SendMessage queues a launch directive for the channel's messaging app.
func (g *DirectiveGateway) SendMessage(ctx context.Context, userID string, channel models.Channel, target, body string) error {
	return g.Push(ctx, userID, models.Directive{
		Kind: models.DirectiveLaunch,
		App:  string(channel),
		URI:  MessageURI(channel, target, body),
	})
}

// PlaceCall queues a dial directive on the given SIM slot.
func (g *DirectiveGateway) PlaceCall(ctx context.Context, userID, number string, simSlot int) error {
	return g.Push(ctx, userID, models.Directive{
		Kind:    models.DirectiveCall,
		App:     "DIALER",
		URI:     "tel:" + CleanPhone(number),
		SimSlot: simSlot,
	})
}

// BookCab queues a launch directive for the ride-hailing app.
func (g *DirectiveGateway) BookCab(ctx context.Context, userID string, provider models.CabProvider, destination string) error {
	return g.Push(ctx, userID, models.Directive{
		Kind: models.DirectiveLaunch,
		App:  string(provider),
		URI:  CabURI(provider, destination),
	})
}

// LaunchSearch queues a launch directive for an app search.
func (g *DirectiveGateway) LaunchSearch(ctx context.Context, userID, app, query string) error {
	uri, ok := SearchURI(app, query)
	if !ok {
		return fmt.Errorf("app protocol not defined for %s", strings.ToUpper(app))
	}
	return g.Push(ctx, userID, models.Directive{
		Kind: models.DirectiveLaunch,
		App:  strings.ToUpper(app),
		URI:  uri,
	})
}

// Speak queues a TTS directive. Best effort: the directive sits in the queue
// until the device's voice engine drains it.
func (g *DirectiveGateway) Speak(ctx context.Context, userID, text string) {
	err := g.Push(ctx, userID, models.Directive{
		Kind: models.DirectiveSpeak,
		Text: text,
	})
	if err != nil {
		utils.GetLogger().Warn("failed to queue speak directive", zap.Error(err))
	}
}
