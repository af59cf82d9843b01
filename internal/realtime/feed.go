package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel is the Redis pub/sub channel change events are published on.
const Channel = "hrd:changes"

// Actions mirrored from the database publication.
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Event is one row-level change notification.
type Event struct {
	ID     string    `json:"id"`
	Table  string    `json:"table"`
	Action string    `json:"action"`
	Row    any       `json:"row,omitempty"`
	At     time.Time `json:"at"`
}

// Feed publishes change events to websocket subscribers, an optional Redis
// channel, and an optional outbound webhook. A nil Redis client or empty
// webhook URL disables that sink; publish failures never fail the operation
// that produced the event.
type Feed struct {
	hub        *Hub
	rdb        *redis.Client
	webhookURL string
	http       *resty.Client
	log        *zap.Logger
}

func NewFeed(hub *Hub, rdb *redis.Client, webhookURL string, log *zap.Logger) *Feed {
	return &Feed{
		hub:        hub,
		rdb:        rdb,
		webhookURL: webhookURL,
		http:       resty.New().SetTimeout(5 * time.Second),
		log:        log,
	}
}

// Publish emits one change event. The websocket broadcast is immediate; the
// Redis and webhook sinks run detached from the request lifecycle so a slow
// sink cannot delay the HTTP response.
func (f *Feed) Publish(table, action string, row any) {
	ev := Event{
		ID:     uuid.NewString(),
		Table:  table,
		Action: action,
		Row:    row,
		At:     time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		f.log.Error("marshal change event", zap.Error(err))
		return
	}

	if f.hub != nil {
		f.hub.Broadcast(data)
	}

	if f.rdb == nil && f.webhookURL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if f.rdb != nil {
			if err := f.rdb.Publish(ctx, Channel, data).Err(); err != nil {
				f.log.Warn("redis publish failed", zap.Error(err), zap.String("table", table))
			}
		}
		if f.webhookURL != "" {
			if _, err := f.http.R().
				SetContext(ctx).
				SetHeader("Content-Type", "application/json").
				SetBody(data).
				Post(f.webhookURL); err != nil {
				f.log.Warn("change webhook failed", zap.Error(err), zap.String("table", table))
			}
		}
	}()
}
