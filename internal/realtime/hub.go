package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/marketplace-api/internal/config"
)

// Hub fans row-change events out to per-party channels over redis
// pub/sub. Delivery is at-least-once from the consumer's point of view;
// subscribers reconcile idempotently (see Feed).
type Hub struct {
	client *redis.Client
}

func NewHub(cfg *config.Config) *Hub {
	return &Hub{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}),
	}
}

func (h *Hub) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

func (h *Hub) Close() error {
	return h.client.Close()
}

func (h *Hub) Publish(ctx context.Context, channel string, ev ChangeEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return h.client.Publish(ctx, channel, payload).Err()
}

// Broadcast publishes best-effort to every channel. A failed publish is
// logged and swallowed; the committed mutation is never rolled back for it.
func (h *Hub) Broadcast(ctx context.Context, ev ChangeEvent, channels ...string) {
	for _, ch := range channels {
		if err := h.Publish(ctx, ch, ev); err != nil {
			log.Printf("realtime publish failed on %s: %v", ch, err)
		}
	}
}

// ===============================
// Subscription
// ===============================

// Subscription is a scoped resource: events stop and the underlying
// pub/sub connection is released on Close or when the subscribe context
// is cancelled, whichever comes first.
type Subscription struct {
	pubsub *redis.PubSub
	events chan ChangeEvent
}

func (h *Hub) Subscribe(ctx context.Context, channels ...string) (*Subscription, error) {
	pubsub := h.client.Subscribe(ctx, channels...)

	// force the SUBSCRIBE round trip so a dead broker fails here,
	// not silently on the first missed event
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan ChangeEvent, 32),
	}

	go sub.pump(ctx)
	return sub, nil
}

func (s *Subscription) pump(ctx context.Context) {
	defer close(s.events)

	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			_ = s.pubsub.Close()
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var ev ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("realtime: dropping malformed event on %s: %v", msg.Channel, err)
				continue
			}

			select {
			case s.events <- ev:
			case <-ctx.Done():
				_ = s.pubsub.Close()
				return
			}
		}
	}
}

func (s *Subscription) Events() <-chan ChangeEvent {
	return s.events
}

func (s *Subscription) Close() error {
	return s.pubsub.Close()
}
