package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

// HandlerFunc processes one document event. A nil return acknowledges the
// delivery; an error rejects it without requeue (the platform's redelivery
// policy, not a tight loop, is the retry mechanism).
type HandlerFunc func(ctx context.Context, ev DocumentEvent) error

type Consumer struct {
	url       string
	rdb       *redis.Client
	handle    HandlerFunc
	dedupeTTL time.Duration
}

// NewConsumer builds the queue consumer. rdb may be nil; the dedupe guard
// is best-effort and correctness never depends on it.
func NewConsumer(url string, rdb *redis.Client, dedupeTTL time.Duration, handle HandlerFunc) *Consumer {
	return &Consumer{url: url, rdb: rdb, handle: handle, dedupeTTL: dedupeTTL}
}

// Run connects, consumes, and reconnects with backoff until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		conn, err := amqp.Dial(c.url)
		if err != nil {
			log.Printf("consumer: dial broker failed: %v; retrying in %s", err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := c.consumeLoop(ctx, conn); err != nil {
			log.Printf("consumer: consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("consumer: set QoS failed: %v", err)
	}

	if err := declareTopology(ch); err != nil {
		return err
	}

	msgs, err := ch.Consume(QueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.process(ctx, d)
		}
	}
}

func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	var ev DocumentEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		// Malformed envelope: nothing a redelivery could fix.
		log.Printf("consumer: drop malformed event: %v", err)
		_ = d.Ack(false)
		return
	}

	if c.alreadyProcessed(ctx, ev.ID) {
		_ = d.Ack(false)
		return
	}

	if err := c.handle(ctx, ev); err != nil {
		// No requeue: the rejected delivery dead-letters to the dead queue,
		// where it can be inspected or shoveled back.
		log.Printf("consumer: handle %s %s event %s failed: %v", ev.Op, ev.Collection, ev.ID, err)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// alreadyProcessed marks the event id seen and reports whether it was seen
// before. Redis being down just means duplicate work, which every handler
// tolerates anyway.
func (c *Consumer) alreadyProcessed(ctx context.Context, id string) bool {
	if c.rdb == nil || id == "" {
		return false
	}
	set, err := c.rdb.SetNX(ctx, "events:processed:"+id, 1, c.dedupeTTL).Result()
	if err != nil {
		log.Printf("consumer: dedupe check for %s failed: %v", id, err)
		return false
	}
	return !set
}
