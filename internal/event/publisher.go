package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	publishTimeout = 2 * time.Second
	// queueSize bounds the events waiting for the broker; beyond it Notify
	// drops events instead of blocking the quiz turn.
	queueSize = 256
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// RatingPublisher sends quiz lifecycle events to the rating subsystem over a
// RabbitMQ topic exchange. Events are queued and published by one background
// goroutine. With no URI configured it only logs the events.
type RatingPublisher struct {
	mu       sync.RWMutex
	conn     *amqp091.Connection
	channel  amqpChannel
	exchange string
	enabled  bool
	closed   bool
	queue    chan RatingMessage
	done     chan struct{}
}

func NewRatingPublisher(rabbitURI, exchange string) (*RatingPublisher, error) {
	if rabbitURI == "" {
		log.Warn().Msg("RabbitMQ URI is empty, rating events will only be logged")
		return &RatingPublisher{exchange: exchange}, nil
	}

	conn, err := amqp091.Dial(rabbitURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	log.Info().Str("exchange", exchange).Msg("Rating event publisher connected")
	p := newQueuedPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

func newQueuedPublisher(ch amqpChannel, exchange string) *RatingPublisher {
	p := &RatingPublisher{
		channel:  ch,
		exchange: exchange,
		enabled:  true,
		queue:    make(chan RatingMessage, queueSize),
		done:     make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *RatingPublisher) run() {
	defer close(p.done)
	for msg := range p.queue {
		if err := p.publish(context.Background(), msg); err != nil {
			log.Error().Err(err).Int64("userID", msg.UserID).Str("event", string(msg.Type)).Msg("Failed to publish rating event")
		}
	}
}

// Notify queues a rating event and returns at once. Failures are logged and
// never returned: quiz progress must not depend on the rating subsystem.
func (p *RatingPublisher) Notify(_ context.Context, userID int64, kind domain.RatingEvent) {
	msg := NewRatingMessage(userID, kind, time.Now())
	if !p.enabled {
		log.Debug().Int64("userID", userID).Str("event", string(kind)).Msg("Rating event (publishing disabled)")
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		log.Warn().Int64("userID", userID).Str("event", string(kind)).Msg("Rating publisher closed, dropping event")
		return
	}
	select {
	case p.queue <- msg:
	default:
		log.Warn().Int64("userID", userID).Str("event", string(kind)).Msg("Rating event queue full, dropping event")
	}
}

func (p *RatingPublisher) publish(ctx context.Context, msg RatingMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal rating event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(
		pubCtx,
		p.exchange,
		msg.RoutingKey(),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msg.ID,
			Timestamp:    msg.OccurredAt,
			Type:         string(msg.Type),
			Body:         body,
		},
	)
}

// Close stops accepting events, waits for the queued ones to be published
// and then closes the broker connection.
func (p *RatingPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	if p.queue != nil {
		close(p.queue)
	}
	p.mu.Unlock()

	if p.done != nil {
		<-p.done
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
