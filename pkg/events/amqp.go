package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Jacobbrewer1/artemis/pkg/logging"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the exchange events are published to when none is configured.
const DefaultExchange = "artemis.tickets"

// ErrPublisherClosed is returned when publishing on a closed publisher.
var ErrPublisherClosed = errors.New("publisher is closed")

type amqpPublisher struct {
	l *slog.Logger

	// mut guards ch, channels are not safe for concurrent publishing.
	mut sync.Mutex

	conn *amqp.Connection
	ch   *amqp.Channel

	exchange string
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange that events are published to.
func NewAMQPPublisher(l *slog.Logger, url, exchange string) (Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error dialing amqp broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error opening amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("error declaring exchange %s: %w", exchange, err)
	}

	return &amqpPublisher{
		l:        l.With(slog.String("exchange", exchange)),
		conn:     conn,
		ch:       ch,
		exchange: exchange,
	}, nil
}

// publishing builds the message for an event.
func publishing(e *Event) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("error marshalling event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID,
		Timestamp:    time.Time(e.Timestamp),
		Type:         string(e.Type),
		Body:         body,
	}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, e *Event) error {
	msg, err := publishing(e)
	if err != nil {
		return err
	}

	p.mut.Lock()
	defer p.mut.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		return ErrPublisherClosed
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, string(e.Type), false, false, msg); err != nil {
		return fmt.Errorf("error publishing event: %w", err)
	}

	p.l.Debug("Published event",
		slog.String("event_id", e.ID),
		slog.String(logging.KeyAction, string(e.Type)),
	)
	return nil
}

// Ping reports whether the connection to the broker is still open.
func (p *amqpPublisher) Ping(context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		return ErrPublisherClosed
	}
	return nil
}

func (p *amqpPublisher) Close() error {
	p.mut.Lock()
	defer p.mut.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	p.ch = nil
	return errors.Join(errs...)
}
