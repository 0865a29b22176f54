package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"go-storefront/internal/models"
)

// RabbitPublisher publishes order events to a durable queue over a small
// pool of pre-opened channels.
type RabbitPublisher struct {
	conn     *amqp.Connection
	channels chan *amqp.Channel
	queue    string

	mu     sync.Mutex
	closed bool
}

// NewRabbitPublisher dials the broker, declares the queue and pre-opens
// poolSize channels.
func NewRabbitPublisher(url, queue string, poolSize int) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	p := &RabbitPublisher{
		conn:     conn,
		channels: make(chan *amqp.Channel, poolSize),
		queue:    queue,
	}
	for i := 0; i < poolSize; i++ {
		ch, err := p.openChannel()
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("open channel %d: %w", i, err)
		}
		p.channels <- ch
	}
	return p, nil
}

var _ Publisher = (*RabbitPublisher)(nil)

func (p *RabbitPublisher) openChannel() (*amqp.Channel, error) {
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	// Queue declaration is idempotent.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", p.queue, err)
	}
	return ch, nil
}

func (p *RabbitPublisher) getChannel() (*amqp.Channel, error) {
	select {
	case ch := <-p.channels:
		if ch.IsClosed() {
			return p.openChannel()
		}
		return ch, nil
	default:
		return nil, errors.New("no channels available")
	}
}

func (p *RabbitPublisher) putChannel(ch *amqp.Channel) {
	if ch == nil || ch.IsClosed() {
		return
	}
	// A publish may still hold a channel when Close runs; the pool channel
	// is never closed, so this send cannot panic. Channels returned after
	// Close are shut down here instead of pooled.
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		ch.Close()
		return
	}
	select {
	case p.channels <- ch:
	default:
		ch.Close()
	}
}

// OrderPlaced publishes the persisted order as JSON.
func (p *RabbitPublisher) OrderPlaced(ctx context.Context, order *models.Order) error {
	ch, err := p.getChannel()
	if err != nil {
		return err
	}
	defer p.putChannel(ch)

	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %d: %w", order.ID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish order %d: %w", order.ID, err)
	}
	log.Printf("Published order %d to queue %s", order.ID, p.queue)
	return nil
}

// Close drains the channel pool and closes the connection. It is safe to
// call more than once and while publishes are in flight.
func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	for {
		select {
		case ch := <-p.channels:
			ch.Close()
		default:
			if p.conn != nil {
				return p.conn.Close()
			}
			return nil
		}
	}
}
