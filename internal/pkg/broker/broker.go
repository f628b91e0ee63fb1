package broker

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/nebengcab/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/pkg/models"
	natspkg "github.com/piresc/nebengcab/internal/pkg/nats"
	nsqpkg "github.com/piresc/nebengcab/internal/pkg/nsq"
)

// Supported broker types
const (
	TypeNATS = "nats"
	TypeNSQ  = "nsq"
)

// Publisher publishes messages to the configured broker
type Publisher interface {
	Publish(subject string, data []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Handler processes one message payload
type Handler func(data []byte) error

// Subscription stops every underlying subscription on Close
type Subscription struct {
	closers []func() error
}

// Close stops the subscriptions and closes the connection
func (s *Subscription) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func brokerType(cfg *models.Config) (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(cfg.Broker.Type)); t {
	case "", TypeNATS:
		return TypeNATS, nil
	case TypeNSQ:
		return TypeNSQ, nil
	default:
		return "", fmt.Errorf("unknown broker type %q", cfg.Broker.Type)
	}
}

// NewPublisher connects a publisher for cfg.Broker.Type. NATS is the default.
func NewPublisher(cfg *models.Config, name string) (Publisher, error) {
	t, err := brokerType(cfg)
	if err != nil {
		return nil, err
	}

	if t == TypeNSQ {
		producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			return nil, err
		}
		return producer, nil
	}

	client, err := natspkg.NewClient(cfg.NATS.URL, name)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// guardedPublisher fails fast while the broker keeps rejecting publishes
type guardedPublisher struct {
	Publisher
	breaker *circuitbreaker.CircuitBreaker
}

// Guard wraps pub so publishes go through breaker. Ping and Close are not guarded.
func Guard(pub Publisher, breaker *circuitbreaker.CircuitBreaker) Publisher {
	return &guardedPublisher{Publisher: pub, breaker: breaker}
}

func (g *guardedPublisher) Publish(subject string, data []byte) error {
	return g.breaker.Execute(context.Background(), func(context.Context) error {
		return g.Publisher.Publish(subject, data)
	})
}

// Subscribe delivers every message on subjects to handler. Consumers sharing
// group split the stream between them: a NATS queue group or an NSQ channel.
func Subscribe(cfg *models.Config, name, group string, subjects []string, handler Handler) (*Subscription, error) {
	t, err := brokerType(cfg)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{}

	if t == TypeNSQ {
		for _, subject := range subjects {
			consumer, err := nsqpkg.NewConsumer(subject, group, cfg.NSQ.Address, nsqpkg.MessageHandler(handler))
			if err != nil {
				_ = sub.Close()
				return nil, fmt.Errorf("subscribe %s: %w", subject, err)
			}
			sub.closers = append(sub.closers, consumer.Close)
		}
		logger.Info("Subscribed to NSQ topics", logger.Any("topics", subjects), logger.String("channel", group))
		return sub, nil
	}

	client, err := natspkg.NewClient(cfg.NATS.URL, name)
	if err != nil {
		return nil, err
	}
	for _, subject := range subjects {
		s, err := client.QueueSubscribe(subject, group, natspkg.MessageHandler(handler))
		if err != nil {
			_ = sub.Close()
			_ = client.Close()
			return nil, fmt.Errorf("subscribe %s: %w", subject, err)
		}
		sub.closers = append(sub.closers, s.Unsubscribe)
	}
	sub.closers = append(sub.closers, client.Close)

	logger.Info("Subscribed to NATS subjects", logger.Any("subjects", subjects), logger.String("queue", group))
	return sub, nil
}
