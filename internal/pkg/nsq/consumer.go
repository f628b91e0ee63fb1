package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/nebengcab/internal/pkg/logger"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from an NSQ topic/channel
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer subscribes handler to topic on channel at the nsqd address.
// A handler error requeues the message.
func NewConsumer(topic, channel, address string, handler MessageHandler) (*Consumer, error) {
	consumer, err := nsq.NewConsumer(topic, channel, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		if err := handler(message.Body); err != nil {
			logger.Error("Error processing message",
				logger.String("topic", topic),
				logger.String("channel", channel),
				logger.Err(err))
			return err
		}
		return nil
	}))

	if err := consumer.ConnectToNSQD(address); err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// Close stops the consumer and waits for in-flight handlers
func (c *Consumer) Close() error {
	c.consumer.Stop()
	<-c.consumer.StopChan
	return nil
}
