package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/dispatch/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer processes every message of a subject with one handler
type Consumer struct {
	subject      string
	subscription *nats.Subscription
}

// NewConsumer subscribes handler to subject, optionally load balanced across a queue group.
// Handler errors are logged and the message is dropped.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	process := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = client.QueueSubscribe(subject, queueGroup, process)
	} else {
		sub, err = client.Subscribe(subject, process)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume %s: %w", subject, err)
	}

	return &Consumer{subject: subject, subscription: sub}, nil
}

// Stop unsubscribes from the subject
func (c *Consumer) Stop() error {
	if c.subscription == nil {
		return nil
	}
	return c.subscription.Unsubscribe()
}
