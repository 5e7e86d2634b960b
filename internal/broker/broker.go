package broker

import "context"

type Producer interface {
	SendMessage(ctx context.Context, key, value []byte) error
	Close() error
}

// NopProducer drops every message; used when Kafka is disabled.
type NopProducer struct{}

func (NopProducer) SendMessage(context.Context, []byte, []byte) error { return nil }

func (NopProducer) Close() error { return nil }
