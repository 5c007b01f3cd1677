package queue

// NoopQueue drops every message. Used when no broker is configured.
type NoopQueue struct{}

func NewNoopQueue() MessageQueue {
	return NoopQueue{}
}

func (NoopQueue) Publish(string, []byte) error { return nil }

func (NoopQueue) Close() error { return nil }
