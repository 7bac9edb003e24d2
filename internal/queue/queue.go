package queue

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TopicCustomerSaved carries a CustomerSavedEvent after every successful save.
const TopicCustomerSaved = "customer_saved"

//go:generate mockgen -source=queue.go -destination=mocks/queue_mock.go -package=mocks Queue

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// ErrNoSubscribers is returned by InMemoryQueue.Publish when nobody listens on the topic.
var ErrNoSubscribers = errors.New("no subscribers")

// CustomerSavedEvent is published once a customer row has been written.
type CustomerSavedEvent struct {
	EventID     string    `json:"eventId"`
	CustomerRef string    `json:"customerRef"`
	SavedAt     time.Time `json:"savedAt"`
}

func NewCustomerSavedEvent(ref string, at time.Time) CustomerSavedEvent {
	return CustomerSavedEvent{
		EventID:     uuid.NewString(),
		CustomerRef: ref,
		SavedAt:     at.UTC(),
	}
}

// InMemoryQueue fans each published payload out to the topic's handlers, one goroutine per handler.
// A failed handler is logged and the payload is dropped.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
	logger   *zap.Logger
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue(logger *zap.Logger) *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
		logger:   logger,
	}
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("publish %s: %w", topic, ErrNoSubscribers)
	}

	for _, handler := range handlers {
		go func(handle func(payload any) error) {
			if err := handle(payload); err != nil {
				q.logger.Warn("queue handler failed", zap.String("topic", topic), zap.Error(err))
			}
		}(handler)
	}
	return nil
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}
