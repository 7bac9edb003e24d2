package queue

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// CustomerSavedHandler logs each saved-customer event. It accepts the event value itself
// (in-memory queue) or its JSON encoding (AMQP).
func CustomerSavedHandler(logger *zap.Logger) func(payload any) error {
	return func(payload any) error {
		var event CustomerSavedEvent
		switch p := payload.(type) {
		case CustomerSavedEvent:
			event = p
		case []byte:
			if err := json.Unmarshal(p, &event); err != nil {
				return fmt.Errorf("decode customer saved event: %w", err)
			}
		default:
			return fmt.Errorf("unexpected payload type %T", payload)
		}
		if event.CustomerRef == "" {
			return fmt.Errorf("customer saved event %q has no customer reference", event.EventID)
		}

		logger.Info("customer saved",
			zap.String("event_id", event.EventID),
			zap.String("customer_ref", event.CustomerRef),
			zap.Time("saved_at", event.SavedAt),
		)
		return nil
	}
}

// StartCustomerSavedSubscriber registers CustomerSavedHandler on q.
func StartCustomerSavedSubscriber(q Queue, logger *zap.Logger) error {
	if err := q.Subscribe(TopicCustomerSaved, CustomerSavedHandler(logger)); err != nil {
		return fmt.Errorf("subscribe %s: %w", TopicCustomerSaved, err)
	}
	return nil
}
