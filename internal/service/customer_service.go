package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/customer-records/internal/errors"
	"github.com/unclebandit/customer-records/internal/mapper"
	"github.com/unclebandit/customer-records/internal/metrics"
	"github.com/unclebandit/customer-records/internal/model"
	"github.com/unclebandit/customer-records/internal/queue"
	"github.com/unclebandit/customer-records/internal/repository"
)

// CustomerService holds no per-request state. Queue and Metrics are optional.
type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Queue        queue.Queue
	Metrics      *metrics.Metrics
	Logger       *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// GetByReference looks the customer up and returns its wire shape.
func (s *CustomerService) GetByReference(ctx context.Context, ref string) (*model.CustomerDTO, error) {
	customer, err := s.CustomerRepo.FindByRef(ctx, ref)
	if err != nil {
		s.Metrics.ObserveLookup(metrics.LookupError)
		return nil, fmt.Errorf("fetch customer %s: %w", ref, err)
	}
	if customer == nil {
		s.Metrics.ObserveLookup(metrics.LookupNotFound)
		return nil, appErrors.NewCustomerNotFound(ref)
	}

	s.Metrics.ObserveLookup(metrics.LookupFound)
	dto := mapper.ToWire(*customer)
	return &dto, nil
}

// SaveCustomer validates the wire record and upserts it keyed by its reference.
func (s *CustomerService) SaveCustomer(ctx context.Context, dto model.CustomerDTO) error {
	if err := validate.Struct(dto); err != nil {
		return toValidationError(err)
	}

	customer := mapper.ToStored(dto)
	if err := s.CustomerRepo.Upsert(ctx, &customer); err != nil {
		s.Metrics.IncrementSaveFailure()
		s.logger().Error("failed to save customer",
			zap.String("customer_ref", dto.CustomerRef),
			zap.Error(err),
		)
		return appErrors.NewPersistenceFailure(dto.CustomerRef, err)
	}
	s.Metrics.IncrementSaved()

	if s.Queue != nil {
		event := queue.NewCustomerSavedEvent(dto.CustomerRef, s.now())
		if err := s.Queue.Publish(queue.TopicCustomerSaved, event); err != nil {
			s.logger().Warn("failed to publish customer saved event",
				zap.String("customer_ref", dto.CustomerRef),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *CustomerService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *CustomerService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return appErrors.NewValidation(fe.Field(), fe.Tag())
	}
	return appErrors.NewValidation("customer", "invalid")
}
