// internal/controller/customer_controller.go
package controller

//go:generate mockgen -source=customer_controller.go -destination=mocks/customer_service_mock.go -package=mocks CustomerService

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/customer-records/internal/errors"
	"github.com/unclebandit/customer-records/internal/model"
)

// SaveSuccessMessage is the plain-text body of a successful save.
const SaveSuccessMessage = "Customer saved successfully"

// CustomerService is what the controller needs from the service layer.
type CustomerService interface {
	GetByReference(ctx context.Context, ref string) (*model.CustomerDTO, error)
	SaveCustomer(ctx context.Context, dto model.CustomerDTO) error
}

type CustomerController struct {
	CustomerService CustomerService
	Logger          *zap.Logger
}

// Register mounts the customer routes under /api/customers.
func (c *CustomerController) Register(r chi.Router) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Post("/saveCustomer", c.SaveCustomer)
		r.Get("/{customerRef}", c.GetCustomer)
	})
}

func (c *CustomerController) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	var body model.CustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, MessageInvalidBody)
		return
	}

	if err := c.CustomerService.SaveCustomer(r.Context(), body); err != nil {
		c.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(SaveSuccessMessage))
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "customerRef")

	customer, err := c.CustomerService.GetByReference(r.Context(), ref)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, customer)
}

// writeError translates service errors into the uniform error body. Causes of
// server-side faults are logged, never sent.
func (c *CustomerController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *appErrors.ErrCustomerNotFound
	var invalid *appErrors.ErrValidation

	switch {
	case errors.As(err, &notFound):
		WriteErrorResponse(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &invalid):
		WriteErrorResponse(w, http.StatusBadRequest, invalid.Error())
	default:
		c.logger().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
		WriteErrorResponse(w, http.StatusInternalServerError, MessageUnexpected)
	}
}

func (c *CustomerController) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
