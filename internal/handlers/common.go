package handlers

import (
	"github.com/gigpay/gigpay-api/internal/services"
)

// ErrorResponse represents the standardized API error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CommonServices bundles the service layer shared by all handlers.
type CommonServices struct {
	Payments     *services.PaymentService
	Gigs         *services.GigService
	Applications *services.ApplicationService
	Users        *services.UserService
}

// NewCommonServices creates the shared service bundle.
func NewCommonServices(
	payments *services.PaymentService,
	gigs *services.GigService,
	applications *services.ApplicationService,
	users *services.UserService,
) *CommonServices {
	return &CommonServices{
		Payments:     payments,
		Gigs:         gigs,
		Applications: applications,
		Users:        users,
	}
}
