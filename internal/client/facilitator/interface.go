package facilitator

import "context"

//go:generate mockgen -source=interface.go -destination=../../mocks/facilitator_mocks.go -package=mocks

// Notifier records a payment with the off-chain facilitation service. The
// call is purely advisory: callers treat a failed outcome as a warning, never
// as a reason to abort the on-chain payment.
type Notifier interface {
	Notify(ctx context.Context, details PaymentDetails) NotifyResult
}

// Ensure Client implements the interface
var _ Notifier = (*Client)(nil)
