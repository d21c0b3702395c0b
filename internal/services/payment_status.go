package services

import "sync"

// PaymentStatus is the UI-observable record of the payment flow: whether a
// payment is in flight, the last error, and the hash of the most recent
// successful transfer.
type PaymentStatus struct {
	IsLoading       bool   `json:"is_loading"`
	Error           string `json:"error,omitempty"`
	LastTransaction string `json:"last_transaction,omitempty"`
}

// StatusCell is an observable value cell holding the current PaymentStatus.
// It has exactly one writer (the payment service) and any number of readers;
// writes replace the whole value so a reader never observes a half-updated
// record.
type StatusCell struct {
	mu     sync.RWMutex
	status PaymentStatus
}

// NewStatusCell creates a cell in the idle state.
func NewStatusCell() *StatusCell {
	return &StatusCell{}
}

// Publish replaces the current status.
func (c *StatusCell) Publish(status PaymentStatus) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

// Load returns a copy of the current status.
func (c *StatusCell) Load() PaymentStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}
