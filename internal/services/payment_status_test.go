package services_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigpay/gigpay-api/internal/services"
)

func TestStatusCellStartsIdle(t *testing.T) {
	cell := services.NewStatusCell()
	assert.Equal(t, services.PaymentStatus{}, cell.Load())
}

func TestStatusCellPublishReplacesWholeValue(t *testing.T) {
	cell := services.NewStatusCell()

	cell.Publish(services.PaymentStatus{IsLoading: false, Error: "Transaction failed"})
	cell.Publish(services.PaymentStatus{IsLoading: true})

	// The error from the previous attempt must not leak into the new value.
	assert.Equal(t, services.PaymentStatus{IsLoading: true}, cell.Load())
}

func TestStatusCellPublishIdempotent(t *testing.T) {
	cell := services.NewStatusCell()
	terminal := services.PaymentStatus{LastTransaction: "0xaaaa"}

	cell.Publish(terminal)
	cell.Publish(terminal)

	assert.Equal(t, terminal, cell.Load())
}

func TestStatusCellConcurrentReaders(t *testing.T) {
	cell := services.NewStatusCell()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				status := cell.Load()
				// A reader must only ever see a whole published value.
				if status.IsLoading {
					assert.Empty(t, status.Error)
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			cell.Publish(services.PaymentStatus{IsLoading: true})
		} else {
			cell.Publish(services.PaymentStatus{LastTransaction: fmt.Sprintf("0x%04x", i)})
		}
	}
	wg.Wait()
}
