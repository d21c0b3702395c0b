package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/gigpay/gigpay-api/internal/chain"
	"github.com/gigpay/gigpay-api/internal/client/facilitator"
	"github.com/gigpay/gigpay-api/internal/logger"
)

// User-facing error messages of the payment flow.
const (
	ErrMsgWalletNotConnected   = "Wallet not connected"
	ErrMsgPublicClientMissing  = "Public client not available"
	ErrMsgTransactionFailed    = "Transaction failed"
	ErrMsgUnknown              = "Unknown error occurred"
	insufficientBalanceMsgTmpl = "Insufficient USDC balance. Available: %s USDC"
)

const (
	approvalConfirmations = 1
	transferConfirmations = 2

	paymentCurrency = "USDC"
	paymentNetwork  = "base"
)

// PaymentRequest describes one payment attempt. Amount is in USDC display
// units; GigID is an opaque correlation token passed through to the
// facilitator.
type PaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Recipient   string  `json:"recipient" binding:"required"`
	Description string  `json:"description,omitempty"`
	GigID       string  `json:"gig_id,omitempty"`
}

// PaymentResult is produced exactly once per ProcessPayment call.
// TransactionHash is set iff Success; Error is set iff not.
type PaymentResult struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	Error           string `json:"error,omitempty"`
}

// TransactionStatus summarizes a mined transaction for display.
type TransactionStatus struct {
	Status        uint64 `json:"status"`
	BlockNumber   uint64 `json:"block_number"`
	GasUsed       uint64 `json:"gas_used"`
	Confirmations uint64 `json:"confirmations"`
}

// PaymentService orchestrates a USDC payment: balance check, conditional
// spender approval, best-effort facilitator notification, transfer and
// confirmation wait. One call produces one PaymentResult and a terminal
// status-cell update; there is no internal retry and no rollback.
//
// ProcessPayment is not guarded against concurrent invocation for the same
// signer. Callers are expected to hold off while the status cell reports
// IsLoading, mirroring how the payment dialog disables its trigger.
type PaymentService struct {
	reader      chain.Reader
	writer      chain.Writer
	facilitator facilitator.Notifier
	spender     *common.Address
	status      *StatusCell
	logger      *zap.Logger
}

// NewPaymentService creates a payment service. A nil writer means no signing
// identity is connected; a nil reader means no chain query capability. An
// empty spender address disables the allowance/approve branch.
func NewPaymentService(reader chain.Reader, writer chain.Writer, notifier facilitator.Notifier, spenderAddress string, status *StatusCell) *PaymentService {
	s := &PaymentService{
		reader:      reader,
		writer:      writer,
		facilitator: notifier,
		status:      status,
		logger:      logger.Log,
	}
	if spenderAddress != "" && common.IsHexAddress(spenderAddress) {
		spender := common.HexToAddress(spenderAddress)
		s.spender = &spender
	}
	return s
}

// ProcessPayment runs the full payment flow and returns a uniform result.
// Precondition failures return immediately without touching the status cell;
// once the flow starts, the cell always reaches a terminal value even if no
// observer is mounted when it does.
func (s *PaymentService) ProcessPayment(ctx context.Context, req PaymentRequest) PaymentResult {
	if s.writer == nil {
		return PaymentResult{Success: false, Error: ErrMsgWalletNotConnected}
	}
	if s.reader == nil {
		return PaymentResult{Success: false, Error: ErrMsgPublicClientMissing}
	}

	s.status.Publish(PaymentStatus{IsLoading: true})

	txHash, err := s.execute(ctx, req)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = ErrMsgUnknown
		}
		s.logger.Error("Payment failed",
			zap.String("recipient", req.Recipient),
			zap.Float64("amount", req.Amount),
			zap.String("gig_id", req.GigID),
			zap.Error(err))
		s.status.Publish(PaymentStatus{IsLoading: false, Error: msg})
		return PaymentResult{Success: false, Error: msg}
	}

	s.logger.Info("Payment confirmed",
		zap.String("tx_hash", txHash.Hex()),
		zap.String("recipient", req.Recipient),
		zap.Float64("amount", req.Amount))
	s.status.Publish(PaymentStatus{IsLoading: false, LastTransaction: txHash.Hex()})
	return PaymentResult{Success: true, TransactionHash: txHash.Hex()}
}

// execute performs the sequential payment steps. Any returned error is
// surfaced verbatim by the single error boundary in ProcessPayment.
func (s *PaymentService) execute(ctx context.Context, req PaymentRequest) (common.Hash, error) {
	if !common.IsHexAddress(req.Recipient) {
		return common.Hash{}, fmt.Errorf("invalid recipient address: %s", req.Recipient)
	}
	recipient := common.HexToAddress(req.Recipient)

	amount, err := chain.ParseAmount(req.Amount)
	if err != nil {
		return common.Hash{}, err
	}

	sender := s.writer.From()

	balance, err := s.reader.BalanceOf(ctx, sender)
	if err != nil {
		return common.Hash{}, err
	}
	if balance.Cmp(amount) < 0 {
		return common.Hash{}, fmt.Errorf(insufficientBalanceMsgTmpl,
			chain.FormatUnits(balance, chain.USDCDecimals))
	}

	if s.spender != nil {
		if err := s.ensureAllowance(ctx, sender, amount); err != nil {
			return common.Hash{}, err
		}
	}

	// Advisory only: a facilitator failure never aborts the payment.
	result := s.facilitator.Notify(ctx, facilitator.PaymentDetails{
		Amount:      req.Amount,
		Currency:    paymentCurrency,
		Network:     paymentNetwork,
		Sender:      sender.Hex(),
		Recipient:   req.Recipient,
		Description: req.Description,
		GigID:       req.GigID,
	})
	if !result.Delivered {
		s.logger.Warn("Facilitator unavailable, proceeding with direct transfer",
			zap.Int("status", result.StatusCode),
			zap.Error(result.Err))
	}

	txHash, err := s.writer.Transfer(ctx, recipient, amount)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := s.reader.WaitForReceipt(ctx, txHash, transferConfirmations)
	if err != nil {
		return common.Hash{}, err
	}

	if receipt.Status != 1 {
		// Re-query once before declaring failure: some nodes return a stale
		// receipt for a transaction that was later reorged to success.
		fresh, freshErr := s.reader.TransactionReceipt(ctx, txHash)
		if freshErr != nil || fresh == nil || fresh.Status != 1 {
			return common.Hash{}, errors.New(ErrMsgTransactionFailed)
		}
	}

	return txHash, nil
}

// ensureAllowance checks the spend authorization granted to the configured
// spender and, when short, submits an approval for exactly the requested
// amount and waits one confirmation before the caller proceeds.
func (s *PaymentService) ensureAllowance(ctx context.Context, owner common.Address, amount *big.Int) error {
	allowance, err := s.reader.Allowance(ctx, owner, *s.spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) >= 0 {
		return nil
	}

	approveTx, err := s.writer.Approve(ctx, *s.spender, amount)
	if err != nil {
		return err
	}

	if _, err := s.reader.WaitForReceipt(ctx, approveTx, approvalConfirmations); err != nil {
		return err
	}

	s.logger.Info("Spender approval confirmed",
		zap.String("tx_hash", approveTx.Hex()),
		zap.String("spender", s.spender.Hex()))
	return nil
}

// GetUSDCBalance returns the signer's balance formatted in display units.
// It is a display convenience: any failure yields ok=false instead of an
// error, and the payment flow never relies on it.
func (s *PaymentService) GetUSDCBalance(ctx context.Context) (string, bool) {
	if s.reader == nil || s.writer == nil {
		return "", false
	}

	balance, err := s.reader.BalanceOf(ctx, s.writer.From())
	if err != nil {
		s.logger.Error("Error getting USDC balance", zap.Error(err))
		return "", false
	}

	return chain.FormatUnits(balance, chain.USDCDecimals), true
}

// GetTransactionStatus looks up a mined transaction and its confirmation
// depth.
func (s *PaymentService) GetTransactionStatus(ctx context.Context, txHash string) (*TransactionStatus, error) {
	if s.reader == nil {
		return nil, errors.New(ErrMsgPublicClientMissing)
	}

	receipt, err := s.reader.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
	}

	head, err := s.reader.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}

	// A lagging node can report a head behind the receipt's block.
	var confirmations uint64
	if block := receipt.BlockNumber.Uint64(); head >= block {
		confirmations = head - block + 1
	}

	return &TransactionStatus{
		Status:        receipt.Status,
		BlockNumber:   receipt.BlockNumber.Uint64(),
		GasUsed:       receipt.GasUsed,
		Confirmations: confirmations,
	}, nil
}

// Status returns the observable status cell.
func (s *PaymentService) Status() *StatusCell {
	return s.status
}

// ExplorerTxURL returns the block-explorer link for a transaction hash.
func ExplorerTxURL(txHash string) string {
	return "https://basescan.org/tx/" + txHash
}
