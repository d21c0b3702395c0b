package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/chain_mocks.go -package=mocks

// Reader provides read-only queries against the token ledger and chain state.
// All operations are idempotent and side-effect free.
type Reader interface {
	// BalanceOf returns the token balance of an account in smallest units.
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	// Allowance returns the amount the owner has authorized the spender to
	// move on their behalf.
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	// TransactionReceipt returns the receipt for a mined transaction.
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	// BlockNumber returns the current chain head block number.
	BlockNumber(ctx context.Context) (uint64, error)
	// WaitForReceipt blocks until the transaction reaches the requested
	// confirmation depth or the wait times out.
	WaitForReceipt(ctx context.Context, txHash common.Hash, confirmations uint64) (*types.Receipt, error)
}

// Writer submits signed state-changing calls against the token contract.
// Each call returns immediately with the pending transaction hash;
// confirmation is a separate, explicit wait via Reader.WaitForReceipt.
type Writer interface {
	// From returns the signing identity's address.
	From() common.Address
	// Approve authorizes the spender to move up to amount on the signer's
	// behalf.
	Approve(ctx context.Context, spender common.Address, amount *big.Int) (common.Hash, error)
	// Transfer moves amount from the signer to the recipient.
	Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
}
