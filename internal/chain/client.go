package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/gigpay/gigpay-api/internal/config"
)

// ErrConfirmationTimeout is returned when a transaction did not reach the
// requested confirmation depth within the configured wait window. It is
// distinct from an on-chain failure: the transaction may still confirm later.
var ErrConfirmationTimeout = errors.New("confirmation timed out")

const receiptPollInterval = 2 * time.Second

// Client wraps an Ethereum RPC connection with token-ledger reads and signed
// writes against a fixed ERC-20 contract. It implements both Reader and
// Writer; writes require a configured signing key.
type Client struct {
	ethClient           *ethclient.Client
	token               common.Address
	privateKey          *ecdsa.PrivateKey
	from                common.Address
	confirmationTimeout time.Duration
	logger              *zap.Logger
}

var (
	_ Reader = (*Client)(nil)
	_ Writer = (*Client)(nil)
)

// NewClient connects to the configured RPC endpoint. A wallet private key is
// optional: without one the client can read but any write returns an error.
func NewClient(cfg config.ChainConfig, logger *zap.Logger) (*Client, error) {
	ethClient, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}

	if !common.IsHexAddress(cfg.USDCContractAddress) {
		return nil, fmt.Errorf("invalid token contract address: %s", cfg.USDCContractAddress)
	}

	client := &Client{
		ethClient:           ethClient,
		token:               common.HexToAddress(cfg.USDCContractAddress),
		confirmationTimeout: cfg.ConfirmationTimeout,
		logger:              logger,
	}

	if cfg.WalletPrivateKey != "" {
		privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.WalletPrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse wallet private key: %w", err)
		}
		client.privateKey = privateKey
		client.from = crypto.PubkeyToAddress(privateKey.PublicKey)

		logger.Info("Chain client initialized with signer",
			zap.String("wallet_address", client.from.Hex()),
			zap.String("token", client.token.Hex()))
	} else {
		logger.Info("Chain client initialized read-only",
			zap.String("token", client.token.Hex()))
	}

	return client, nil
}

// Close closes the underlying RPC connection
func (c *Client) Close() {
	c.ethClient.Close()
}

// HasSigner reports whether a signing identity is configured.
func (c *Client) HasSigner() bool {
	return c.privateKey != nil
}

// From returns the signing identity's address, or the zero address when no
// key is configured.
func (c *Client) From() common.Address {
	return c.from
}

// BalanceOf returns the token balance of an account in smallest units.
func (c *Client) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	result, err := c.ethClient.CallContract(ctx, ethereum.CallMsg{
		To:   &c.token,
		Data: balanceOfCalldata(account),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call balanceOf: %w", err)
	}
	if len(result) < 32 {
		return nil, fmt.Errorf("invalid balanceOf response length: %d", len(result))
	}
	return new(big.Int).SetBytes(result), nil
}

// Allowance returns the spend authorization granted by owner to spender.
func (c *Client) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	result, err := c.ethClient.CallContract(ctx, ethereum.CallMsg{
		To:   &c.token,
		Data: allowanceCalldata(owner, spender),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call allowance: %w", err)
	}
	if len(result) < 32 {
		return nil, fmt.Errorf("invalid allowance response length: %d", len(result))
	}
	return new(big.Int).SetBytes(result), nil
}

// TransactionReceipt gets the receipt for a mined transaction.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return c.ethClient.TransactionReceipt(ctx, txHash)
}

// BlockNumber returns the current chain head block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.ethClient.BlockNumber(ctx)
}

// WaitForReceipt polls until the transaction is mined and has accumulated the
// requested number of confirmations. The confirmation count of a mined
// transaction is (head - receipt block) + 1. The wait is bounded by the
// configured confirmation timeout.
func (c *Client) WaitForReceipt(ctx context.Context, txHash common.Hash, confirmations uint64) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.confirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w waiting for transaction %s", ErrConfirmationTimeout, txHash.Hex())
		case <-ticker.C:
			receipt, err := c.ethClient.TransactionReceipt(ctx, txHash)
			if err != nil || receipt == nil {
				// Not yet mined, keep polling.
				continue
			}

			head, err := c.ethClient.BlockNumber(ctx)
			if err != nil {
				continue
			}

			// A lagging node can report a head behind the receipt's block.
			if head < receipt.BlockNumber.Uint64() {
				continue
			}
			depth := head - receipt.BlockNumber.Uint64() + 1
			if depth >= confirmations {
				return receipt, nil
			}

			c.logger.Debug("Waiting for confirmations",
				zap.String("tx_hash", txHash.Hex()),
				zap.Uint64("have", depth),
				zap.Uint64("want", confirmations))
		}
	}
}

// Approve authorizes the spender to move up to amount of the token on the
// signer's behalf.
func (c *Client) Approve(ctx context.Context, spender common.Address, amount *big.Int) (common.Hash, error) {
	return c.signAndSend(ctx, approveCalldata(spender, amount), "approve")
}

// Transfer moves amount of the token from the signer to the recipient.
func (c *Client) Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	return c.signAndSend(ctx, transferCalldata(to, amount), "transfer")
}

// signAndSend builds, signs and broadcasts a token contract call, returning
// the pending transaction hash without waiting for it to be mined.
func (c *Client) signAndSend(ctx context.Context, data []byte, method string) (common.Hash, error) {
	if c.privateKey == nil {
		return common.Hash{}, fmt.Errorf("no signing key configured")
	}

	chainID, err := c.ethClient.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get chain ID: %w", err)
	}

	nonce, err := c.ethClient.PendingNonceAt(ctx, c.from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.ethClient.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gasLimit, err := c.ethClient.EstimateGas(ctx, ethereum.CallMsg{
		From: c.from,
		To:   &c.token,
		Data: data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
	}

	// 20% headroom over the estimate
	gasLimit = gasLimit * 120 / 100

	tx := types.NewTransaction(nonce, c.token, big.NewInt(0), gasLimit, gasPrice, data)

	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(chainID), c.privateKey)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.ethClient.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	c.logger.Info("Transaction sent",
		zap.String("method", method),
		zap.String("tx_hash", signedTx.Hash().Hex()),
		zap.Uint64("nonce", nonce))

	return signedTx.Hash(), nil
}
