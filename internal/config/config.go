package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default USDC deployment on Base mainnet.
const DefaultUSDCContractAddress = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"

// DefaultFacilitatorURL is the x402 payment facilitation endpoint used when
// no override is configured.
const DefaultFacilitatorURL = "https://api.x402.com"

// Config holds all configuration for the service, loaded once at startup.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Chain       ChainConfig
	Facilitator FacilitatorConfig
	Stage       string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string
}

// ChainConfig holds configuration for the Base chain connection.
type ChainConfig struct {
	RPCURL              string
	USDCContractAddress string
	// WalletPrivateKey signs approve/transfer submissions. Empty means no
	// signing identity is available and payments fail fast.
	WalletPrivateKey string
	// SpenderContractAddress enables the allowance-check/approve branch
	// when set.
	SpenderContractAddress string
	ConfirmationTimeout    time.Duration
}

// FacilitatorConfig holds the off-chain payment facilitator credentials.
type FacilitatorConfig struct {
	BaseURL string
	APIKey  string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("PORT", 8000),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Chain: ChainConfig{
			RPCURL:                 os.Getenv("RPC_URL"),
			USDCContractAddress:    getEnv("USDC_CONTRACT_ADDRESS", DefaultUSDCContractAddress),
			WalletPrivateKey:       os.Getenv("WALLET_PRIVATE_KEY"),
			SpenderContractAddress: os.Getenv("SPENDER_CONTRACT_ADDRESS"),
			ConfirmationTimeout:    getEnvDuration("CONFIRMATION_TIMEOUT", 5*time.Minute),
		},
		Facilitator: FacilitatorConfig{
			BaseURL: getEnv("FACILITATOR_URL", DefaultFacilitatorURL),
			APIKey:  os.Getenv("FACILITATOR_API_KEY"),
		},
		Stage: getEnv("STAGE", "dev"),
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.Chain.RPCURL == "" {
		return nil, fmt.Errorf("RPC_URL environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
