package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variables overriding the TOML configuration
const (
	EnvNetworkAddress  = "ESCROW_NETWORK_ADDRESS"
	EnvContractAddress = "ESCROW_CONTRACT_ADDRESS"
	EnvGasLimit        = "ESCROW_GAS_LIMIT"
	EnvWalletType      = "ESCROW_WALLET_TYPE"
	EnvPemFile         = "ESCROW_PEM_FILE"
	EnvMnemonic        = "ESCROW_MNEMONIC"
	EnvAccountIndex    = "ESCROW_ACCOUNT_INDEX"
	EnvAddressIndex    = "ESCROW_ADDRESS_INDEX"
	EnvJournalPath     = "ESCROW_JOURNAL_PATH"
	EnvApiToken        = "ESCROW_API_TOKEN"
)

// LoadEnvFile loads the provided env file. With an empty name, the optional .env file of the working directory is loaded.
// Variables already present in the environment are not overwritten
func LoadEnvFile(envFile string) error {
	if len(envFile) > 0 {
		return godotenv.Load(envFile)
	}

	err := godotenv.Load(defaultEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// ApplyEnvOverrides replaces the configuration values for which an ESCROW_* variable is set
func ApplyEnvOverrides(cfg *EscrowConfig) error {
	overrideString(&cfg.GeneralConfig.NetworkAddress, EnvNetworkAddress)
	overrideString(&cfg.GeneralConfig.ContractAddress, EnvContractAddress)
	overrideString(&cfg.Wallet.Type, EnvWalletType)
	overrideString(&cfg.Wallet.PemFile, EnvPemFile)
	overrideString(&cfg.Wallet.Mnemonic, EnvMnemonic)
	overrideString(&cfg.Journal.Path, EnvJournalPath)
	overrideString(&cfg.Api.ApiToken, EnvApiToken)

	err := overrideUint64(&cfg.GeneralConfig.GasLimit, EnvGasLimit)
	if err != nil {
		return err
	}

	err = overrideUint32(&cfg.Wallet.AccountIndex, EnvAccountIndex)
	if err != nil {
		return err
	}

	return overrideUint32(&cfg.Wallet.AddressIndex, EnvAddressIndex)
}

func overrideString(value *string, name string) {
	envValue, found := os.LookupEnv(name)
	if found {
		*value = envValue
	}
}

func overrideUint64(value *uint64, name string) error {
	envValue, found := os.LookupEnv(name)
	if !found {
		return nil
	}

	parsed, err := strconv.ParseUint(envValue, 10, 64)
	if err != nil {
		return fmt.Errorf("%w for environment variable %s", err, name)
	}

	*value = parsed

	return nil
}

func overrideUint32(value *uint32, name string) error {
	envValue, found := os.LookupEnv(name)
	if !found {
		return nil
	}

	parsed, err := strconv.ParseUint(envValue, 10, 32)
	if err != nil {
		return fmt.Errorf("%w for environment variable %s", err, name)
	}

	*value = uint32(parsed)

	return nil
}
