package config

// EscrowConfig is the top level configuration of the escrow client
type EscrowConfig struct {
	GeneralConfig GeneralConfig
	Wallet        WalletConfig
	Api           ApiConfig
	Journal       JournalConfig
}

// GeneralConfig holds the network, contract and transaction settings
type GeneralConfig struct {
	NetworkAddress               string
	ProxyRequestTimeoutInSeconds int
	ProxyCacherExpirationSeconds uint64
	ProxyRestAPIEntityType       string
	ProxyMaxNoncesDelta          int
	ProxyFinalityCheck           bool
	ContractAddress              string
	GasLimit                     uint64
	TxPollingIntervalInMillis    int
	TxAwaitTimeoutInSeconds      int
	Logs                         LogsConfig
}

// WalletConfig selects the signer. Type is one of ledger, pem or mnemonic
type WalletConfig struct {
	Type         string
	PemFile      string
	Mnemonic     string
	AccountIndex uint32
	AddressIndex uint32
}

// ApiConfig holds the REST API settings
type ApiConfig struct {
	ApiToken              string
	AllowSoftwareWallet   bool
	CorsAllowedOrigins    []string
	RateLimitPerSecond    float64
	RateLimitBurst        int
	MetricsEnabled        bool
	TransactionsListLimit int
}

// JournalConfig holds the transactions journal settings
type JournalConfig struct {
	Enabled                    bool
	Path                       string
	ReconcileIntervalInSeconds int
}

// LogsConfig will hold settings related to the logging sub-system
type LogsConfig struct {
	LogFileLifeSpanInSec int
	LogFileLifeSpanInMB  int
}

// ContextFlagsConfig the configuration for flags
type ContextFlagsConfig struct {
	WorkingDir        string
	LogLevel          string
	DisableAnsiColor  bool
	ConfigurationFile string
	SaveLogFile       bool
	EnableLogName     bool
	RestApiInterface  string
	EnvFile           string
}
