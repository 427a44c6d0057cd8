package main

import (
	"github.com/klever-io/mx-gig-escrow-go/config"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

var (
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,api:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the api package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contain the main " +
			"configurations such as the network address, the contract address or the wallet type.",
		Value: "./config/config.toml",
	}
	// logFile is used when the log output needs to be logged in a file
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// logWithLoggerName is used to enable log correlation elements
	logWithLoggerName = cli.BoolFlag{
		Name:  "log-logger-name",
		Usage: "Boolean option for logger name in the logs.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the client will store logs.",
		Value: "",
	}
	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080. If set to `off` then the API won't be available",
		Value: "localhost:8080",
	}
	// envFile defines a flag for the optional dotenv file holding ESCROW_* overrides
	envFile = cli.StringFlag{
		Name:  "env-file",
		Usage: "The `" + filePathPlaceholder + "` of a dotenv file with ESCROW_* overrides. When empty, ./.env is loaded if present.",
		Value: "",
	}

	callerAddress = cli.StringFlag{
		Name:  "caller",
		Usage: "The bech32 `address` sending the transaction. Defaults to the address of the connected wallet.",
	}
	gigID = cli.StringFlag{
		Name:  "gig-id",
		Usage: "The gig `identifier`, an unsigned 64-bit integer.",
	}
	deadline = cli.StringFlag{
		Name:  "deadline",
		Usage: "The delivery deadline as a unix `timestamp`.",
	}
	price = cli.StringFlag{
		Name:  "price",
		Usage: "The gig price in EGLD, as a decimal `amount`.",
	}
	sellerAddress = cli.StringFlag{
		Name:  "seller",
		Usage: "The bech32 `address` of the gig seller.",
	}
	payment = cli.StringFlag{
		Name:  "payment",
		Usage: "The payment in EGLD, as a decimal `amount`.",
	}
	historyLimit = cli.IntFlag{
		Name:  "limit",
		Usage: "The maximum `number` of journal entries to display, newest first. 0 displays all.",
		Value: 20,
	}
	txHash = cli.StringFlag{
		Name:  "hash",
		Usage: "Displays only the journal entry of this transaction `hash`.",
	}
)

const filePathPlaceholder = "[path]"

func getFlags() []cli.Flag {
	return []cli.Flag{
		workingDirectory,
		logLevel,
		disableAnsiColor,
		configurationFile,
		logSaveFile,
		logWithLoggerName,
		restApiInterface,
		envFile,
	}
}

func getFlagsConfig(ctx *cli.Context) config.ContextFlagsConfig {
	flagsConfig := config.ContextFlagsConfig{}

	flagsConfig.WorkingDir = ctx.GlobalString(workingDirectory.Name)
	flagsConfig.LogLevel = ctx.GlobalString(logLevel.Name)
	flagsConfig.DisableAnsiColor = ctx.GlobalBool(disableAnsiColor.Name)
	flagsConfig.ConfigurationFile = ctx.GlobalString(configurationFile.Name)
	flagsConfig.SaveLogFile = ctx.GlobalBool(logSaveFile.Name)
	flagsConfig.EnableLogName = ctx.GlobalBool(logWithLoggerName.Name)
	flagsConfig.RestApiInterface = ctx.GlobalString(restApiInterface.Name)
	flagsConfig.EnvFile = ctx.GlobalString(envFile.Name)

	return flagsConfig
}
