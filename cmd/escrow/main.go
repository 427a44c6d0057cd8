package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/klever-io/mx-gig-escrow-go/config"
	chainCore "github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	chainFactory "github.com/multiversx/mx-chain-go/cmd/node/factory"
	chainCommon "github.com/multiversx/mx-chain-go/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-logger-go/file"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath = "logs"
	logFilePrefix   = "gig-escrow"
)

var log = logger.GetOrCreate("escrow/main")

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//
//	go build -i -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
//
// windows:
//
//	for /f %i in ('git describe --tags --long --dirty') do set VERS=%i
//	go build -i -v -ldflags="-X main.appVersion=%VERS%"
var appVersion = chainCommon.UnVersionedAppString

func main() {
	app := cli.NewApp()
	app.Name = "Gig escrow CLI app"
	app.Usage = "Gig escrow client will list, order, deliver and settle gigs on the MultiversX escrow contract," +
		" signing every transaction with a Ledger device or a software wallet"
	app.Flags = getFlags()
	machineID := chainCore.GetAnonymizedMachineID(app.Name)
	app.Version = fmt.Sprintf("%s/%s/%s-%s/%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH, machineID)
	app.Authors = []cli.Author{
		{
			Name:  "The Klever Blockchain Team",
			Email: "contact@klever.io",
		},
	}
	app.Commands = getCommands()

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// setup prepares the logger and loads the configuration shared by every command
func setup(ctx *cli.Context) (config.EscrowConfig, config.ContextFlagsConfig, chainFactory.FileLoggingHandler, error) {
	flagsConfig := getFlagsConfig(ctx)

	fileLogging, err := attachFileLogger(log, flagsConfig)
	if err != nil {
		return config.EscrowConfig{}, flagsConfig, nil, err
	}

	log.Debug("starting gig escrow client", "version", ctx.App.Version, "pid", os.Getpid())

	cfg, err := loadConfig(flagsConfig.ConfigurationFile)
	if err != nil {
		return config.EscrowConfig{}, flagsConfig, nil, err
	}

	err = config.LoadEnvFile(flagsConfig.EnvFile)
	if err != nil {
		return config.EscrowConfig{}, flagsConfig, nil, fmt.Errorf("%w while loading the env file", err)
	}

	err = config.ApplyEnvOverrides(&cfg)
	if err != nil {
		return config.EscrowConfig{}, flagsConfig, nil, err
	}

	if !check.IfNil(fileLogging) {
		logsCfg := cfg.GeneralConfig.Logs
		timeLogLifeSpan := time.Second * time.Duration(logsCfg.LogFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logsCfg.LogFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return config.EscrowConfig{}, flagsConfig, nil, err
		}
	}

	return cfg, flagsConfig, fileLogging, nil
}

func loadConfig(filepath string) (config.EscrowConfig, error) {
	cfg := config.EscrowConfig{}
	err := chainCore.LoadTomlFile(&cfg, filepath)
	if err != nil {
		return config.EscrowConfig{}, err
	}

	return cfg, nil
}

func attachFileLogger(log logger.Logger, flagsConfig config.ContextFlagsConfig) (chainFactory.FileLoggingHandler, error) {
	var fileLogging chainFactory.FileLoggingHandler
	var err error
	if flagsConfig.SaveLogFile {
		args := file.ArgsFileLogging{
			WorkingDir:      flagsConfig.WorkingDir,
			DefaultLogsPath: defaultLogsPath,
			LogFilePrefix:   logFilePrefix,
		}
		fileLogging, err = file.NewFileLogging(args)
		if err != nil {
			return nil, fmt.Errorf("%w creating a log file", err)
		}
	}

	err = logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)
	logger.ToggleLoggerName(flagsConfig.EnableLogName)
	logLevelFlagValue := flagsConfig.LogLevel
	err = logger.SetLogLevel(logLevelFlagValue)
	if err != nil {
		return nil, err
	}

	if flagsConfig.DisableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			return nil, err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			return nil, err
		}
	}
	log.Trace("logger updated", "level", logLevelFlagValue, "disable ANSI color", flagsConfig.DisableAnsiColor)

	return fileLogging, nil
}
