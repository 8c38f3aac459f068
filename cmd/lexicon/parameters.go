package main

import (
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/wordsmith/lexicon/configuration"
	"github.com/wordsmith/lexicon/logger"
)

const (
	// envPrefix is the prefix of the environment variables that override loaded parameters.
	envPrefix = "LEXICON"

	configurationKeySeedFile = "dictionary.seedFile"
	defaultConfigFile        = "config.json"
	defaultSeedFile          = "Words.txt"
)

// parameters holds the resolved settings of the application.
type parameters struct {
	SeedFile string
	Logger   logger.Config
	// Loaded holds all merged configuration values by their lower cased key.
	Loaded map[string]interface{}
}

// newFlagSet defines all command line flags of the application.
func newFlagSet() *flag.FlagSet {
	flagSet := configuration.NewUnsortedFlagSet("lexicon", flag.ContinueOnError)
	flagSet.StringP("config", "c", defaultConfigFile, "file path of the configuration file")
	flagSet.String(configurationKeySeedFile, defaultSeedFile, "file with one seed word per line (word or word:definition)")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding, either console or json")
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, logger.DefaultCfg.OutputPaths, "URLs or file paths to write logging output to")
	flagSet.Bool(logger.ConfigurationKeyDisableCaller, true, "stops annotating logs with the calling function's file name and line number")
	flagSet.Bool(logger.ConfigurationKeyDisableStacktrace, false, "disables automatic stacktrace capturing")

	return flagSet
}

// loadParameters merges the config file, the command line flags and the environment variables (in this order of
// precedence, lowest first).
func loadParameters(args []string) (*parameters, error) {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	configFile, err := flagSet.GetString("config")
	if err != nil {
		return nil, err
	}

	config := configuration.New()
	if err := config.LoadFile(configFile); err != nil {
		// the config file is optional unless it was requested explicitly
		if !ierrors.Is(err, os.ErrNotExist) || flagSet.Changed("config") {
			return nil, ierrors.Wrap(err, "loading config file failed")
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "loading flags failed")
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "loading environment variables failed")
	}

	params := &parameters{
		SeedFile: config.String(configurationKeySeedFile),
		Logger:   logger.DefaultCfg,
		Loaded:   config.All(),
	}
	if err := config.Unmarshal("logger", &params.Logger); err != nil {
		return nil, ierrors.Wrap(err, "invalid logger parameters")
	}

	return params, nil
}
