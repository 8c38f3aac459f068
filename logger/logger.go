package logger

import (
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
)

// Logger is a simple alias for the zap sugared logger.
type Logger = zap.SugaredLogger

// ErrInvalidLevel is returned if the configured level is not a known zap level.
var ErrInvalidLevel = ierrors.New("invalid log level")

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(ErrInvalidLevel, "%q", cfg.Level)
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = DefaultCfg.Encoding
	}

	zapCfg := &zap.Config{
		Level:             level,
		Encoding:          encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
	}

	root, err := zapCfg.Build()
	if err != nil {
		return nil, ierrors.Wrap(err, "unable to build root logger")
	}

	return root.Sugar(), nil
}

// NewNopLogger returns a logger that discards every message.
func NewNopLogger() *Logger {
	return zap.NewNop().Sugar()
}

// NewExampleLogger builds a Logger that's designed to be used in tests. It encodes entries without timestamps and
// writes DebugLevel and above to stdout.
func NewExampleLogger(name string) *Logger {
	return zap.NewExample().Named(name).Sugar()
}
