package logger

import (
	"sync"

	"go.uber.org/zap"
)

// RequestIDKey is the header and context key carrying the per-request ID.
const RequestIDKey = "X-Request-ID"

var (
	once     sync.Once
	instance *zap.Logger
)

// Init builds the shared logger for the given environment. A development
// config (console encoder, debug level) is used for "dev", the production
// JSON config otherwise. Safe to call more than once; only the first call
// takes effect.
func Init(env string) {
	once.Do(func() {
		var (
			l   *zap.Logger
			err error
		)
		if env == "dev" {
			l, err = zap.NewDevelopment()
		} else {
			cfg := zap.NewProductionConfig()
			cfg.OutputPaths = []string{"stdout"}
			l, err = cfg.Build()
		}
		if err != nil {
			panic(err)
		}
		instance = l
	})
}

// Get returns the shared logger, initializing a production logger if Init
// was never called.
func Get() *zap.Logger {
	if instance == nil {
		Init("prod")
	}
	return instance
}
