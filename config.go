package fluentcheck

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-wide defaults applied to every new chain. It is read
// from the environment once; per-chain options always win over it.
type Config struct {
	// FailFast makes every chain halt on its first failing check.
	FailFast bool `env:"FLUENTCHECK_FAIL_FAST" envDefault:"false"`

	// Lang is the language passed to the translator.
	Lang string `env:"FLUENTCHECK_LANG" envDefault:"en"`
}

var (
	defaultConfig     Config
	defaultConfigErr  error
	defaultConfigOnce sync.Once
)

// LoadConfig loads the engine defaults from the environment, reading an
// optional .env file first. The result is cached for the process lifetime.
func LoadConfig() (Config, error) {
	defaultConfigOnce.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()

		if err := env.Parse(&defaultConfig); err != nil {
			defaultConfigErr = errors.Join(errors.New("fluentcheck: parsing config"), err)
		}
	})
	return defaultConfig, defaultConfigErr
}
