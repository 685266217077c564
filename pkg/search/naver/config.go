package naver

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const DefaultBaseURL = "https://openapi.naver.com/v1/search"

type Config struct {
	ClientID     string        `env:"NAVER_CLIENT_ID"`
	ClientSecret string        `env:"NAVER_CLIENT_SECRET"`
	BaseURL      string        `env:"NAVER_BASE_URL" envDefault:"https://openapi.naver.com/v1/search"`
	Timeout      time.Duration `env:"NAVER_TIMEOUT" envDefault:"10s"`
}

// Validate checks that both credentials are set.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" || strings.TrimSpace(c.ClientSecret) == "" {
		return errors.WithStack(ErrMissingCredentials)
	}

	return nil
}

// ConfigFromEnv reads the configuration from the environment. The given
// dotenv files are loaded first when they exist; variables already present in
// the environment are never overridden.
func ConfigFromEnv(envFiles ...string) (Config, error) {
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if f == "" {
			continue
		}

		if _, err := os.Stat(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return Config{}, errors.WithStack(err)
		}

		existing = append(existing, f)
	}

	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Config{}, errors.Wrapf(err, "could not load env files %v", existing)
		}
	}

	var conf Config
	if err := env.Parse(&conf); err != nil {
		return Config{}, errors.Wrap(err, "could not parse naver configuration")
	}

	return conf, nil
}
