package naver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()

	previous, exists := os.LookupEnv(key)
	os.Unsetenv(key)

	t.Cleanup(func() {
		if exists {
			os.Setenv(key, previous)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("NAVER_CLIENT_ID", "env_client_id")
	t.Setenv("NAVER_CLIENT_SECRET", "env_client_secret")
	unsetEnv(t, "NAVER_BASE_URL")
	unsetEnv(t, "NAVER_TIMEOUT")

	conf, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "env_client_id", conf.ClientID; e != g {
		t.Errorf("conf.ClientID: expected %q, got %q", e, g)
	}

	if e, g := "env_client_secret", conf.ClientSecret; e != g {
		t.Errorf("conf.ClientSecret: expected %q, got %q", e, g)
	}

	if e, g := DefaultBaseURL, conf.BaseURL; e != g {
		t.Errorf("conf.BaseURL: expected %q, got %q", e, g)
	}

	if e, g := 10*time.Second, conf.Timeout; e != g {
		t.Errorf("conf.Timeout: expected %v, got %v", e, g)
	}

	if err := conf.Validate(); err != nil {
		t.Errorf("%+v", errors.WithStack(err))
	}
}

func TestConfigFromEnvFile(t *testing.T) {
	unsetEnv(t, "NAVER_CLIENT_ID")
	unsetEnv(t, "NAVER_CLIENT_SECRET")
	unsetEnv(t, "NAVER_BASE_URL")
	unsetEnv(t, "NAVER_TIMEOUT")

	t.Setenv("NAVER_CLIENT_ID", "already_set")

	envFile := filepath.Join(t.TempDir(), ".env")

	content := "NAVER_CLIENT_ID=file_client_id\nNAVER_CLIENT_SECRET=file_client_secret\nNAVER_TIMEOUT=3s\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	conf, err := ConfigFromEnv(envFile, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "already_set", conf.ClientID; e != g {
		t.Errorf("conf.ClientID: expected %q, got %q", e, g)
	}

	if e, g := "file_client_secret", conf.ClientSecret; e != g {
		t.Errorf("conf.ClientSecret: expected %q, got %q", e, g)
	}

	if e, g := 3*time.Second, conf.Timeout; e != g {
		t.Errorf("conf.Timeout: expected %v, got %v", e, g)
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []Config{
		{},
		{ClientID: "id"},
		{ClientSecret: "secret"},
		{ClientID: " ", ClientSecret: "secret"},
	}

	for i, conf := range testCases {
		if err := conf.Validate(); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("testCases[%d]: expected ErrMissingCredentials, got %+v", i, err)
		}
	}
}

func TestParseSearchType(t *testing.T) {
	testCases := map[string]SearchType{
		"news":        News,
		"NEWS":        News,
		" blog ":      Blog,
		"web":         Web,
		"webkr":       Web,
		"book":        Book,
		"shop":        Shopping,
		"shopping":    Shopping,
		"cafearticle": Cafe,
		"encyc":       Encyclopedia,
		"doc":         Academic,
	}

	for raw, expected := range testCases {
		searchType, err := ParseSearchType(raw)
		if err != nil {
			t.Errorf("ParseSearchType(%q): %+v", raw, err)
			continue
		}

		if e, g := expected, searchType; e != g {
			t.Errorf("ParseSearchType(%q): expected %q, got %q", raw, e, g)
		}
	}

	for _, raw := range []string{"", "video", "web kr"} {
		if _, err := ParseSearchType(raw); !errors.Is(err, ErrUnknownSearchType) {
			t.Errorf("ParseSearchType(%q): expected ErrUnknownSearchType, got %+v", raw, err)
		}
	}
}
