package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://10.0.0.5:8080", "-t", "30"},
			expected: &Config{
				ServerBaseURL:  "http://10.0.0.5:8080",
				RequestTimeout: 30 * time.Second,
			},
		},
		{
			name: "defaults survive when flags absent",
			args: []string{"cmd"},
			expected: &Config{
				ServerBaseURL:  "http://localhost:5000",
				RequestTimeout: 10 * time.Second,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			origArgs := os.Args
			defer func() { os.Args = origArgs }()
			os.Args = tc.args

			cfg := &Config{}
			cfg.LoadDefaults()
			parseFlags(cfg)

			assert.Equal(t, tc.expected, cfg)
		})
	}
}
