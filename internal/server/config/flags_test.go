package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_OverridesEnv(t *testing.T) {
	t.Setenv(EnvAddress, ":8080")
	t.Setenv(EnvTokenSecret, "env-token-secret")
	t.Setenv(EnvSessionSecret, "env-session-secret")
	t.Setenv(EnvSessionTTL, "48h")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, cfg.loadEnv())

	// Флаги перекрывают окружение, обе формы записи значений
	err := cfg.parseFlags([]string{"-a", ":9090", "-s=flag-token-secret", "-t", "15m"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "flag-token-secret", cfg.TokenSecret)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)

	// Незаданные флаги не трогают значения из окружения
	assert.Equal(t, "env-session-secret", cfg.SessionSecret)
	assert.Equal(t, 48*time.Hour, cfg.SessionTTL)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := cfg.parseFlags([]string{
		"-a", ":9090",
		"-d", "/tmp/authd.db",
		"-s", "token-secret",
		"-c", "session-secret",
		"-t", "30m",
		"-e", "72h",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "/tmp/authd.db", cfg.DatabasePath)
	assert.Equal(t, "token-secret", cfg.TokenSecret)
	assert.Equal(t, "session-secret", cfg.SessionSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	// Чужие флаги (-version, флаги go test) отфильтровываются
	err := cfg.parseFlags([]string{"-version", "-test.v", "-test.run=TestFoo", "-a", ":9090"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "authd.db", cfg.DatabasePath)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := cfg.parseFlags([]string{"-t", "not-a-duration"})
	assert.Error(t, err)
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "empty args",
			args: nil,
			want: nil,
		},
		{
			name: "known flag with separate value",
			args: []string{"-a", ":9090"},
			want: []string{"-a", ":9090"},
		},
		{
			name: "known flag with equals value",
			args: []string{"-d=/tmp/authd.db"},
			want: []string{"-d=/tmp/authd.db"},
		},
		{
			name: "unknown flags dropped with their form",
			args: []string{"-version", "-test.run=TestFoo", "-a", ":9090"},
			want: []string{"-a", ":9090"},
		},
		{
			name: "mixed known and unknown",
			args: []string{"-a", ":9090", "-verbose", "-e=72h"},
			want: []string{"-a", ":9090", "-e=72h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterArgs(tt.args, knownFlags))
		})
	}
}
