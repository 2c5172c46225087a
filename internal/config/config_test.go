package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.Server.GRPCAddr)
	assert.Equal(t, 5*time.Minute, cfg.Context.TTL.Std())
	assert.Equal(t, 10*time.Second, cfg.Context.FanoutTimeout.Std())
	assert.Equal(t, 20, cfg.Context.RecentLimit)
	assert.Equal(t, 6, cfg.Context.HistoryMonths)
	assert.Equal(t, 24*time.Hour, cfg.Ledger.MaxAge.Std())
	assert.NotEmpty(t, cfg.Janitor.SweepCron)
	assert.NotEmpty(t, cfg.Janitor.EvictionCron)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  grpc_addr: ":7000"
  api_token: "secret"
database:
  connection_string: "host=db dbname=finpilot"
context:
  ttl: 1m
ledger:
  max_age: 48h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.GRPCAddr)
	assert.Equal(t, "secret", cfg.Server.APIToken)
	assert.Equal(t, time.Minute, cfg.Context.TTL.Std())
	assert.Equal(t, 48*time.Hour, cfg.Ledger.MaxAge.Std())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FINPILOT_GRPC_ADDR", ":9999")
	t.Setenv("FINPILOT_API_TOKEN", "env-token")
	t.Setenv("FINPILOT_CONTEXT_TTL", "30s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.GRPCAddr)
	assert.Equal(t, "env-token", cfg.Server.APIToken)
	assert.Equal(t, 30*time.Second, cfg.Context.TTL.Std())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Error(t, cfg.Validate(), "api token and db connection are required")

	cfg.Server.APIToken = "secret"
	assert.Error(t, cfg.Validate())

	cfg.Database.ConnectionString = "host=db dbname=finpilot"
	assert.NoError(t, cfg.Validate())
}
