package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Output.Format)
	assert.Equal(t, ".", cfg.Output.Directory)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
	assert.Empty(t, cfg.Faults.SeverityOrder)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[output]
directory = "/srv/reports"
format = "json"

[http]
timeout_seconds = 120
insecure_skip_verify = true

[faults]
severity_order = ["critical", "major", "warning"]

[log]
level = "debug"
file = "/var/log/ucs-report.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/reports", cfg.Output.Directory)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 120*time.Second, cfg.Timeout())
	assert.True(t, cfg.HTTP.InsecureSkipVerify)
	assert.Equal(t, []string{"critical", "major", "warning"}, cfg.Faults.SeverityOrder)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPartialTOMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", `
[output]
format = "text"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, ".", cfg.Output.Directory)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.toml", "not [valid toml")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadTargets(t *testing.T) {
	path := writeFile(t, "batch.yaml", `
targets:
  - endpoint: ucs1.example.com
    username: admin
    password_env: UCS1_PASSWORD
    output: /srv/reports/ucs1.html
  - endpoint: ucs2.example.com
    username: reporter
    password_file: /etc/ucs/ucs2.enc
`)

	targets, err := LoadTargets(path)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "ucs1.example.com", targets[0].Endpoint)
	assert.Equal(t, "UCS1_PASSWORD", targets[0].PasswordEnv)
	assert.Equal(t, "/srv/reports/ucs1.html", targets[0].Output)
	assert.Equal(t, "/etc/ucs/ucs2.enc", targets[1].PasswordFile)
}

func TestLoadTargetsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty list", "targets: []"},
		{"missing endpoint", "targets:\n  - username: admin"},
		{"missing username", "targets:\n  - endpoint: ucs1"},
		{"bad yaml", ":\n::bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "batch.yaml", tt.content)
			_, err := LoadTargets(path)
			assert.Error(t, err)
		})
	}
}
