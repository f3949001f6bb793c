package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
clients:
  - name: Acme
    url: https://boards.greenhouse.io/acme
`))
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Scrape.NavTimeoutSeconds)
	assert.Equal(t, 4, cfg.Scrape.SettleSeconds)
	assert.Equal(t, 5, cfg.Scrape.ActionTimeoutSeconds)
	assert.Equal(t, 10, cfg.Scrape.PreviewLimit)
	assert.Equal(t, 25, cfg.Scrape.DigestGroupLimit)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
clients:
  - name: "  Acme  "
    url: "  https://boards.greenhouse.io/acme "
  - name: Globex
    url: https://careers.globex.com
mail:
  enabled: true
  smtp_host: smtp.gmail.com
  username: ops@example.com
  from: ops@example.com
  to: [alerts@example.com]
`))
	require.NoError(t, err)

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	require.Len(t, out.Clients, 2)
	assert.Equal(t, "Acme", out.Clients[0].Name)
	assert.Equal(t, "https://boards.greenhouse.io/acme", out.Clients[0].URL)
}

func TestValidateRejectsBadClients(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
clients:
  - name: Acme
    url: ftp://acme.example.com
  - name: ""
    url: https://x.example.com
`))
	require.NoError(t, err)

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 3) // bad scheme, missing name, and then no clients left
}

func TestValidateRequiresMailFieldsWhenEnabled(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
clients:
  - name: Acme
    url: https://careers.acme.com
mail:
  enabled: true
`))
	require.NoError(t, err)

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.NotEmpty(t, res.Errors)
}

func TestValidateWarnsOnDuplicateClientNames(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
clients:
  - name: Acme
    url: https://careers.acme.com
  - name: acme
    url: https://boards.greenhouse.io/acme
`))
	require.NoError(t, err)

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Len(t, out.Clients, 2)
	assert.NotEmpty(t, res.Warnings)
}

func TestEnsureUserConfigSeedsStarter(t *testing.T) {
	dataDir := t.TempDir()

	path, err := EnsureUserConfig(dataDir, filepath.Join(dataDir, "no-such-default.yml"))
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Clients)

	// second call returns the existing file untouched
	again, err := EnsureUserConfig(dataDir, "still-missing.yml")
	require.NoError(t, err)
	assert.Equal(t, path, again)
}
