package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// starterConfig is written on first run when no repo default exists either,
// so a fresh install always has something to edit.
const starterConfig = `clients: []
  # - name: Example Co
  #   url: https://boards.greenhouse.io/exampleco

mail:
  enabled: false
  smtp_host: smtp.gmail.com
  smtp_port: 587
  username: ""
  from: ""
  to: []

scrape:
  nav_timeout_seconds: 90
  settle_seconds: 4
  action_timeout_seconds: 5
  preview_limit: 10
  digest_group_limit: 25
`

// EnsureUserConfig makes sure dataDir holds a config.yml, seeding it from
// defaultPath (or the built-in starter) on first run, and returns its path.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if errors.Is(err, os.ErrNotExist) {
		if werr := os.WriteFile(userPath, []byte(starterConfig), 0o644); werr != nil {
			return "", werr
		}
		return userPath, nil
	}
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}
