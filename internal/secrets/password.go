package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "careerwatch"

// Env fallbacks let headless schedulers (cron, CI) run without a keyring.
var passwordEnvVars = []string{"SMTP_PASSWORD", "GMAIL_APP_PASSWORD"}

func SMTPKeyringAccount(username, host string) string {
	return fmt.Sprintf("careerwatch:smtp:%s@%s", username, host)
}

// GetSMTPPassword checks the OS keychain first, then the env fallbacks.
func GetSMTPPassword(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		pw, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}

	for _, k := range passwordEnvVars {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v, nil
		}
	}

	return "", errors.New("SMTP password not found (set it in the keychain or via SMTP_PASSWORD)")
}

func SetSMTPPassword(keyringAccount, password string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, password)
}

func DeleteSMTPPassword(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}
