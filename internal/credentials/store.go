package credentials

import (
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "vallas"
	keyringUser = "gemini-api-key"
	envVar      = "GEMINI_API_KEY"
)

// APIKey resolves the Gemini credential. The environment variable wins;
// the OS keyring is the fallback. An empty result is a normal condition
// handled downstream, never an error.
func APIKey() string {
	if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
		return key
	}

	key, err := keyring.Get(serviceName, keyringUser)
	if err != nil {
		// Not found or no keyring backend available: run unconfigured
		return ""
	}
	return strings.TrimSpace(key)
}

// SaveAPIKey stores the credential in the OS keyring.
func SaveAPIKey(key string) error {
	return keyring.Set(serviceName, keyringUser, key)
}

// DeleteAPIKey removes the credential from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(serviceName, keyringUser)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}
