package secrets

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// “Service” groups the engine's secrets in the OS keychain.
	KeyringService = "talentbridge"
)

// BackendTokenAccount derives the keychain account name for the backend API
// token from the backend host and the signed-in company.
func BackendTokenAccount(baseURL, companyID string) string {
	host := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return fmt.Sprintf("talentbridge:backend:%s@%s", companyID, host)
}

func GetBackendToken(account string) (string, error) {
	if strings.TrimSpace(account) != "" {
		tok, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(tok) != "" {
			return tok, nil
		}
	}
	return "", errors.New("backend API token not found in keychain")
}

func SetBackendToken(account string, token string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, account, token)
}

func DeleteBackendToken(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
