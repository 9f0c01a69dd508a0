package admin

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"medcard/models"
	"medcard/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// NewCredentialService loads the credential list from the given JSON file.
// Every entry must carry a bcrypt password hash; plaintext passwords are
// rejected at load time so they cannot sneak into a deployment.
func NewCredentialService(path string) (*DefaultCredentialService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential list %s: %w", path, err)
	}

	var creds []models.AdminCredential
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credential list %s: %w", path, err)
	}

	for _, c := range creds {
		if c.Username == "" {
			return nil, fmt.Errorf("credential list %s: entry with empty username", path)
		}
		if !strings.HasPrefix(c.PasswordHash, "$2a$") && !strings.HasPrefix(c.PasswordHash, "$2b$") {
			return nil, fmt.Errorf("credential list %s: entry %q does not carry a bcrypt hash", path, c.Username)
		}
	}

	return &DefaultCredentialService{credentials: creds}, nil
}

// NewCredentialServiceFromList builds a service from an in-memory list.
func NewCredentialServiceFromList(creds []models.AdminCredential) *DefaultCredentialService {
	return &DefaultCredentialService{credentials: creds}
}

func (s *DefaultCredentialService) Authenticate(username, password string) (*models.AdminCredential, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	// Usernames are matched case-sensitively. Credential values are never
	// logged, only the outcome.
	for _, c := range s.credentials {
		if c.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
			break
		}
		utils.GetLogger().Info("Admin login succeeded", zap.String("username", c.Username))
		return &models.AdminCredential{Username: c.Username, Role: c.Role}, nil
	}

	utils.GetLogger().Warn("Admin login failed")
	return nil, ErrInvalidCredentials
}
