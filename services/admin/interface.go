package admin

import "medcard/models"

// CredentialService authenticates administrators against the static
// credential list loaded at startup.
type CredentialService interface {
	// Authenticate returns the matching credential with its password hash
	// stripped, or ErrMissingCredentials / ErrInvalidCredentials.
	Authenticate(username, password string) (*models.AdminCredential, error)
}

// DefaultCredentialService is the production implementation.
type DefaultCredentialService struct {
	credentials []models.AdminCredential
}
