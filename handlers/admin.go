package handlers

import (
	"errors"
	"net/http"

	"medcard/services/admin"
	"medcard/session"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves administrator login.
type AdminHandler struct {
	Credentials admin.CredentialService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(cs admin.CredentialService) *AdminHandler {
	return &AdminHandler{Credentials: cs}
}

// LoginHandler validates a username/password pair and returns the session
// record the browser should hold. One generic message covers every
// authentication failure.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid login request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	cred, err := ah.Credentials.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrMissingCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, session.New(cred.Username, cred.Role))
}
