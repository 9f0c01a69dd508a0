package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Eligibility endpoints.
	SubmitEligibilityHandler gin.HandlerFunc
	ListSubmissionsHandler   gin.HandlerFunc

	// State catalog endpoints.
	ListStatesHandler     gin.HandlerFunc
	GetStateBySlugHandler gin.HandlerFunc

	// Admin endpoints.
	AdminLoginHandler gin.HandlerFunc
}
