package handlers

import (
	"errors"
	"net/http"

	"medcard/models"
	"medcard/services/intake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EligibilityHandler serves application submission and listing.
type EligibilityHandler struct {
	Service intake.IntakeService
}

// NewEligibilityHandler creates a new EligibilityHandler.
func NewEligibilityHandler(svc intake.IntakeService) *EligibilityHandler {
	return &EligibilityHandler{Service: svc}
}

// SubmitHandler handles a new eligibility application.
func (eh *EligibilityHandler) SubmitHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.RawSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warn("Invalid submission request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sub, err := eh.Service.Submit(c.Request.Context(), input)
	if err != nil {
		var vErr *intake.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": vErr.Fields})
			return
		}
		// Storage failure: detail stays in the logs, the caller gets an
		// opaque error.
		logger.Error("Submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Application submitted successfully",
		"submissionId": sub.ID,
	})
}

// ListHandler returns all submissions, oldest first. A missing store is an
// empty list, not an error.
func (eh *EligibilityHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	subs, err := eh.Service.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}
