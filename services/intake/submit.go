package intake

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"medcard/models"
	"medcard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minAge                 = 18
	maxAge                 = 120
	minFullNameLength      = 2
	minMedicalDetailLength = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validate applies every intake rule and collects all violations instead of
// stopping at the first one.
func (s *DefaultIntakeService) validate(input models.RawSubmissionInput) []FieldError {
	var errs []FieldError

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		errs = append(errs, FieldError{Field: "fullName", Message: "Full name is required"})
	} else if len(fullName) < minFullNameLength {
		errs = append(errs, FieldError{Field: "fullName", Message: "Name must be at least 2 characters"})
	}

	if input.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(input.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email format"})
	}

	if input.Age == nil {
		errs = append(errs, FieldError{Field: "age", Message: "Age is required"})
	} else if *input.Age < minAge || *input.Age > maxAge {
		errs = append(errs, FieldError{Field: "age", Message: "Age must be between 18 and 120"})
	}

	if condition := strings.TrimSpace(input.MedicalCondition); condition == "" {
		errs = append(errs, FieldError{Field: "medicalCondition", Message: "Medical condition is required"})
	} else if len(condition) < minMedicalDetailLength {
		errs = append(errs, FieldError{Field: "medicalCondition", Message: "Please provide more details (at least 10 characters)"})
	}

	if input.State == "" {
		errs = append(errs, FieldError{Field: "state", Message: "State is required"})
	} else if s.States != nil {
		if _, ok := s.States.Find(input.State); !ok {
			errs = append(errs, FieldError{Field: "state", Message: "Unknown state selection"})
		}
	}

	if input.AgreedToPrivacy == nil || !*input.AgreedToPrivacy {
		errs = append(errs, FieldError{Field: "agreedToPrivacy", Message: "You must agree to the privacy policy"})
	}

	return errs
}

func (s *DefaultIntakeService) Submit(ctx context.Context, input models.RawSubmissionInput) (*models.Submission, error) {
	logger := utils.GetLogger()

	if fieldErrs := s.validate(input); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	sub := models.Submission{
		ID:               uuid.New().String(),
		FullName:         strings.TrimSpace(input.FullName),
		Email:            input.Email,
		Age:              *input.Age,
		MedicalCondition: strings.TrimSpace(input.MedicalCondition),
		State:            input.State,
		AgreedToPrivacy:  *input.AgreedToPrivacy,
		SubmittedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Append(ctx, sub); err != nil {
		logger.Error("Failed to persist submission", zap.String("submissionID", sub.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}

	logger.Info("Submission accepted", zap.String("submissionID", sub.ID), zap.String("state", sub.State))
	return &sub, nil
}

func (s *DefaultIntakeService) ListAll(ctx context.Context) ([]models.Submission, error) {
	return s.Repo.ListAll(ctx)
}
