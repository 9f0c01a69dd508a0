package models

import "time"

// Submission is one applicant's eligibility application. Created exactly once
// by the intake service, never mutated or deleted.
type Submission struct {
	ID               string    `json:"id" bson:"id"`
	FullName         string    `json:"fullName" bson:"fullName"`
	Email            string    `json:"email" bson:"email"`
	Age              int       `json:"age" bson:"age"`
	MedicalCondition string    `json:"medicalCondition" bson:"medicalCondition"`
	State            string    `json:"state" bson:"state"` // catalog slug
	AgreedToPrivacy  bool      `json:"agreedToPrivacy" bson:"agreedToPrivacy"`
	SubmittedAt      time.Time `json:"submittedAt" bson:"submittedAt"`
}

// RawSubmissionInput is the untrusted request body for a new application.
// Age and AgreedToPrivacy are pointers so that "absent" and "zero" can be
// told apart during validation.
type RawSubmissionInput struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Age              *int   `json:"age"`
	MedicalCondition string `json:"medicalCondition"`
	State            string `json:"state"`
	AgreedToPrivacy  *bool  `json:"agreedToPrivacy"`
}
