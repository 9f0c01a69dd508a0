package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"medcard/catalog"
	submissionRepo "medcard/database/repository/submission"
	"medcard/handlers"
	"medcard/models"
	"medcard/routes"
	adminSvc "medcard/services/admin"
	"medcard/services/intake"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const statesJSON = `[
	{"slug": "california", "name": "California", "ageRequirement": 18, "cardFee": 100, "description": "CA program"},
	{"slug": "texas", "name": "Texas", "ageRequirement": 18, "cardFee": 0, "description": "TX program"}
]`

// newTestRouter wires the full route table against a file store in a temp
// directory and a single admin/s3cret credential.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	statesPath := filepath.Join(t.TempDir(), "states.json")
	require.NoError(t, os.WriteFile(statesPath, []byte(statesJSON), 0o644))
	cat, err := catalog.Load(statesPath)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	creds := adminSvc.NewCredentialServiceFromList([]models.AdminCredential{
		{Username: "admin", PasswordHash: string(hash), Role: models.RoleAdmin},
	})

	repo := submissionRepo.NewFileSubmissionRepo(filepath.Join(t.TempDir(), "submissions.json"))
	intakeService := &intake.DefaultIntakeService{Repo: repo, States: cat}

	eligibilityHandler := handlers.NewEligibilityHandler(intakeService)
	stateHandler := handlers.NewStateHandler(cat)
	adminHandler := handlers.NewAdminHandler(creds)

	router := gin.New()
	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		SubmitEligibilityHandler: eligibilityHandler.SubmitHandler,
		ListSubmissionsHandler:   eligibilityHandler.ListHandler,
		ListStatesHandler:        stateHandler.ListHandler,
		GetStateBySlugHandler:    stateHandler.GetBySlugHandler,
		AdminLoginHandler:        adminHandler.LoginHandler,
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func validSubmissionBody() map[string]any {
	return map[string]any{
		"fullName":         "Jane Doe",
		"email":            "jane@example.com",
		"age":              30,
		"medicalCondition": "Chronic back pain requiring treatment",
		"state":            "california",
		"agreedToPrivacy":  true,
	}
}
