package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// fakeVerifier accepts the single token "good-token" as uid-1.
type fakeVerifier struct{}

func (fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if idToken != "good-token" {
		return nil, errors.New("invalid token")
	}
	return &auth.Token{
		UID: "uid-1",
		Claims: map[string]interface{}{
			"email": "alice@example.com",
			"name":  "Alice",
		},
	}, nil
}

// stubTaskService wires a canned response into the task routes.
type stubTaskService struct {
	createErr error
	created   *models.CreateTaskRequest
}

func (s *stubTaskService) CreateTask(ctx context.Context, callerUID string, req models.CreateTaskRequest) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.created = &req
	return "task-1", nil
}

func (s *stubTaskService) CompleteTask(ctx context.Context, callerUID, familyID, taskID string) error {
	return s.createErr
}

func testRouter(t *testing.T, task core.TaskService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, fakeVerifier{}, zap.NewNop(), Services{Task: task})
	return router
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthGate(t *testing.T) {
	router := testRouter(t, &stubTaskService{})

	t.Run("missing header rejected before validation", func(t *testing.T) {
		// Body is invalid too; authentication must win.
		w := doJSON(router, http.MethodPost, "/api/v1/tasks", "", `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unauthenticated", resp.Code)
	})

	t.Run("bad token rejected", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/tasks", "bad-token", `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "good-token") // no Bearer prefix
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("health endpoint is public", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTaskEndpoints(t *testing.T) {
	t.Run("create returns id on success", func(t *testing.T) {
		svc := &stubTaskService{}
		router := testRouter(t, svc)

		w := doJSON(router, http.MethodPost, "/api/v1/tasks", "good-token",
			`{"title":"Walk the dog","familyId":"fam-1","assignedTo":"uid-2"}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "task-1", resp["taskId"])
		require.NotNil(t, svc.created)
		assert.Equal(t, "Walk the dog", svc.created.Title)
	})

	t.Run("validation error maps to 400 with joined message", func(t *testing.T) {
		svc := &stubTaskService{createErr: &core.ValidationError{
			Violations: []string{"Title is required", "Assignee is required"},
		}}
		router := testRouter(t, svc)

		w := doJSON(router, http.MethodPost, "/api/v1/tasks", "good-token", `{"familyId":"fam-1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid-argument", resp.Code)
		assert.Equal(t, "Title is required, Assignee is required", resp.Message)
	})

	t.Run("permission denied maps to 403", func(t *testing.T) {
		router := testRouter(t, &stubTaskService{createErr: core.ErrPermissionDenied})
		w := doJSON(router, http.MethodPost, "/api/v1/tasks", "good-token", `{"title":"x"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "permission-denied", resp.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		router := testRouter(t, &stubTaskService{createErr: core.ErrNotFound})
		w := doJSON(router, http.MethodPost, "/api/v1/tasks/fam-1/task-9/complete", "good-token", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unexpected error maps to generic 500", func(t *testing.T) {
		router := testRouter(t, &stubTaskService{createErr: errors.New("firestore exploded")})
		w := doJSON(router, http.MethodPost, "/api/v1/tasks", "good-token", `{"title":"x"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "internal", resp.Code)
		assert.NotContains(t, resp.Message, "firestore", "internal details must not leak")
	})
}
