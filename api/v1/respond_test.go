package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/taskmanager-simple/apperrors"
)

func recordError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w
}

func Test_RespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation_is_bad_request", err: apperrors.NewValidation("title", "title is required"), wantStatus: http.StatusBadRequest},
		{name: "not_found", err: apperrors.NewNotFound("project", "p1"), wantStatus: http.StatusNotFound},
		{name: "forbidden_by_default", err: apperrors.NewForbidden("project", "p1"), wantStatus: http.StatusForbidden},
		{name: "conflict", err: apperrors.NewConflict("email already registered"), wantStatus: http.StatusConflict},
		{name: "store_failure_is_internal", err: apperrors.NewStore("create project", errors.New("connection refused")), wantStatus: http.StatusInternalServerError},
		{name: "unclassified_is_internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := recordError(tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func Test_RespondError_MaskedForbidden(t *testing.T) {
	t.Setenv("MASK_FORBIDDEN", "true")

	w := recordError(apperrors.NewForbidden("project", "p1"))

	// With masking on, a denial looks exactly like a missing resource
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "do not own")
}

func Test_RespondError_ValidationCarriesFieldDetail(t *testing.T) {
	w := recordError(apperrors.NewValidation("description", "description cannot exceed 1000 characters"))

	assert.Contains(t, w.Body.String(), "description")
	assert.Contains(t, w.Body.String(), "cannot exceed")
}
