package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmanager-simple/apperrors"
	"github.com/taskmanager-simple/models"
	"github.com/taskmanager-simple/services"
)

func Test_AssertOwnership(t *testing.T) {
	project := models.Project{ID: "p1", Title: "Launch", UserID: "u1"}

	// Matching actor passes
	require.NoError(t, services.AssertOwnership("u1", project, "project", "p1"))

	// Any other actor is denied with an authorization error, not a not-found
	err := services.AssertOwnership("u2", project, "project", "p1")
	var authErr *apperrors.AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "project", authErr.Resource)
	assert.Equal(t, "p1", authErr.ID)

	var notFoundErr *apperrors.NotFoundError
	assert.NotErrorAs(t, err, &notFoundErr)
}

func Test_AssertOwnership_IsDeterministic(t *testing.T) {
	project := models.Project{ID: "p1", UserID: "u1"}

	// Same inputs, same answer, and the resource is untouched
	for i := 0; i < 3; i++ {
		require.NoError(t, services.AssertOwnership("u1", project, "project", "p1"))
		require.Error(t, services.AssertOwnership("u2", project, "project", "p1"))
	}
	assert.Equal(t, "u1", project.UserID)
}
