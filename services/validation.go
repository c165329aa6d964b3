package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/taskmanager-simple/apperrors"
	"gorm.io/gorm"
)

const maxDescriptionLength = 1000

// validateTitle rejects blank titles
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidation("title", "title is required")
	}
	return nil
}

// validateDescription rejects descriptions over the length bound
func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return apperrors.NewValidation("description", "description cannot exceed 1000 characters")
	}
	return nil
}

// classifyLookup turns a repository lookup failure into the right error
// kind: record-not-found becomes NotFoundError, anything else a StoreError
func classifyLookup(err error, resource, id, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(resource, id)
	}
	return apperrors.NewStore(op, err)
}
