package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskmanager-simple/apperrors"
	"github.com/taskmanager-simple/config"
)

// respondError maps a service failure to an HTTP response. Authorization
// failures stay a 403 by default; with MASK_FORBIDDEN set they are presented
// as 404 so the API never confirms a resource's existence to a non-owner.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  gin.H{validationErr.Field: validationErr.Message},
		})
		return
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": notFoundErr.Error(),
		})
		return
	}

	var authErr *apperrors.AuthorizationError
	if errors.As(err, &authErr) {
		if config.MaskForbidden() {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": authErr.Resource + " not found with id: " + authErr.ID,
			})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": authErr.Error(),
		})
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": conflictErr.Error(),
		})
		return
	}

	log.Println(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}

// actorID pulls the verified user id placed in the context by AuthMiddleware.
// The bool mirrors c.Get: false means the middleware never ran.
func actorID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return "", false
	}
	return userID.(string), true
}
