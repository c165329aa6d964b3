package services

import "github.com/taskmanager-simple/apperrors"

// Owned is implemented by any resource whose owner resolves to a user id.
// Projects own themselves; a task's owner is its project's owner, so task
// operations pass the parent project here.
type Owned interface {
	OwnerID() string
}

// AssertOwnership is the single ownership check used by every project and
// task operation. It is a pure comparison: no lookups, no side effects. The
// kind and id only label the resulting error, which stays distinct from
// "not found" — masking the difference is the API layer's call.
func AssertOwnership(actorID string, resource Owned, kind, id string) error {
	if resource.OwnerID() == actorID {
		return nil
	}
	return apperrors.NewForbidden(kind, id)
}
