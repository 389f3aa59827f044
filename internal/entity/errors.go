package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidToken         = errors.New("invalid token")
)

// PermissionInUseError blocks permission deletion while any user still
// references it and names every holder so the caller can act on it.
type PermissionInUseError struct {
	Permission string
	Holders    []UserSummary
}

func (e *PermissionInUseError) Error() string {
	names := make([]string, 0, len(e.Holders))
	for _, h := range e.Holders {
		names = append(names, h.EmployeeNumber)
	}

	return fmt.Sprintf("permission %q is still assigned to users: %s", e.Permission, strings.Join(names, ", "))
}
