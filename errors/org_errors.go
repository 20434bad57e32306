// errors/org_errors.go
package errors

import "errors"

var (
	ErrRoleNotFound    = errors.New("role not found")
	ErrRoleConflict    = errors.New("role conflict")
	ErrInvalidRoleData = errors.New("invalid role data")

	ErrOrgNotFound    = errors.New("organization not found")
	ErrOrgConflict    = errors.New("organization conflict")
	ErrInvalidOrgData = errors.New("invalid organization data")
	ErrOrgHasChildren = errors.New("organization has children")
)
