package services

import (
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
	"github.com/oguzk/unienroll/internal/pkg/apperrors"
	"github.com/oguzk/unienroll/internal/session"
)

// Operation names one mutation the coordinator can issue. Every
// mutation checks the capability table exactly once, before any
// network call; scattering role-string comparisons across screens is
// what this table replaces.
type Operation string

const (
	OpCreateStudent  Operation = "create student"
	OpUpdateStudent  Operation = "update student"
	OpDeleteStudent  Operation = "delete student"
	OpCreateLecturer Operation = "create lecturer"
	OpUpdateLecturer Operation = "update lecturer"
	OpDeleteLecturer Operation = "delete lecturer"
	OpCreateAdmin    Operation = "create admin"
	OpDeleteAdmin    Operation = "delete admin"

	OpCreateCourse Operation = "create course"
	OpUpdateCourse Operation = "update course"
	OpDeleteCourse Operation = "delete course"

	OpManageLectureTimes Operation = "manage lecture times"

	OpCreateEnrollment Operation = "create enrollment"
	OpEnrollAfterDue   Operation = "enroll after due date"
	OpEditEnrollment   Operation = "edit enrollment"
	OpDeleteEnrollment Operation = "delete enrollment"
	OpChangeGrade      Operation = "change grade"
	OpChangeStatus     Operation = "change status"
)

// capabilities maps each operation to the roles allowed to issue it.
// This is a UX guard only; the server re-checks authorization on every
// request.
var capabilities = map[Operation][]enums.Role{
	OpCreateStudent:  {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpUpdateStudent:  {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpDeleteStudent:  {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpCreateLecturer: {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpUpdateLecturer: {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpDeleteLecturer: {enums.RoleSuperAdmin},
	OpCreateAdmin:    {enums.RoleSuperAdmin},
	OpDeleteAdmin:    {enums.RoleSuperAdmin},

	OpCreateCourse: {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpUpdateCourse: {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpDeleteCourse: {enums.RoleAdmin, enums.RoleSuperAdmin},

	OpManageLectureTimes: {enums.RoleAdmin, enums.RoleSuperAdmin},

	OpCreateEnrollment: {enums.RoleStudent, enums.RoleAdmin, enums.RoleSuperAdmin},
	OpEnrollAfterDue:   {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpEditEnrollment:   {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpDeleteEnrollment: {enums.RoleAdmin, enums.RoleSuperAdmin},
	OpChangeGrade:      {enums.RoleLecturer, enums.RoleAdmin, enums.RoleSuperAdmin},
	OpChangeStatus:     {enums.RoleLecturer, enums.RoleAdmin, enums.RoleSuperAdmin},
}

// Allowed reports whether the role may issue the operation.
func Allowed(role enums.Role, op Operation) bool {
	for _, allowed := range capabilities[op] {
		if role == allowed {
			return true
		}
	}
	return false
}

// authorize checks the session's role against the capability table.
// It fails before any network I/O: with ErrNotAuthenticated when no
// user record is present and with ErrPermissionDenied when the role
// may not issue the operation.
func authorize(sess *session.Session, op Operation) error {
	role, ok := sess.Role()
	if !ok {
		return apperrors.ErrNotAuthenticated
	}
	if !Allowed(role, op) {
		return apperrors.NewPermissionError(string(op))
	}
	return nil
}
