package models

import (
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

// User is a platform user as the users API returns it. The role is
// immutable for the lifetime of a session and gates which mutations
// the client will issue.
type User struct {
	ID    int64      `json:"id" example:"1"`
	Name  string     `json:"name" example:"John Doe"`
	Email string     `json:"email" example:"user@school.edu.tr"`
	Role  enums.Role `json:"role" example:"STUDENT"`
}
