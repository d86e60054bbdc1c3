package dto

// UserCreationReq represents the body for creating a student, lecturer
// or admin; the role is carried by the request path, not the body.
type UserCreationReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserUpdateReq represents the body for updating a user. Empty fields
// are left unchanged by the server.
type UserUpdateReq struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}
