// Package services coordinates mutations against the platform API and
// applies their effects to the entity caches. Every mutation follows
// the same shape: capability check, request validation, network call,
// then exactly one cache effect. A failed call leaves every cache
// untouched.
package services

import (
	"github.com/go-playground/validator/v10"

	"github.com/oguzk/unienroll/internal/pkg/apperrors"
)

// validate checks outgoing request structs against their validate
// tags. Shared across services; the validator is safe for concurrent
// use.
var validate = validator.New()

// checkRequest validates a request body before it goes on the wire.
func checkRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperrors.NewValidationError(err)
	}
	return nil
}
