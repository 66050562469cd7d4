package service

import "github.com/go-playground/validator/v10"

// Shared validator for request and patch structs.
var validate = validator.New(validator.WithRequiredStructEnabled())
