package handler

import "github.com/go-playground/validator/v10"

// Shared validator instance for request payloads; validator.Validate is
// safe for concurrent use and caches struct metadata.
var validate = validator.New()
