package services

import "errors"

// Service-level errors. Engine errors (package brackets) pass through
// services untouched; these cover everything the boundary layers add on top.
var (
	ErrAuthInvalidCredentials = errors.New("invalid username or password")
	ErrTeamNotFound           = errors.New("team not found")
	ErrUploadsNotConfigured   = errors.New("file uploads are not configured")
	ErrUnsupportedLogoType    = errors.New("unsupported logo content type")
)
