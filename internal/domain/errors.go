package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrInvalidRole         = errors.New("invalid user role")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrEmptyText           = errors.New("extracted text is empty")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrAlreadyResolved     = errors.New("approval item already resolved")
	ErrWebhookFailed       = errors.New("webhook delivery failed")
	ErrEmptyCampaign       = errors.New("campaign has no recipients")
)
