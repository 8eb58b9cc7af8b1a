// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package generator produces articles by calling a hosted LLM provider.
package generator

import "errors"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the generation client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling. The UI maps each type
// to a distinct user-facing message; none of them trigger a retry.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeInvalidInput means the request was rejected before any
	// network call (e.g. empty title).
	ErrTypeInvalidInput
	// ErrTypeAuth means the credential is missing or the provider
	// rejected it (HTTP 401/403).
	ErrTypeAuth
	// ErrTypeNetwork covers timeouts and connectivity failures.
	ErrTypeNetwork
	// ErrTypeService covers any other non-2xx provider response, and
	// responses with no usable content.
	ErrTypeService
)

// Sentinel errors for easy checking.
var (
	ErrEmptyTitle    = &ClientError{Type: ErrTypeInvalidInput, Message: "article title is required"}
	ErrEmptyPrompt   = &ClientError{Type: ErrTypeInvalidInput, Message: "prompt is empty"}
	ErrNoAPIKey      = &ClientError{Type: ErrTypeAuth, Message: "API key not configured"}
	ErrEmptyResponse = &ClientError{Type: ErrTypeService, Message: "provider returned no content"}
)

// IsInvalidInput reports whether err is an input validation error.
func IsInvalidInput(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeInvalidInput
	}
	return false
}

// IsAuth reports whether err is an authentication error.
func IsAuth(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeAuth
	}
	return false
}

// IsNetwork reports whether err is a timeout or connectivity error.
func IsNetwork(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeNetwork
	}
	return false
}

// IsService reports whether err is a provider-side error.
func IsService(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeService
	}
	return false
}
