// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for the quill CLI.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never just print and return nil)
//   - Let the caller decide how to display errors
//   - Map error kinds to distinct exit codes for scripting

package cli

import (
	"github.com/jeranaias/quill/internal/generator"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitAuthError indicates authentication or authorization failure
	ExitAuthError = 4
	// ExitNetworkError indicates network or connectivity error
	ExitNetworkError = 5
	// ExitServiceError indicates the model service rejected the request
	ExitServiceError = 6
)

// GetExitCode maps an error to its exit code.
func GetExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case generator.IsInvalidInput(err):
		return ExitUsageError
	case generator.IsAuth(err):
		return ExitAuthError
	case generator.IsNetwork(err):
		return ExitNetworkError
	case generator.IsService(err):
		return ExitServiceError
	default:
		return ExitGeneralError
	}
}
