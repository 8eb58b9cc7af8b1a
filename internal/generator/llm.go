// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import "context"

// LLMClient abstracts the completion provider so the generation pipeline
// can be tested without network access.
type LLMClient interface {
	// Complete sends one prompt and returns the full completion text.
	// One outbound call per invocation; no state is retained between
	// calls and failures are never retried.
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Prompt is the message pair sent to the provider for one completion.
type Prompt struct {
	System string
	User   string
}
