// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import "context"

// MockLLM is a canned LLMClient for tests and local debugging. It records
// the prompts it receives and returns the queued responses in order.
type MockLLM struct {
	// Responses are returned one per Complete call; the last entry
	// repeats once the queue is exhausted.
	Responses []string

	// Err, if set, is returned by every Complete call.
	Err error

	// Prompts records every prompt received.
	Prompts []Prompt

	calls int
}

func (m *MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", ErrEmptyResponse
	}
	i := m.calls
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	m.calls++
	return m.Responses[i], nil
}
