// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"sync"
)

// cancelManager manages the cancel function for the in-flight generation
// request with mutex protection. The generation goroutine and the Update
// loop both touch it, so access must be synchronized.
// IMPORTANT: This must be held as a pointer (*cancelManager) in the Model
// to prevent copying the mutex when Bubble Tea returns model copies.
type cancelManager struct {
	mu         sync.Mutex
	cancelFunc context.CancelFunc
}

func newCancelManager() *cancelManager {
	return &cancelManager{}
}

// set stores a new cancel function, cancelling any previous one first so
// contexts never leak.
func (cm *cancelManager) set(fn context.CancelFunc) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.cancelFunc != nil {
		cm.cancelFunc()
	}
	cm.cancelFunc = fn
}

// cancel invokes the stored cancel function and clears it.
// Safe to call multiple times or with no cancel function set.
func (cm *cancelManager) cancel() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.cancelFunc != nil {
		cm.cancelFunc()
		cm.cancelFunc = nil
	}
}
