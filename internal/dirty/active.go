package dirty

import "sync"

// The active dirty set is process-wide and push/pop scoped so that a nested
// layout pass (a debug overlay drawn after the primary frame, for example)
// installs its own context and restores the outer one when done. Callers
// must pop what they push; an unbalanced stack is not detected.
var active struct {
	mu    sync.Mutex
	stack []*Set
}

// Push installs s as the active dirty set.
func Push(s *Set) {
	active.mu.Lock()
	defer active.mu.Unlock()
	active.stack = append(active.stack, s)
}

// Pop removes and returns the active dirty set, restoring the previous one.
// Popping an empty stack returns nil.
func Pop() *Set {
	active.mu.Lock()
	defer active.mu.Unlock()
	n := len(active.stack)
	if n == 0 {
		return nil
	}
	s := active.stack[n-1]
	active.stack[n-1] = nil
	active.stack = active.stack[:n-1]
	return s
}

// Active returns the innermost active dirty set, or nil if none is installed.
func Active() *Set {
	active.mu.Lock()
	defer active.mu.Unlock()
	if n := len(active.stack); n > 0 {
		return active.stack[n-1]
	}
	return nil
}

// Depth returns the number of pushed sets.
func Depth() int {
	active.mu.Lock()
	defer active.mu.Unlock()
	return len(active.stack)
}
