package testutil

import "sync"

// LineRecorder collects lines handed to a sink.
type LineRecorder struct {
	mu    sync.Mutex
	lines []string
}

// Sink records line. Pass the method value wherever a sink is expected.
func (r *LineRecorder) Sink(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// Lines returns a copy of the recorded lines.
func (r *LineRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Last returns the most recent line, or "" when nothing was recorded.
func (r *LineRecorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[len(r.lines)-1]
}
