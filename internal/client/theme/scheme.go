package theme

import (
	"os"
	"strings"
	"sync"
)

// StaticSource is a SchemeSource with a fixed scheme and manual change
// injection. The CLI uses it because a terminal has no scheme-change
// notifications; tests use it to simulate OS changes.
type StaticSource struct {
	mu       sync.Mutex
	scheme   Mode
	watchers []func(Mode)
}

// NewStaticSource creates a source reporting the given scheme.
func NewStaticSource(scheme Mode) *StaticSource {
	if scheme != ModeDark {
		scheme = ModeLight
	}
	return &StaticSource{scheme: scheme}
}

// DetectSource builds a StaticSource from the terminal environment. The
// COLORFGBG convention (set by several terminal emulators) encodes the
// background color as the last field; 0-6 and 8 are dark backgrounds.
func DetectSource() *StaticSource {
	return NewStaticSource(schemeFromEnv(os.Getenv("COLORFGBG")))
}

func schemeFromEnv(colorfgbg string) Mode {
	fields := strings.Split(colorfgbg, ";")
	if len(fields) < 2 {
		return ModeLight
	}
	switch fields[len(fields)-1] {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return ModeDark
	}
	return ModeLight
}

// Scheme returns the current scheme.
func (s *StaticSource) Scheme() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheme
}

// Watch registers a callback for scheme changes injected via SetScheme.
func (s *StaticSource) Watch(fn func(Mode)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// SetScheme changes the reported scheme and notifies watchers.
func (s *StaticSource) SetScheme(scheme Mode) {
	s.mu.Lock()
	s.scheme = scheme
	watchers := make([]func(Mode), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(scheme)
	}
}
