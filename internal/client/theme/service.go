// Package theme implements the appearance preference service. An explicit
// stored preference overrides the OS-reported color scheme; absence of a
// stored preference means follow the OS, and OS scheme changes reach the
// active theme only while no explicit preference is stored.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nakhrali/storefront/internal/client/storage"
)

// Mode is a theme choice.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	// ModeSystem is never stored: choosing it clears the stored preference
	// and returns the client to follow-the-OS mode.
	ModeSystem Mode = "system"
)

// SchemeSource reports the OS-preferred color scheme and, optionally,
// pushes changes to a subscriber.
type SchemeSource interface {
	// Scheme returns ModeLight or ModeDark.
	Scheme() Mode

	// Watch registers a callback for OS scheme changes. Implementations
	// without change notification may ignore the callback.
	Watch(fn func(Mode))
}

// Service resolves the active theme from the stored preference and the OS
// scheme.
type Service struct {
	prefs  storage.PrefsStorage
	source SchemeSource
	logger *slog.Logger

	mu        sync.RWMutex
	explicit  *Mode // nil = follow the OS
	active    Mode
	listeners []func(Mode)
}

// NewService creates a theme service. A nil logger falls back to
// slog.Default().
func NewService(prefs storage.PrefsStorage, source SchemeSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		prefs:  prefs,
		source: source,
		logger: logger,
		active: ModeLight,
	}
}

// Init loads the stored preference, resolves the active theme, and starts
// following OS scheme changes.
func (s *Service) Init(ctx context.Context) error {
	stored, err := s.prefs.GetTheme(ctx)
	switch {
	case errors.Is(err, storage.ErrThemeNotSet):
		// follow-the-OS mode
	case err != nil:
		return fmt.Errorf("failed to load theme preference: %w", err)
	default:
		mode, err := parseMode(stored)
		if err != nil {
			// An unreadable preference falls back to follow-the-OS mode.
			s.logger.Warn("discarding invalid theme preference", "value", stored)
		} else {
			s.mu.Lock()
			s.explicit = &mode
			s.mu.Unlock()
		}
	}

	s.source.Watch(s.onSchemeChange)
	s.resolve()
	return nil
}

// Set stores an explicit preference, or with ModeSystem clears the stored
// preference and returns to follow-the-OS mode.
func (s *Service) Set(ctx context.Context, mode Mode) error {
	switch mode {
	case ModeSystem:
		if err := s.prefs.DeleteTheme(ctx); err != nil {
			return fmt.Errorf("failed to clear theme preference: %w", err)
		}
		s.mu.Lock()
		s.explicit = nil
		s.mu.Unlock()

	case ModeLight, ModeDark:
		if err := s.prefs.SaveTheme(ctx, string(mode)); err != nil {
			return fmt.Errorf("failed to save theme preference: %w", err)
		}
		s.mu.Lock()
		m := mode
		s.explicit = &m
		s.mu.Unlock()

	default:
		return fmt.Errorf("unknown theme mode %q", mode)
	}

	s.resolve()
	return nil
}

// Toggle switches the active theme to its opposite and stores the result
// as an explicit preference.
func (s *Service) Toggle(ctx context.Context) error {
	if s.Active() == ModeDark {
		return s.Set(ctx, ModeLight)
	}
	return s.Set(ctx, ModeDark)
}

// Active returns the currently resolved theme, always ModeLight or
// ModeDark.
func (s *Service) Active() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Following reports whether the service is in follow-the-OS mode.
func (s *Service) Following() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.explicit == nil
}

// OnChange registers a callback invoked whenever the active theme changes.
func (s *Service) OnChange(fn func(Mode)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// onSchemeChange handles an OS scheme change. It is a no-op while an
// explicit preference is stored.
func (s *Service) onSchemeChange(Mode) {
	s.mu.RLock()
	following := s.explicit == nil
	s.mu.RUnlock()
	if following {
		s.resolve()
	}
}

// resolve recomputes the active theme and notifies listeners on change.
func (s *Service) resolve() {
	s.mu.Lock()
	next := s.source.Scheme()
	if s.explicit != nil {
		next = *s.explicit
	}
	changed := next != s.active
	s.active = next
	listeners := make([]func(Mode), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range listeners {
		fn(next)
	}
}

func parseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeLight, ModeDark:
		return Mode(value), nil
	}
	return "", fmt.Errorf("unknown theme mode %q", value)
}
