// Package cli implements the terminal front end of the storefront client.
// Commands are thin: they read input, call the state services, and render
// results; all domain behavior lives in the services.
package cli

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/nakhrali/storefront/internal/client/cart"
	"github.com/nakhrali/storefront/internal/client/iocli"
	"github.com/nakhrali/storefront/internal/client/review"
	"github.com/nakhrali/storefront/internal/client/search"
	"github.com/nakhrali/storefront/internal/client/session"
	"github.com/nakhrali/storefront/internal/client/shipping"
	"github.com/nakhrali/storefront/internal/client/theme"
	"github.com/nakhrali/storefront/internal/client/wishlist"
	"github.com/nakhrali/storefront/internal/notify"
)

// passwordEnvVar overrides every other password source when set.
const passwordEnvVar = "NAKHRALI_PASSWORD"

// Passwords lists the non-interactive password sources, checked in
// priority order: environment variable, file, command-line argument,
// interactive prompt.
type Passwords struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io       iocli.IO
	session  *session.Service
	cart     *cart.Service
	wishlist *wishlist.Service
	review   *review.Service
	search   *search.Service
	shipping *shipping.Service
	theme    *theme.Service
}

func New(
	io iocli.IO,
	sessionSvc *session.Service,
	cartSvc *cart.Service,
	wishlistSvc *wishlist.Service,
	reviewSvc *review.Service,
	searchSvc *search.Service,
	shippingSvc *shipping.Service,
	themeSvc *theme.Service,
) *Cli {
	return &Cli{
		io:       io,
		session:  sessionSvc,
		cart:     cartSvc,
		wishlist: wishlistSvc,
		review:   reviewSvc,
		search:   searchSvc,
		shipping: shippingSvc,
		theme:    themeSvc,
	}
}

// SubscribeNotifications renders every hub event to the console the way
// the storefront shows toasts.
func (c *Cli) SubscribeNotifications(hub *notify.Hub) {
	hub.Subscribe(func(e notify.Event) {
		switch e.Level {
		case notify.LevelError:
			c.io.Printf("✗ %s\n", e.Message)
		case notify.LevelSuccess:
			c.io.Printf("✓ %s\n", e.Message)
		default:
			c.io.Printf("• %s\n", e.Message)
		}
	})
}

// getPassword retrieves a password from the configured sources in
// priority order, falling back to an interactive prompt.
func (c *Cli) getPassword(passwords Passwords, prompt string) (string, error) {
	if envPassword := os.Getenv(passwordEnvVar); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// render executes a template constant against data and prints the result.
func (c *Cli) render(name, tmpl string, data any) error {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return err
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return err
	}
	c.io.Printf("%s", sb.String())
	return nil
}

func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageTemplate)
}
