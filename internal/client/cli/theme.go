package cli

import (
	"context"
	"fmt"

	"github.com/nakhrali/storefront/internal/client/theme"
)

func (c *Cli) runTheme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "show":
		c.showTheme()
		return nil

	case "set":
		if len(rest) < 1 {
			return fmt.Errorf("usage: theme set <light|dark|system>")
		}
		if err := c.theme.Set(ctx, theme.Mode(rest[0])); err != nil {
			return err
		}
		c.showTheme()
		return nil

	case "toggle":
		if err := c.theme.Toggle(ctx); err != nil {
			return err
		}
		c.showTheme()
		return nil

	default:
		return fmt.Errorf("unknown theme command: %s", sub)
	}
}

func (c *Cli) showTheme() {
	mode := c.theme.Active()
	if c.theme.Following() {
		c.io.Printf("Theme: %s (following the OS)\n", mode)
		return
	}
	c.io.Printf("Theme: %s\n", mode)
}
