package cli

import (
	"context"
	"fmt"
)

// Run dispatches a command. Services must already be initialized.
func (c *Cli) Run(ctx context.Context, passwords Passwords, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx, passwords)
	case "login":
		return c.runLogin(ctx, passwords)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus()
	case "profile":
		return c.runProfile(ctx, args)
	case "change-password":
		return c.runChangePassword(ctx)
	case "forgot-password":
		return c.runForgotPassword(ctx, args)
	case "reset-password":
		return c.runResetPassword(ctx, args)
	case "cart":
		return c.runCart(ctx, args)
	case "wishlist":
		return c.runWishlist(ctx, args)
	case "reviews":
		return c.runReviews(ctx, args)
	case "search":
		return c.runSearch(ctx, args)
	case "ship":
		return c.runShipping(ctx, args)
	case "theme":
		return c.runTheme(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
