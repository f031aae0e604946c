package cli

import (
	"context"
	"fmt"

	"github.com/nakhrali/storefront/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context, passwords Passwords) error {
	c.io.Println("=== Create Account ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	firstName, err := c.io.ReadInput("First name: ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}
	lastName, err := c.io.ReadInput("Last name: ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}
	phone, err := c.io.ReadInput("Phone (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}
	password, err := c.getPassword(passwords, "Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Creating account...")

	req := api.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
	if err := c.session.Register(ctx, req); err != nil {
		return err
	}

	// A fresh account starts with an empty server cart, so a guest cart
	// built before registering merges into it here.
	c.cart.SyncWithServer(ctx)

	c.io.Println()
	c.io.Println("✓ Account created!")
	if user, ok := c.session.User(); ok {
		c.io.Printf("Welcome, %s\n", user.FullName())
	}
	return nil
}

func (c *Cli) runLogin(ctx context.Context, passwords Passwords) error {
	c.io.Println("=== Sign In ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.getPassword(passwords, "Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.session.Login(ctx, email, password); err != nil {
		return err
	}

	// Reconcile the guest cart against the account cart, then pull the
	// wishlist for the signed-in user.
	c.cart.SyncWithServer(ctx)
	c.wishlist.Load(ctx)

	c.io.Println()
	c.io.Println("✓ Signed in!")
	if user, ok := c.session.User(); ok {
		c.io.Printf("Welcome back, %s\n", user.FullName())
	}
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Signed out.")
	return nil
}

func (c *Cli) runStatus() error {
	data := struct {
		Name, Email, Role string
		Authenticated     bool
	}{Authenticated: c.session.IsAuthenticated()}

	if user, ok := c.session.User(); ok {
		data.Name = user.FullName()
		data.Email = user.Email
		data.Role = user.Role
	}
	return c.render("status", statusTemplate, data)
}

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	flags, _ := parseFlags(args)

	req := api.UpdateProfileRequest{
		FirstName: flags["first"],
		LastName:  flags["last"],
		Phone:     flags["phone"],
	}
	if req.FirstName == "" && req.LastName == "" && req.Phone == "" {
		return fmt.Errorf("nothing to update: pass --first, --last or --phone")
	}

	updated, err := c.session.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	c.io.Println("✓ Profile updated.")
	c.io.Printf("Name:  %s\n", updated.FullName())
	if updated.Phone != "" {
		c.io.Printf("Phone: %s\n", updated.Phone)
	}
	return nil
}

func (c *Cli) runChangePassword(ctx context.Context) error {
	current, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	next, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.session.ChangePassword(ctx, current, next); err != nil {
		return err
	}
	c.io.Println("✓ Password changed.")
	return nil
}

func (c *Cli) runForgotPassword(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: forgot-password <email>")
	}
	if err := c.session.RequestPasswordReset(ctx, args[0]); err != nil {
		return err
	}
	c.io.Println("✓ If the address is registered, a reset email is on its way.")
	return nil
}

func (c *Cli) runResetPassword(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: reset-password <token>")
	}
	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.session.ResetPassword(ctx, args[0], password); err != nil {
		return err
	}
	c.io.Println("✓ Password reset. You can sign in now.")
	return nil
}
