package cli

import (
	"context"
	"fmt"

	"github.com/nakhrali/storefront/internal/models"
)

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.showCart()
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "show":
		return c.showCart()
	case "add":
		return c.runCartAdd(ctx, rest)
	case "update":
		return c.runCartUpdate(ctx, rest)
	case "remove":
		return c.runCartRemove(ctx, rest)
	case "clear":
		if err := c.cart.Clear(ctx); err != nil {
			return err
		}
		c.io.Println("✓ Cart cleared.")
		return nil
	case "sync":
		c.cart.SyncWithServer(ctx)
		if err := c.cart.Err(); err != nil {
			return err
		}
		c.io.Println("✓ Cart synced.")
		return c.showCart()
	default:
		return fmt.Errorf("unknown cart command: %s", sub)
	}
}

func (c *Cli) showCart() error {
	data := struct {
		Lines []models.CartLine
		Count int
		Total float64
	}{
		Lines: c.cart.Lines(),
		Count: c.cart.Count(),
		Total: c.cart.Total(),
	}
	return c.render("cart", cartTemplate, data)
}

func (c *Cli) runCartAdd(ctx context.Context, args []string) error {
	flags, positional := parseFlags(args)
	if len(positional) < 1 {
		return fmt.Errorf("usage: cart add <product-id> [--variant ID] [--qty N] [--price P] [--name NAME]")
	}

	quantity, err := intFlag(flags, "qty", 1)
	if err != nil {
		return err
	}
	price, err := floatFlag(flags, "price", 0)
	if err != nil {
		return err
	}

	product := models.ProductRef{ID: positional[0], Name: flags["name"]}
	if product.Name == "" {
		product.Name = product.ID
	}
	var variant *models.VariantRef
	if id := flags["variant"]; id != "" {
		variant = &models.VariantRef{ID: id, Price: price}
	}

	return c.cart.Add(ctx, product, variant, quantity, price)
}

func (c *Cli) runCartUpdate(ctx context.Context, args []string) error {
	flags, positional := parseFlags(args)
	if len(positional) < 1 || flags["qty"] == "" {
		return fmt.Errorf("usage: cart update <product-id> [--variant ID] --qty N")
	}
	quantity, err := intFlag(flags, "qty", 0)
	if err != nil {
		return err
	}

	if err := c.cart.UpdateQuantity(ctx, positional[0], flags["variant"], quantity); err != nil {
		return err
	}
	return c.showCart()
}

func (c *Cli) runCartRemove(ctx context.Context, args []string) error {
	flags, positional := parseFlags(args)
	if len(positional) < 1 {
		return fmt.Errorf("usage: cart remove <product-id> [--variant ID]")
	}
	return c.cart.Remove(ctx, positional[0], flags["variant"])
}
