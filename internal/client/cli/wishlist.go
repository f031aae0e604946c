package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWishlist(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "show":
		if !c.wishlist.Load(ctx) {
			return c.wishlist.Err()
		}
		return c.render("wishlist", wishlistTemplate, c.wishlist.Items())

	case "add":
		flags, positional := parseFlags(rest)
		if len(positional) < 1 {
			return fmt.Errorf("usage: wishlist add <product-id> [--variant ID]")
		}
		c.wishlist.Add(ctx, positional[0], flags["variant"])
		return c.wishlist.Err()

	case "remove":
		if len(rest) < 1 {
			return fmt.Errorf("usage: wishlist remove <entry-id>")
		}
		c.wishlist.Remove(ctx, rest[0])
		return c.wishlist.Err()

	case "toggle":
		flags, positional := parseFlags(rest)
		if len(positional) < 1 {
			return fmt.Errorf("usage: wishlist toggle <product-id> [--variant ID]")
		}
		c.wishlist.Toggle(ctx, positional[0], flags["variant"])
		return c.wishlist.Err()

	case "move":
		flags, positional := parseFlags(rest)
		if len(positional) < 1 {
			return fmt.Errorf("usage: wishlist move <entry-id> [--qty N]")
		}
		quantity, err := intFlag(flags, "qty", 1)
		if err != nil {
			return err
		}
		c.wishlist.MoveToCart(ctx, positional[0], quantity)
		return c.wishlist.Err()

	case "clear":
		if c.wishlist.Clear(ctx) {
			c.io.Println("✓ Wishlist cleared.")
		}
		return c.wishlist.Err()

	default:
		return fmt.Errorf("unknown wishlist command: %s", sub)
	}
}
