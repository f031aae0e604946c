package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nakhrali/storefront/internal/client/review"
	"github.com/nakhrali/storefront/pkg/api"
)

func (c *Cli) runReviews(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: reviews <product|mine|add|update|delete|helpful> ...")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "product":
		return c.runProductReviews(ctx, rest)
	case "mine":
		return c.runUserReviews(ctx, rest)
	case "add":
		return c.runReviewAdd(ctx, rest)
	case "update":
		return c.runReviewUpdate(ctx, rest)
	case "delete":
		if len(rest) < 1 {
			return fmt.Errorf("usage: reviews delete <review-id>")
		}
		if err := c.review.Delete(ctx, rest[0]); err != nil {
			return err
		}
		return c.review.Err()
	case "helpful":
		if len(rest) < 1 {
			return fmt.Errorf("usage: reviews helpful <review-id>")
		}
		if err := c.review.MarkHelpful(ctx, rest[0]); err != nil {
			return err
		}
		if err := c.review.Err(); err != nil {
			return err
		}
		c.io.Println("✓ Vote recorded.")
		return nil
	default:
		return fmt.Errorf("unknown reviews command: %s", sub)
	}
}

func (c *Cli) runProductReviews(ctx context.Context, args []string) error {
	flags, positional := parseFlags(args)
	if len(positional) < 1 {
		return fmt.Errorf("usage: reviews product <product-id> [--page N] [--rating 1-5] [--verified] [--images]")
	}

	opts, err := listOptionsFromFlags(flags)
	if err != nil {
		return err
	}
	if err := c.review.LoadProductReviews(ctx, positional[0], opts); err != nil {
		return err
	}
	if err := c.review.Err(); err != nil {
		return err
	}

	reviews, stats, pagination := c.review.ProductListing()
	data := struct {
		Reviews    []api.Review
		Stats      api.RatingStats
		Pagination api.Pagination
	}{reviews, stats, pagination}
	return c.render("reviews", productReviewsTemplate, data)
}

func (c *Cli) runUserReviews(ctx context.Context, args []string) error {
	flags, _ := parseFlags(args)
	opts, err := listOptionsFromFlags(flags)
	if err != nil {
		return err
	}
	if err := c.review.LoadUserReviews(ctx, opts); err != nil {
		return err
	}
	if err := c.review.Err(); err != nil {
		return err
	}

	reviews, _ := c.review.UserListing()
	return c.render("user_reviews", userReviewsTemplate, reviews)
}

func (c *Cli) runReviewAdd(ctx context.Context, args []string) error {
	flags, positional := parseFlags(args)
	if len(positional) < 2 {
		return fmt.Errorf("usage: reviews add <product-id> --rating 1-5 [--title T] <text...>")
	}
	rating, err := intFlag(flags, "rating", 0)
	if err != nil {
		return err
	}

	productID := positional[0]
	text := strings.Join(positional[1:], " ")
	if err := c.review.Add(ctx, productID, flags["title"], text, rating, nil); err != nil {
		return err
	}
	return c.review.Err()
}

func (c *Cli) runReviewUpdate(ctx context.Context, args []string) error {
	flags, positional := parseFlags(args)
	if len(positional) < 2 {
		return fmt.Errorf("usage: reviews update <review-id> --rating 1-5 [--title T] <text...>")
	}
	rating, err := intFlag(flags, "rating", 0)
	if err != nil {
		return err
	}

	reviewID := positional[0]
	text := strings.Join(positional[1:], " ")
	if err := c.review.Update(ctx, reviewID, flags["title"], text, rating, nil); err != nil {
		return err
	}
	return c.review.Err()
}

func listOptionsFromFlags(flags map[string]string) (review.ListOptions, error) {
	page, err := intFlag(flags, "page", 0)
	if err != nil {
		return review.ListOptions{}, err
	}
	rating, err := intFlag(flags, "rating", 0)
	if err != nil {
		return review.ListOptions{}, err
	}
	return review.ListOptions{
		Page:         page,
		Rating:       rating,
		VerifiedOnly: boolFlag(flags, "verified"),
		HasImages:    boolFlag(flags, "images"),
	}, nil
}
