package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nakhrali/storefront/internal/client/search"
	"github.com/nakhrali/storefront/pkg/api"
)

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "quick":
			return c.runQuickSearch(ctx, args[1:])
		case "recent":
			return c.showRecentSearches()
		case "clear-recent":
			if err := c.search.ClearRecentSearches(ctx); err != nil {
				return err
			}
			c.io.Println("✓ Recent searches cleared.")
			return nil
		}
	}

	flags, positional := parseFlags(args)
	term := strings.Join(positional, " ")

	page, err := intFlag(flags, "page", 0)
	if err != nil {
		return err
	}
	priceMin, err := floatFlag(flags, "price-min", 0)
	if err != nil {
		return err
	}
	priceMax, err := floatFlag(flags, "price-max", 0)
	if err != nil {
		return err
	}

	filters := search.Filters{
		Category: flags["category"],
		Material: flags["material"],
		Occasion: flags["occasion"],
		Style:    flags["style"],
		SortBy:   flags["sort"],
		PriceMin: priceMin,
		PriceMax: priceMax,
		Page:     page,
	}

	if err := c.search.Search(ctx, term, filters); err != nil {
		return err
	}
	if err := c.search.Err(); err != nil {
		return err
	}

	data := struct {
		Products   []api.Product
		Pagination api.Pagination
	}{c.search.Results(), c.search.Pagination()}
	return c.render("search", searchResultsTemplate, data)
}

func (c *Cli) runQuickSearch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: search quick <term>")
	}
	term := strings.Join(args, " ")

	for _, product := range c.search.QuickSearch(ctx, term) {
		c.io.Printf("%s  %s\n", product.ID, product.Name)
	}
	return nil
}

func (c *Cli) showRecentSearches() error {
	recent := c.search.RecentSearches()
	if len(recent) == 0 {
		c.io.Println("No recent searches.")
		return nil
	}
	for _, term := range recent {
		c.io.Println(term)
	}
	return nil
}
