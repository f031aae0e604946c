package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runShipping(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ship <track|label|rates|check> ...")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "track":
		if len(rest) < 1 {
			return fmt.Errorf("usage: ship track <order-id>")
		}
		resp, err := c.shipping.Track(ctx, rest[0])
		if err != nil {
			return err
		}
		return c.render("tracking", trackingTemplate, resp)

	case "label":
		if len(rest) < 1 {
			return fmt.Errorf("usage: ship label <order-id>")
		}
		resp, err := c.shipping.GenerateLabel(ctx, rest[0])
		if err != nil {
			return err
		}
		c.io.Printf("Label: %s\n", resp.LabelURL)
		return nil

	case "rates":
		flags, positional := parseFlags(rest)
		if len(positional) < 1 {
			return fmt.Errorf("usage: ship rates <pincode> [--weight KG] [--cod]")
		}
		weight, err := floatFlag(flags, "weight", 0.5)
		if err != nil {
			return err
		}
		resp, err := c.shipping.RateQuote(ctx, positional[0], weight, boolFlag(flags, "cod"))
		if err != nil {
			return err
		}
		return c.render("rates", ratesTemplate, resp)

	case "check":
		if len(rest) < 1 {
			return fmt.Errorf("usage: ship check <pincode>")
		}
		resp, err := c.shipping.CheckServiceability(ctx, rest[0])
		if err != nil {
			return err
		}
		if resp.IsServiceable {
			c.io.Printf("✓ Deliverable, estimated %d day(s).\n", resp.EstimatedDeliveryDays)
		} else {
			c.io.Println("✗ Not deliverable to this pincode.")
		}
		return nil

	default:
		return fmt.Errorf("unknown ship command: %s", sub)
	}
}
