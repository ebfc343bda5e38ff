package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
)

func (a *app) reviewCmd() *Command {
	fs := flag.NewFlagSet("review", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "review",
		Short: "List products awaiting review",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			items, err := a.session.ListPending(ctx)
			if err != nil {
				return err
			}
			if a.render.structured() {
				return a.render.document(o, model.NewItemResponses(items))
			}
			if len(items) == 0 {
				o.Println("Nothing to review.")
				return nil
			}

			rows := make([][]string, len(items))
			for i, item := range items {
				confidence := "-"
				if pct, ok := item.ConfidencePercent(); ok {
					confidence = a.render.printer.Sprintf("%.0f%%", pct)
				}
				rows[i] = []string{
					strconv.FormatInt(item.ID, 10),
					item.ProductName,
					a.render.price(item.Price),
					item.StoreDisplayName(),
					confidence,
					domain.ImageURL(item.ImagePath),
				}
			}
			a.render.table(o, []string{"ID", "PRODUCT", "PRICE", "STORE", "CONFIDENCE", "PHOTO"}, rows)
			return nil
		},
	}
}

func (a *app) approveCmd() *Command {
	fs := flag.NewFlagSet("approve", flag.ContinueOnError)
	name := fs.String("name", "", "Corrected product name (default: as extracted)")
	price := fs.String("price", "", "Corrected price (default: as extracted)")

	return &Command{
		Flags: fs,
		Usage: "approve <id> [flags]",
		Short: "Approve a pending product",
		Long: "Approve a product from the review queue. The name and price sent replace\n" +
			"the extracted values; omitted flags keep what was extracted.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return errors.New("product id is required")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			pending, err := a.session.ListPending(ctx)
			if err != nil {
				return err
			}
			var item *domain.ExtractedItem
			for i := range pending {
				if pending[i].ID == id {
					item = &pending[i]
					break
				}
			}
			if item == nil {
				return fmt.Errorf("product %d is not awaiting review", id)
			}

			editedName := item.ProductName
			if s := strings.TrimSpace(*name); s != "" {
				editedName = s
			}
			editedPrice := item.Price
			if s := strings.TrimSpace(*price); s != "" {
				if editedPrice, err = decimal.NewFromString(s); err != nil {
					return fmt.Errorf("invalid --price %q", *price)
				}
			}

			approved, err := a.session.Approve(ctx, id, editedName, editedPrice)
			if err != nil {
				return err
			}
			if a.render.structured() {
				return a.render.document(o, model.NewItemResponse(*approved))
			}
			o.Printf("Approved %s at %s\n", approved.ProductName, a.render.price(approved.Price))
			return nil
		},
	}
}
