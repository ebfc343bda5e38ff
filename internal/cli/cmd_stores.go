package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/ridwanfathin/shelf-price-monitor/internal/catalog"
	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
)

func (a *app) storesCmd() *Command {
	fs := flag.NewFlagSet("stores", flag.ContinueOnError)
	branch := fs.String("branch", "", "Only stores of this branch (exact)")
	channel := fs.String("channel", "", "Only stores of this channel (exact)")

	return &Command{
		Flags: fs,
		Usage: "stores [flags]",
		Short: "List stores",
		Long:  "List the stores known to the backend, optionally narrowed by branch and channel.",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			stores, err := a.session.FilterStores(ctx, catalog.Filter{
				Branch:  strings.TrimSpace(*branch),
				Channel: strings.TrimSpace(*channel),
			})
			if err != nil {
				return err
			}
			if a.render.structured() {
				return a.render.document(o, model.NewStoreResponses(stores))
			}
			if len(stores) == 0 {
				o.Println("No stores.")
				return nil
			}

			rows := make([][]string, len(stores))
			for i, s := range stores {
				rows[i] = []string{strconv.FormatInt(s.ID, 10), s.ListLabel(), s.Manager}
			}
			a.render.table(o, []string{"ID", "STORE", "MANAGER"}, rows)
			return nil
		},
	}
}

func (a *app) storeCmd() *Command {
	fs := flag.NewFlagSet("store", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "store <id>",
		Short: "Show a store's prices and photos",
		Long: "Show a store's recorded prices, most recent first, followed by the " +
			"de-duplicated list of shelf photos they were read from.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return errors.New("store id is required")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			detail, err := a.session.SelectStore(ctx, id)
			if err != nil {
				return err
			}
			if a.render.structured() {
				return a.render.document(o, model.NewStoreDetailResponse(detail))
			}

			o.Println(detail.Store.ListLabel())
			if detail.Err != nil {
				o.Warn("could not load products: %v", detail.Err)
				return nil
			}
			if detail.View.Empty() {
				o.Println("No products recorded for this store yet.")
				return nil
			}

			o.Println()
			rows := make([][]string, 0, len(detail.View.Table))
			for _, row := range detail.View.Rows() {
				item := row.Item
				rows = append(rows, []string{
					strconv.Itoa(row.Index + 1),
					item.ProductName,
					a.render.price(item.Price),
					item.Status.Label(),
					formatTime(item.ExtractedAt),
					item.ImageFileName(),
				})
			}
			a.render.table(o, []string{"#", "PRODUCT", "PRICE", "STATUS", "EXTRACTED", "PHOTO"}, rows)

			if paths := detail.View.ImagePaths(); len(paths) > 0 {
				o.Println()
				o.Printf("Photos (%d):\n", len(paths))
				for i, p := range paths {
					o.Printf("  %d. %s\n", i+1, domain.ImageURL(p))
				}
			}
			return nil
		},
	}
}

func (a *app) addStoreCmd() *Command {
	fs := flag.NewFlagSet("add-store", flag.ContinueOnError)
	var in domain.NewStore
	fs.StringVar(&in.StoreName, "name", "", "Store name (required)")
	fs.StringVar(&in.Branch, "branch", "", "Branch")
	fs.StringVar(&in.Channel, "channel", "", "Sales channel")
	fs.StringVar(&in.Manager, "manager", "", "Store manager")

	return &Command{
		Flags: fs,
		Usage: "add-store --name <name> [flags]",
		Short: "Create a store",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			in.StoreName = strings.TrimSpace(in.StoreName)
			created, err := a.session.CreateStore(ctx, in)
			if err != nil {
				return err
			}

			var resp model.StoreResponse
			resp.FromDomain(*created)
			if a.render.structured() {
				return a.render.document(o, resp)
			}
			o.Printf("Created store %d: %s\n", created.ID, created.ListLabel())
			return nil
		},
	}
}

func (a *app) healthCmd() *Command {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "health",
		Short: "Check the price backend",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			resp := model.HealthResponse{Status: "ok", Backend: "up"}
			status, err := a.client.Health(ctx)
			switch {
			case err != nil:
				resp.Backend = "down"
				resp.Error = err.Error()
			case status.Status != "":
				resp.Backend = status.Status
			}

			if a.render.structured() {
				if err := a.render.document(o, resp); err != nil {
					return err
				}
			} else {
				o.Printf("backend %s: %s\n", a.client.BaseURL(), resp.Backend)
			}
			if err != nil {
				return fmt.Errorf("backend unreachable: %w", err)
			}
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func formatTime(t domain.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
