package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/pagination"
)

const dateLayout = "2006-01-02"

func (a *app) productsCmd() *Command {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	page := fs.IntP("page", "p", 1, "Page to show (1-based)")
	name := fs.String("name", "", "Product name contains")
	storeName := fs.String("store", "", "Store name contains")
	storeID := fs.Int64("store-id", 0, "Only products of this store")
	from := fs.String("from", "", "Extracted on or after this date (YYYY-MM-DD)")
	to := fs.String("to", "", "Extracted on or before this date (YYYY-MM-DD)")

	return &Command{
		Flags: fs,
		Usage: "products [flags]",
		Short: "Browse the product price listing",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			if *page < 1 {
				return fmt.Errorf("invalid page %d", *page)
			}

			filter := domain.ProductFilter{
				ProductName: strings.TrimSpace(*name),
				StoreName:   strings.TrimSpace(*storeName),
			}
			if *storeID > 0 {
				filter.StoreID = storeID
			}
			var err error
			if filter.StartDate, err = parseDateFlag("from", *from); err != nil {
				return err
			}
			if filter.EndDate, err = parseDateFlag("to", *to); err != nil {
				return err
			}
			if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
				return errors.New("--to is before --from")
			}

			list, err := a.session.LoadProducts(ctx, *page, filter)
			if err != nil {
				return err
			}
			if a.render.structured() {
				return a.render.document(o, model.NewProductListResponse(list))
			}
			if len(list.Page.Items) == 0 {
				o.Println("No products match.")
				return nil
			}

			rows := make([][]string, len(list.Page.Items))
			for i, item := range list.Page.Items {
				rows[i] = []string{
					strconv.FormatInt(item.ID, 10),
					item.ProductName,
					a.render.price(item.Price),
					item.StoreDisplayName(),
					item.Status.Label(),
					formatTime(item.ExtractedAt),
				}
			}
			a.render.table(o, []string{"ID", "PRODUCT", "PRICE", "STORE", "STATUS", "EXTRACTED"}, rows)
			o.Println()
			o.Printf("%s products  pages: %s\n", a.render.count(list.Page.Total), pageWindow(list.Markers))
			return nil
		},
	}
}

func (a *app) manualCmd() *Command {
	fs := flag.NewFlagSet("manual", flag.ContinueOnError)
	storeID := fs.Int64("store-id", 0, "Store the price was seen in (required)")
	name := fs.String("name", "", "Product name (required)")
	price := fs.String("price", "", "Shelf price (required)")
	at := fs.String("at", "", "When the price was seen, e.g. 2024-05-01T10:30 (default now)")

	return &Command{
		Flags: fs,
		Usage: "manual --store-id <id> --name <product> --price <amount>",
		Short: "Record a price by hand",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			amount, err := decimal.NewFromString(strings.TrimSpace(*price))
			if err != nil {
				return fmt.Errorf("invalid --price %q", *price)
			}

			p := domain.ManualProduct{
				StoreID:     *storeID,
				ProductName: strings.TrimSpace(*name),
				Price:       amount,
			}
			if s := strings.TrimSpace(*at); s != "" {
				t, err := domain.ParseTimestamp(s)
				if err != nil {
					return fmt.Errorf("invalid --at %q", *at)
				}
				p.ExtractedAt = &t
			}

			item, err := a.session.AddManualProductTo(ctx, p)
			if err != nil {
				return err
			}
			if a.render.structured() {
				return a.render.document(o, model.NewItemResponse(*item))
			}
			o.Printf("Recorded %s at %s (id %d)\n", item.ProductName, a.render.price(item.Price), item.ID)
			return nil
		},
	}
}

func (a *app) dashboardCmd() *Command {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "dashboard",
		Short: "Show summary counters",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			stats, err := a.session.Dashboard(ctx)
			if err != nil {
				return err
			}
			if a.render.structured() {
				var resp model.DashboardResponse
				resp.FromDomain(*stats)
				return a.render.document(o, resp)
			}
			a.render.table(o, []string{"PRODUCTS", "STORES", "PENDING REVIEW"}, [][]string{{
				a.render.count(stats.TotalProducts),
				a.render.count(stats.TotalStores),
				a.render.count(stats.PendingReviews),
			}})
			return nil
		},
	}
}

// pageWindow renders markers as "1 … 4 [5] 6 … 10"
func pageWindow(markers []pagination.Marker) string {
	parts := make([]string, len(markers))
	for i, m := range markers {
		switch {
		case m.Ellipsis:
			parts[i] = "…"
		case m.Current:
			parts[i] = "[" + strconv.Itoa(m.Page) + "]"
		default:
			parts[i] = strconv.Itoa(m.Page)
		}
	}
	return strings.Join(parts, " ")
}

func parseDateFlag(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD", name, value)
	}
	return &t, nil
}
