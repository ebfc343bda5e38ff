package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

func (a *app) uploadCmd() *Command {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	storeID := fs.Int64("store-id", 0, "Store the photos belong to")
	storeName := fs.String("store-name", "", "Free-text store name, used when --store-id is not given")
	location := fs.String("location", "", "Where in the store the photos were taken")
	dryRun := fs.Bool("dry-run", false, "Show which photos would be submitted without submitting them")

	return &Command{
		Flags: fs,
		Usage: "upload [flags] <photo>...",
		Short: "Extract prices from shelf photos",
		Long: "Submit shelf photos for price extraction, one at a time in the order given.\n" +
			"Files that are not images or exceed the size limit are left out of the batch.\n" +
			"A photo that fails does not stop the rest of the batch.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one photo is required")
			}

			files := make([]upload.File, 0, len(args))
			for _, path := range args {
				f, err := upload.FromPath(path)
				if err != nil {
					o.Warn("skipping %s: %v", path, err)
					continue
				}
				files = append(files, f)
			}

			added, err := a.session.AddFiles(files...)
			if err != nil {
				return err
			}
			a.noteRejected(o, added.Rejected)

			if *dryRun {
				return a.printSelection(o)
			}

			bc := upload.BatchContext{
				StoreName: strings.TrimSpace(*storeName),
				Location:  strings.TrimSpace(*location),
			}
			if *storeID > 0 {
				bc.StoreID = storeID
			}

			a.session.Uploads().OnProgress(func(completed, total int) {
				o.ErrPrintln(fmt.Sprintf("[%d/%d] processed", completed, total))
			})
			outcome, err := a.session.SubmitBatch(ctx, bc)
			if err != nil {
				return err
			}

			if a.render.structured() {
				return a.render.document(o, outcome)
			}

			rows := make([][]string, len(outcome.Results))
			for i, r := range outcome.Results {
				status := "ok"
				if !r.Success {
					status = "failed"
				}
				rows[i] = []string{
					r.Name,
					status,
					a.render.count(int64(r.Count)),
					a.render.count(int64(r.PendingReviewCount)),
					r.Message,
				}
			}
			a.render.table(o, []string{"PHOTO", "RESULT", "PRODUCTS", "TO REVIEW", "MESSAGE"}, rows)
			o.Println()
			o.Printf("%s products extracted, %s awaiting review (%d of %d photos succeeded)\n",
				a.render.count(int64(outcome.SuccessTotal)),
				a.render.count(int64(outcome.PendingReviewTotal)),
				outcome.Succeeded, len(outcome.Results))

			if outcome.Failed > 0 {
				o.Warn("%d photo(s) failed", outcome.Failed)
			}
			return nil
		},
	}
}

// noteRejected lists files the selection dropped. Dropping is not an error,
// so the note never counts as a warning.
func (a *app) noteRejected(o *IO, names []string) {
	if len(names) == 0 {
		return
	}
	line := fmt.Sprintf("not selected (not an image or too large): %s", strings.Join(names, ", "))
	if a.render.structured() {
		o.ErrPrintln(line)
		return
	}
	o.Println(line)
}

func (a *app) printSelection(o *IO) error {
	sel := model.NewSelectionResponse(a.session.Uploads())
	if a.render.structured() {
		return a.render.document(o, sel)
	}

	rows := make([][]string, len(sel.Files))
	for i, f := range sel.Files {
		rows[i] = []string{fmt.Sprint(f.Index + 1), f.Name, f.MediaType, a.render.count(f.Size)}
	}
	a.render.table(o, []string{"#", "PHOTO", "TYPE", "BYTES"}, rows)
	o.Printf("%d of at most %d photos selected\n", len(sel.Files), sel.MaxFiles)
	return nil
}
