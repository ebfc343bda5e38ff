// Package cli implements shelfctl, a terminal front end over the console
// session: it browses stores, submits photo batches and works the review queue
// against the price extraction backend.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/ridwanfathin/shelf-price-monitor/internal/config"
	"github.com/ridwanfathin/shelf-price-monitor/internal/imageutil"
	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
	"github.com/ridwanfathin/shelf-price-monitor/internal/priceapi"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

// app is everything a command needs for one invocation
type app struct {
	client  *priceapi.Client
	session *session.Session
	render  *renderer
}

type globalFlags struct {
	apiURL   string
	output   string
	lang     string
	timeout  time.Duration
	logLevel string
}

// Run is the main entry point. Returns exit code.
func Run(ctx context.Context, out, errOut io.Writer, args []string) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}

	fs := flag.NewFlagSet("shelfctl", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)

	var g globalFlags
	fs.StringVar(&g.apiURL, "api", cfg.API.BaseURL, "Price backend base URL")
	fs.StringVarP(&g.output, "output", "o", formatText, "Output format: text, json or yaml")
	fs.StringVar(&g.lang, "lang", "en", "Language tag used to format numbers")
	fs.DurationVar(&g.timeout, "timeout", cfg.API.Timeout, "Per-request timeout")
	fs.StringVar(&g.logLevel, "log-level", "warn", "Diagnostic log level written to stderr")

	var argv []string
	if len(args) > 1 {
		argv = args[1:]
	}
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(out, fs, nil)
			return 0
		}
		fprintln(errOut, "error:", err)
		return 1
	}

	render, err := newRenderer(g.output, g.lang)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}

	a := newApp(cfg, g, render, errOut)
	commands := a.commands()

	rest := fs.Args()
	if len(rest) == 0 || rest[0] == "help" {
		printUsage(out, fs, commands)
		return 0
	}

	name := rest[0]
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(ctx, NewIO(out, errOut), rest[1:])
		}
	}

	fprintln(errOut, "error: unknown command:", name)
	printUsage(errOut, fs, commands)
	return 1
}

func newApp(cfg *config.Config, g globalFlags, render *renderer, errOut io.Writer) *app {
	log := logger.New(logger.Options{
		ServiceName: "shelfctl",
		Level:       logger.ParseLevel(g.logLevel),
		Format:      "console",
		Output:      errOut,
	})
	for _, w := range cfg.Warnings {
		log.Warn(context.Background(), w)
	}

	client := priceapi.NewClient(&priceapi.Config{
		BaseURL:   g.apiURL,
		Timeout:   g.timeout,
		UserAgent: "shelfctl/1.0",
	})

	var resize *imageutil.ResizeConfig
	if cfg.Upload.MaxDimension > 0 {
		resize = imageutil.DefaultConfig()
		resize.MaxDimension = cfg.Upload.MaxDimension
	}

	sess := session.New(client, session.Config{
		Limits: upload.Limits{
			MaxFiles:     cfg.Upload.MaxFiles,
			MaxFileBytes: cfg.Upload.MaxFileBytes,
		},
		ReviewPageSize:   cfg.Views.ReviewPageSize,
		ProductsPageSize: cfg.Views.ProductsPageSize,
		Resize:           resize,
	}, session.Options{Logger: log})

	return &app{client: client, session: sess, render: render}
}

func (a *app) commands() []*Command {
	return []*Command{
		a.storesCmd(),
		a.storeCmd(),
		a.addStoreCmd(),
		a.uploadCmd(),
		a.productsCmd(),
		a.manualCmd(),
		a.dashboardCmd(),
		a.reviewCmd(),
		a.approveCmd(),
		a.healthCmd(),
	}
}

func printUsage(w io.Writer, global *flag.FlagSet, commands []*Command) {
	fprintln(w, "shelfctl - shelf price monitor console")
	fprintln(w)
	fprintln(w, "Usage: shelfctl [global flags] <command> [args]")
	if len(commands) > 0 {
		fprintln(w)
		fprintln(w, "Commands:")
		for _, cmd := range commands {
			fprintln(w, cmd.HelpLine())
		}
	}

	var buf strings.Builder
	global.SetOutput(&buf)
	global.PrintDefaults()
	global.SetOutput(io.Discard)

	fprintln(w)
	fprintln(w, "Global flags:")
	_, _ = fmt.Fprint(w, buf.String())
	fprintln(w)
	fprintln(w, "Run 'shelfctl <command> --help' for command flags.")
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
