package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// renderer writes command results either as aligned text for a terminal or
// as a JSON/YAML document for scripts.
type renderer struct {
	format  string
	printer *message.Printer
}

func newRenderer(format, lang string) (*renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		format = formatText
	case formatText, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid --lang %q: %w", lang, err)
	}
	return &renderer{format: format, printer: message.NewPrinter(tag)}, nil
}

// structured reports whether v should be emitted as a document instead of text
func (r *renderer) structured() bool {
	return r.format != formatText
}

// document writes v as JSON or YAML. YAML keys follow the JSON field names.
func (r *renderer) document(o *IO, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	if r.format == formatJSON {
		o.Println(string(data))
		return nil
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	o.Printf("%s", out)
	return nil
}

// price formats an amount with two decimals and locale grouping
func (r *renderer) price(d decimal.Decimal) string {
	return r.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// count formats an integer with locale grouping
func (r *renderer) count(n int64) string {
	return r.printer.Sprintf("%d", n)
}

// table writes tab-separated rows aligned into columns
func (r *renderer) table(o *IO, header []string, rows [][]string) {
	w := tabwriter.NewWriter(o.Out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}
