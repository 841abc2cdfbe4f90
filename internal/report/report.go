// Package report renders a bank's accounts in text, CSV or Markdown.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/cleared-dev/minibank/internal/ledger"
)

// Format selects the output encoding.
type Format string

const (
	// FormatText prints the account summary lines and a total.
	FormatText Format = "text"
	// FormatCSV prints one row per account under Header.
	FormatCSV Format = "csv"
	// FormatMarkdown prints a pipe table with a total row.
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats in help-text order.
var Formats = []Format{FormatText, FormatCSV, FormatMarkdown}

// ParseFormat returns the Format named by s (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Options controls rendering.
type Options struct {
	Format Format
	// Currency, when set, adds a display column that reads balances as
	// minor units of this ISO 4217 currency.
	Currency string
}

// Header is the CSV header without the optional display column.
const Header = "account_id,holder,balance"

// Write renders b to w.
func Write(w io.Writer, b *ledger.Bank, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, b, opts)
	case FormatCSV:
		return writeCSV(w, b, opts)
	case FormatMarkdown:
		return writeMarkdown(w, b, opts)
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
}

// Display formats v as minor units of currency, e.g. 990 USD -> "$9.90".
func Display(v int64, currency string) string {
	return money.New(v, strings.ToUpper(currency)).Display()
}

func header(opts Options) []string {
	h := strings.Split(Header, ",")
	if opts.Currency != "" {
		h = append(h, "display")
	}
	return h
}

func row(a ledger.Account, opts Options) []string {
	r := []string{strconv.Itoa(a.ID()), a.Holder(), strconv.FormatInt(a.Balance(), 10)}
	if opts.Currency != "" {
		r = append(r, Display(a.Balance(), opts.Currency))
	}
	return r
}

func writeText(w io.Writer, b *ledger.Bank, opts Options) error {
	var sb strings.Builder
	for _, line := range b.Summary() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	total := b.TotalBalance()
	fmt.Fprintf(&sb, "Total: $%d", total)
	if opts.Currency != "" {
		fmt.Fprintf(&sb, " (%s)", Display(total, opts.Currency))
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, b *ledger.Bank, opts Options) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header(opts)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, a := range b.Accounts() {
		if err := cw.Write(row(a, opts)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeMarkdown(w io.Writer, b *ledger.Bank, opts Options) error {
	h := header(opts)
	var sb strings.Builder
	sb.WriteString("| " + strings.Join(h, " | ") + " |\n")
	sep := make([]string, len(h))
	for i := range sep {
		sep[i] = "---"
	}
	sep[2] = "---:"
	sb.WriteString("|" + strings.Join(sep, "|") + "|\n")
	for _, a := range b.Accounts() {
		cells := row(a, opts)
		for i := range cells {
			cells[i] = escapeCell(cells[i])
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	total := b.TotalBalance()
	totalRow := []string{"**Total**", "", strconv.FormatInt(total, 10)}
	if opts.Currency != "" {
		totalRow = append(totalRow, Display(total, opts.Currency))
	}
	sb.WriteString("| " + strings.Join(totalRow, " | ") + " |\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing markdown report: %w", err)
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
