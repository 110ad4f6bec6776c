package main

import (
	"fmt"
	"os"
	"strings"

	"bankist/internal/dto"
	"bankist/internal/ledger"

	"github.com/charmbracelet/glamour"
)

// screenMarkdown renders the screen the way the page shows it.
// Rows are listed newest first, each one inserted above the previous.
func screenMarkdown(view *dto.ScreenResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", view.Welcome)

	if view.Notice != "" {
		fmt.Fprintf(&b, "> %s\n\n", view.Notice)
	}

	if !view.Visible {
		return b.String()
	}

	fmt.Fprintf(&b, "**Current balance:** %s\n\n", view.Balance)

	order := "as recorded"
	if view.Sorted {
		order = "sorted"
	}
	fmt.Fprintf(&b, "## Movements (%s)\n\n", order)
	b.WriteString("| # | Type | Amount |\n")
	b.WriteString("|---|------|-------:|\n")
	for i := len(view.Movements) - 1; i >= 0; i-- {
		m := view.Movements[i]
		fmt.Fprintf(&b, "| %d | %s | %s |\n", m.Number, typeLabel(m.Type), m.Display)
	}
	b.WriteString("\n")

	if view.Summary != nil {
		fmt.Fprintf(&b, "**In** %s | **Out** %s | **Interest** %s\n", view.Summary.In, view.Summary.Out, view.Summary.Interest)
	}

	return b.String()
}

func typeLabel(rowType string) string {
	if rowType == ledger.RowTypeDeposit {
		return "DEPOSIT"
	}
	return "WITHDRAWAL"
}

func accountsMarkdown(list *dto.AccountListResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Accounts (%d)\n\n", list.Total)
	if list.Total == 0 {
		b.WriteString("_No accounts._\n")
		return b.String()
	}

	b.WriteString("| Owner | User name | Movements |\n")
	b.WriteString("|-------|-----------|----------:|\n")
	for _, a := range list.Accounts {
		fmt.Fprintf(&b, "| %s | `%s` | %d |\n", a.Owner, a.UserName, a.Movements)
	}
	return b.String()
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}

	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
