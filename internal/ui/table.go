package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Entry is one row of a directory listing
type Entry struct {
	Name string
	Type string
}

// Listing column headers
var listingHeaders = []string{"(index)", "Name", "Type"}

// RenderListing draws entries as a bordered table in the order given,
// numbering rows from zero. Colours follow the capabilities of w.
func RenderListing(w io.Writer, entries []Entry) error {
	_, err := fmt.Fprintln(w, Listing(lipgloss.NewRenderer(w), entries))
	return err
}

// Listing renders entries with r
func Listing(r *lipgloss.Renderer, entries []Entry) string {
	header := r.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	index := cell.Foreground(ColorSecondary)

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{strconv.Itoa(i), e.Name, e.Type})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(ColorSecondary)).
		Headers(listingHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return index
			default:
				return cell
			}
		})
	return t.Render()
}
