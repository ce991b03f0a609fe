package tw

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Writer represents table writer
type Writer struct {
	table.Writer
}

// New returns new table writer rendering to stderr
func New() Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stderr)
	tw.SetStyle(table.StyleLight)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Action", WidthMax: 6},
		{Name: "Source", WidthMax: 50},
		{Name: "Destination", WidthMax: 70},
		{Name: "Size", Align: text.AlignRight, WidthMax: 12},
	})

	return Writer{tw}
}

// Render renders table and resets it
func (w Writer) Render() {
	w.Writer.Render()
	w.ResetHeaders()
	w.ResetRows()
	w.ResetFooters()
}
