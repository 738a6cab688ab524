package console

import (
	"fmt"
	"io"

	"har-analyzer/application"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"
)

// ConsoleUI reports progress and the final summary on out. A disabled UI
// prints nothing.
type ConsoleUI struct {
	out     io.Writer
	enabled bool
	bar     *progressbar.ProgressBar
}

func NewConsoleUI(out io.Writer, enabled bool) *ConsoleUI {
	return &ConsoleUI{out: out, enabled: enabled}
}

func (c *ConsoleUI) Init(total int) {
	if !c.enabled {
		return
	}
	c.bar = progressbar.NewOptions(
		total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetDescription("[1/2 EXTRACTING ENTRIES]"),
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (c *ConsoleUI) Update(current int, currentItem string) {
	if c.bar != nil {
		c.bar.Set(current)
	}
}

func (c *ConsoleUI) RenderSummary(summary application.Summary) {
	if !c.enabled {
		return
	}

	fmt.Fprintf(c.out, "\n[2/2 WORKBOOK WRITTEN] %d entries exported\n", summary.Entries)
	if summary.Entries == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Group", "Value", "Count"})

	appendCounts(t, "Method", summary.Methods)
	t.AppendSeparator()
	appendCounts(t, "Status Code", summary.Statuses)

	t.AppendFooter(table.Row{"Total", "", summary.Entries})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func appendCounts(t table.Writer, group string, counts []application.Count) {
	for i, count := range counts {
		label := group
		if i > 0 {
			label = ""
		}
		t.AppendRow(table.Row{label, count.Key, count.Count})
	}
}

func (c *ConsoleUI) Close() {
	if c.bar != nil {
		c.bar.Finish()
	}
}
