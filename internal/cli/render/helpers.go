package render

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

// maxValueWidth is how much of a long kwarg value is shown in text mode
const maxValueWidth = 60

// painter applies colors only when enabled
type painter bool

func (p painter) sprint(attrs []color.Attribute, s string) string {
	if !p {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

func (p painter) bold(s string) string {
	return p.sprint([]color.Attribute{color.Bold}, s)
}

func (p painter) cyan(s string) string {
	return p.sprint([]color.Attribute{color.FgCyan, color.Bold}, s)
}

func (p painter) green(s string) string {
	return p.sprint([]color.Attribute{color.FgGreen, color.Bold}, s)
}

func (p painter) red(s string) string {
	return p.sprint([]color.Attribute{color.FgRed, color.Bold}, s)
}

func (p painter) yellow(s string) string {
	return p.sprint([]color.Attribute{color.FgYellow}, s)
}

// renderKeyValues renders label/value rows as a borderless two column table
func renderKeyValues(rows [][2]string) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: "  ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})

	for _, row := range rows {
		t.AppendRow(table.Row{row[0], row[1]})
	}
	return t.Render()
}

// kwargRows formats kwargs in sorted key order
func kwargRows(kwargs map[string]any) [][2]string {
	keys := lo.Keys(kwargs)
	slices.Sort(keys)

	return lo.Map(keys, func(k string, _ int) [2]string {
		return [2]string{"  " + k, shorten(fmt.Sprint(kwargs[k]))}
	})
}

// shorten keeps the first line of long values and notes the full size
func shorten(s string) string {
	first, _, multiline := strings.Cut(s, "\n")
	if !multiline && utf8.RuneCountInString(s) <= maxValueWidth {
		return s
	}

	runes := []rune(first)
	if len(runes) > maxValueWidth {
		runes = runes[:maxValueWidth]
	}
	return fmt.Sprintf("%s... (%d bytes)", string(runes), len(s))
}
