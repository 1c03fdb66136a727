package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/styledtext/decor"
	"github.com/npillmayer/styledtext/layout"
	"github.com/npillmayer/styledtext/spans"
	"github.com/pterm/pterm"
)

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "-"
}

func printSpans(sp []spans.Span, base int) {
	if len(sp) == 0 {
		pterm.Info.Println("no spans")
		return
	}
	data := [][]string{
		{"Start", "End", "Family", "Weight", "Style", "UL", "ST", "Color", "Meta"},
	}
	for _, s := range sp {
		colorCell := "-"
		if s.Attrs.HasColor {
			colorCell = fmt.Sprintf("#%02x%02x%02x", s.Attrs.Color.R, s.Attrs.Color.G, s.Attrs.Color.B)
		}
		data = append(data, []string{
			strconv.Itoa(base + s.Start),
			strconv.Itoa(base + s.End),
			s.Attrs.Family.String(),
			strconv.Itoa(int(s.Attrs.Weight)),
			s.Attrs.Style.String(),
			onOff(s.Attrs.Meta.Underline()),
			onOff(s.Attrs.Meta.Strikethrough()),
			colorCell,
			fmt.Sprintf("0x%03x", s.Attrs.Meta.Raw()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printLines(lines []layout.Line) {
	for i, ln := range lines {
		missing := 0
		for _, g := range ln.Glyphs {
			if g.ID == layout.MissingGlyph {
				missing++
			}
		}
		pterm.Printf("line %d [%d,%d) %v: %q, %d glyph(s), %d missing\n",
			i, ln.Start, ln.End, ln.Dir, ln.Text, len(ln.Glyphs), missing)
		printSpans(ln.Spans, ln.Start)
	}
}

func printDecorations(lines []layout.Line, args []string) {
	tree := decor.FromLines(lines)
	var ds []decor.Decoration
	if len(args) > 0 {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			pterm.Error.Printf("decor position not numeric: %q\n", args[0])
			return
		}
		ds = tree.Query(pos)
	} else if len(lines) > 0 {
		ds = tree.QueryRange(lines[0].Start, lines[len(lines)-1].End)
	}
	if len(ds) == 0 {
		pterm.Info.Println("no decorations")
		return
	}
	data := [][]string{
		{"Start", "End", "Kind", "Weight", "Color"},
	}
	for _, d := range ds {
		colorCell := "-"
		if d.HasColor {
			colorCell = fmt.Sprintf("#%02x%02x%02x", d.Color.R, d.Color.G, d.Color.B)
		}
		data = append(data, []string{
			strconv.Itoa(d.Start),
			strconv.Itoa(d.End),
			d.Kind.String(),
			strconv.Itoa(int(d.Weight)),
			colorCell,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
