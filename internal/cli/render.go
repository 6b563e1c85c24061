// Package cli renders search results and detail cards for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hanzikit/hanzikit/internal/detail"
	"github.com/hanzikit/hanzikit/internal/search"
)

var (
	characterStyle = color.New(color.FgCyan, color.Bold).SprintFunc()
	readingStyle   = color.New(color.FgYellow).SprintFunc()
	labelStyle     = color.New(color.FgGreen).SprintFunc()
)

// RenderResults writes one ranked result per line.
func RenderResults(w io.Writer, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}
	for i, result := range results {
		fmt.Fprintf(w, "%2d. %s  %s  %s\n",
			i+1,
			characterStyle(result.Character),
			readingStyle(result.Pronunciation.Display()),
			result.Brief,
		)
	}
}

// RenderDetail writes the full detail card for one character.
func RenderDetail(w io.Writer, d *detail.HanziDetail) {
	fmt.Fprintf(w, "%s  %s\n", characterStyle(d.Character), readingStyle(d.Pronunciation.Display()))
	if d.Radical != "" {
		fmt.Fprintf(w, "%s %s\n", labelStyle("radical:"), d.Radical)
	}
	if d.StrokeCount > 0 {
		fmt.Fprintf(w, "%s %d\n", labelStyle("strokes:"), d.StrokeCount)
	}
	fmt.Fprintf(w, "%s\n%s\n", labelStyle("meaning:"), d.Meaning)
	if len(d.Examples) > 0 {
		fmt.Fprintf(w, "%s %s\n", labelStyle("examples:"), strings.Join(d.Examples, "、"))
	}
}
