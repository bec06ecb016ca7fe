package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pmezard/go-difflib/difflib"
)

// minSimilarity is the lowest difflib ratio for which a lesson id is suggested.
const minSimilarity = 0.5

// render writes rows as an aligned table on a terminal, and v as indented JSON otherwise.
func (cli *commandLine) render(v interface{}, header []string, rows [][]string) error {
	if !isTerminalFunc() {
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

// closest returns the candidate most similar to id, or "" when none is similar enough.
func closest(id string, candidates []string) string {
	var best string
	var bestRatio float64
	for _, c := range candidates {
		m := difflib.NewMatcher(strings.Split(id, ""), strings.Split(c, ""))
		if r := m.Ratio(); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	if bestRatio < minSimilarity {
		return ""
	}
	return best
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
