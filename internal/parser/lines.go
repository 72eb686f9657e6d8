package parser

import (
	"bufio"
	"strings"
)

// NumberedLine pairs a line of input with its 1-indexed position, so
// every regex-over-lines parser tracks log_line_start/log_line_end the
// same way instead of each maintaining its own drifting counter.
type NumberedLine struct {
	Number int
	Text   string
}

// Lines splits content into 1-indexed (number, text) pairs. It uses
// bufio.Scanner with an enlarged buffer so a single very long line (e.g.
// a minified JSON blob embedded in a CI transcript) doesn't truncate the
// scan.
func Lines(content string) []NumberedLine {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var out []NumberedLine
	n := 0
	for scanner.Scan() {
		n++
		out = append(out, NumberedLine{Number: n, Text: scanner.Text()})
	}
	return out
}

// NonBlankSample returns up to max non-blank lines from the start of
// content, used by detection heuristics that must only look at the first
// few lines (spec §4.4: "first 10 non-blank lines").
func NonBlankSample(content string, max int) []string {
	var out []string
	for _, l := range Lines(content) {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}
		out = append(out, l.Text)
		if len(out) >= max {
			break
		}
	}
	return out
}

// MatchRatio runs match against each of the first `sample` non-blank
// lines of content and reports whether at least a third of them match,
// per spec §4.4's regex-over-lines detection rule.
func MatchRatio(content string, sample int, match func(string) bool) bool {
	lines := NonBlankSample(content, sample)
	if len(lines) == 0 {
		return false
	}
	hits := 0
	for _, l := range lines {
		if match(l) {
			hits++
		}
	}
	return hits*3 >= len(lines)
}
