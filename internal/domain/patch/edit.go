package patch

import (
	"strings"
)

// Replace substitutes repl for the first count matches of p.
// count == 0 is treated as 1 and count < 0 replaces every match.
// repl is inserted literally. It returns the new content and the number of replacements.
func Replace(content string, p *Pattern, repl string, count int) (string, int) {
	if count == 0 {
		count = 1
	}
	locs := p.re.FindAllStringIndex(content, count)
	if len(locs) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content) + len(locs)*len(repl))
	last := 0
	for _, loc := range locs {
		b.WriteString(content[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
	}
	b.WriteString(content[last:])
	return b.String(), len(locs)
}

// ReplaceParameter rewrites the first `<prefix> = ...;` declaration to `<prefix> = <value>;`
func ReplaceParameter(content, prefix, value string) (string, bool) {
	out, n := Replace(content, ParameterPattern(prefix), prefix+" = "+value+";", 1)
	return out, n > 0
}

// InsertBefore emits line directly before the first line matching p.
// Later matching lines are left alone. The inserted line takes the line
// terminator of the line it precedes, defaulting to "\n".
func InsertBefore(content string, p *Pattern, line string) (string, bool) {
	lines := strings.SplitAfter(content, "\n")

	var b strings.Builder
	b.Grow(len(content) + len(line) + 2)
	found := false
	for _, l := range lines {
		if !found && l != "" && p.MatchLine(l) {
			b.WriteString(line)
			if strings.HasSuffix(l, "\r\n") {
				b.WriteString("\r\n")
			} else {
				b.WriteString("\n")
			}
			found = true
		}
		b.WriteString(l)
	}
	if !found {
		return content, false
	}
	return b.String(), true
}
