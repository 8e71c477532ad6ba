// Package patch implements the text-level edits applied to contract sources.
//
// All functions here are pure: they take the file content and return the new
// content together with whether the anchor was found. Reading, writing and
// backing up files is left to the fs adapter.
package patch

import (
	"fmt"
	"regexp"
	"strings"
)

// Span is a half-open byte range inside a content string
type Span struct {
	Start int
	End   int
}

// Pattern is a compiled anchor expression
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// Compile compiles a regular expression anchor
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &Pattern{raw: expr, re: re}, nil
}

// MustCompile is like Compile but panics on invalid expressions
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// ParameterPattern matches `<prefix> = <anything up to the next ;>;`.
// The prefix is matched literally.
func ParameterPattern(prefix string) *Pattern {
	return MustCompile(regexp.QuoteMeta(prefix) + ` =[^;]*;`)
}

func (p *Pattern) String() string {
	return p.raw
}

// Find returns the leftmost match in content
func (p *Pattern) Find(content string) (Span, bool) {
	loc := p.re.FindStringIndex(content)
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: loc[0], End: loc[1]}, true
}

// MatchLine reports whether the pattern occurs anywhere in a single line.
// A trailing line terminator is ignored.
func (p *Pattern) MatchLine(line string) bool {
	return p.re.MatchString(strings.TrimRight(line, "\r\n"))
}
