package domain

import "fmt"

// PatchAction is the kind of edit an instruction performs
type PatchAction string

const (
	// ReplaceParameter rewrites `<prefix> = ...;` to `<prefix> = <payload>;`
	ReplaceParameter PatchAction = "replace-parameter"
	// ReplaceFirstMatch substitutes the payload for the first Count matches of the pattern
	ReplaceFirstMatch PatchAction = "replace"
	// InsertBeforeLine emits the payload as a new line before the first matching line
	InsertBeforeLine PatchAction = "insert-before"
)

// Instruction is one atomic patch against one contract source file.
// Target is relative to the contracts directory.
type Instruction struct {
	Target  string
	Pattern string
	Action  PatchAction
	Payload string
	// Count bounds ReplaceFirstMatch. Zero means one match, negative means all.
	Count int
}

func (i Instruction) String() string {
	switch i.Action {
	case ReplaceParameter:
		return fmt.Sprintf("%s: set %s = %s", i.Target, i.Pattern, Abbreviate(i.Payload, 48))
	case InsertBeforeLine:
		return fmt.Sprintf("%s: insert %q before /%s/", i.Target, Abbreviate(i.Payload, 48), i.Pattern)
	default:
		return fmt.Sprintf("%s: replace /%s/ with %q", i.Target, i.Pattern, Abbreviate(i.Payload, 48))
	}
}

// Abbreviate shortens long literals such as encoded byte blobs for display.
func Abbreviate(s string, max int) string {
	if max < 8 || len(s) <= max {
		return s
	}
	half := (max - 3) / 2
	return s[:half] + "..." + s[len(s)-half:]
}
