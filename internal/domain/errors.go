package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrPatternNotFound is returned when a required anchor is missing from a target file
	ErrPatternNotFound = errors.New("pattern not found")

	// ErrBackupFailed is returned when a pre-mutation snapshot could not be written
	ErrBackupFailed = errors.New("backup failed")

	// ErrExternalProcessFailed is returned when a build, genesis or encoder subprocess fails
	ErrExternalProcessFailed = errors.New("external process failed")

	// ErrMalformedInputRecord is returned when an input line has the wrong field count
	ErrMalformedInputRecord = errors.New("malformed input record")

	// ErrProfileNotFound is returned when a profile name is not registered
	ErrProfileNotFound = errors.New("profile not found")

	// ErrTemplateNotFound is returned when a template file does not exist
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingParameter is returned when a patch group needs a parameter the profile does not define
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidChainID is returned when a chain ID does not fit the 2-byte encoding
	ErrInvalidChainID = errors.New("invalid chain ID")
)

type PatternNotFoundError struct {
	Target  string
	Pattern string
}

func (e PatternNotFoundError) Error() string {
	return fmt.Sprintf("%s: pattern %q not found", e.Target, e.Pattern)
}

func (e PatternNotFoundError) Unwrap() error {
	return ErrPatternNotFound
}

type BackupFailedError struct {
	Source      string
	Destination string
	Err         error
}

func (e BackupFailedError) Error() string {
	return fmt.Sprintf("failed to back up %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e BackupFailedError) Unwrap() []error {
	return []error{ErrBackupFailed, e.Err}
}

type ExternalProcessFailedError struct {
	Command string
	Args    []string
	Output  string
	Err     error
}

func (e ExternalProcessFailedError) Error() string {
	cmdline := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	msg := fmt.Sprintf("%s failed: %v", cmdline, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\nOutput: " + out
	}
	return msg
}

func (e ExternalProcessFailedError) Unwrap() []error {
	return []error{ErrExternalProcessFailed, e.Err}
}

type MalformedInputRecordError struct {
	Source   string
	Line     int
	Content  string
	Expected int
	Got      int
}

func (e MalformedInputRecordError) Error() string {
	return fmt.Sprintf("invalid record at %s:%d: expected %d fields, got %d: %q",
		e.Source, e.Line, e.Expected, e.Got, e.Content)
}

func (e MalformedInputRecordError) Unwrap() error {
	return ErrMalformedInputRecord
}

type ProfileNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e ProfileNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown profile %q", e.Name)
	}
	return fmt.Sprintf("unknown profile %q, did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e ProfileNotFoundError) Unwrap() error {
	return ErrProfileNotFound
}
