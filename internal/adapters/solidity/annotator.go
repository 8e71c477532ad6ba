package solidity

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// AnnotationPrefix starts every selector annotation line
const AnnotationPrefix = "    // @notice signature: "

var (
	errorDeclRegex  = regexp.MustCompile(`^\s{4}error\s([A-Za-z]*\(.*\));$`)
	annotationRegex = regexp.MustCompile(`^\s{4}//\s@notice\ssignature:\s.*$`)
	paramListRegex  = regexp.MustCompile(`\((.*?)\)`)
)

// AnnotatorAdapter keeps `// @notice signature:` lines above custom error declarations
type AnnotatorAdapter struct {
	log *slog.Logger
}

// NewAnnotatorAdapter creates a new error selector annotator
func NewAnnotatorAdapter(log *slog.Logger) *AnnotatorAdapter {
	return &AnnotatorAdapter{log: log.With("component", "ErrorAnnotator")}
}

// AnnotateFile inserts or refreshes the selector annotation above every
// top-level error declaration in path. The file is only written when it changed.
func (a *AnnotatorAdapter) AnnotateFile(ctx context.Context, path string) ([]domain.ErrorSignature, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	original := string(data)
	lines := strings.SplitAfter(original, "\n")
	out := make([]string, 0, len(lines))
	var sigs []domain.ErrorSignature

	for i, line := range lines {
		body := strings.TrimRight(line, "\r\n")
		m := errorDeclRegex.FindStringSubmatch(body)
		if m == nil {
			out = append(out, line)
			continue
		}

		signature := NormalizeSignature(m[1])
		selector := Selector(signature)
		annotation := AnnotationPrefix + selector + line[len(body):]
		if line[len(body):] == "" {
			annotation += "\n"
		}

		updated := false
		if n := len(out); n > 0 && annotationRegex.MatchString(strings.TrimRight(out[n-1], "\r\n")) {
			out[n-1] = annotation
			updated = true
		} else {
			out = append(out, annotation)
		}
		out = append(out, line)

		sigs = append(sigs, domain.ErrorSignature{
			File:      path,
			Line:      i + 1,
			Signature: signature,
			Selector:  selector,
			Updated:   updated,
		})
	}

	result := strings.Join(out, "")
	if result == original {
		return sigs, false, nil
	}

	if err := os.WriteFile(path, []byte(result), info.Mode().Perm()); err != nil {
		return nil, false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	a.log.Debug("annotated error selectors", "file", path, "errors", len(sigs))
	return sigs, true, nil
}

// NormalizeSignature strips parameter names from an error declaration, so
// `Unauthorized(address caller, uint256 id)` becomes `Unauthorized(address,uint256)`.
// A parameter list with an empty entry collapses to `Name()`.
func NormalizeSignature(decl string) string {
	m := paramListRegex.FindStringSubmatchIndex(decl)
	if m == nil {
		return decl
	}
	inner := decl[m[2]:m[3]]
	if inner == "" {
		return decl
	}

	name := decl[:m[0]]
	parts := strings.Split(inner, ",")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		fields := strings.Fields(p)
		if len(fields) == 0 {
			return name + "()"
		}
		types = append(types, fields[0])
	}

	return name + "(" + strings.Join(types, ",") + ")" + decl[m[1]:]
}

// Selector returns the 0x-prefixed first four bytes of keccak256(signature)
func Selector(signature string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(signature))[:4])
}

// Ensure the adapter implements the interface
var _ usecase.ErrorAnnotator = (*AnnotatorAdapter)(nil)
