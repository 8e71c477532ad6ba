package solidity

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stakeHubSource = `contract StakeHub {
    error InvalidValue(string key, bytes value);
    error Panic(uint256 code);

    function foo() external {
        revert InvalidValue("x", "");
    }
}
`

func newAnnotator() *AnnotatorAdapter {
	return NewAnnotatorAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "StakeHub.sol")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSelector(t *testing.T) {
	assert.Equal(t, "0xddf252ad", Selector("Transfer(address,address,uint256)"))
	assert.Equal(t, "0x08c379a0", Selector("Error(string)"))
	assert.Equal(t, "0x4e487b71", Selector("Panic(uint256)"))
}

func TestNormalizeSignature(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Foo(uint256 a, address b)", want: "Foo(uint256,address)"},
		{in: "Foo(uint256,address)", want: "Foo(uint256,address)"},
		{in: "AlreadyInit()", want: "AlreadyInit()"},
		{in: "Bad(uint256 a,)", want: "Bad()"},
		{in: "InvalidValue(string key, bytes value)", want: "InvalidValue(string,bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSignature(tt.in))
		})
	}
}

func TestAnnotateFile(t *testing.T) {
	path := writeFile(t, stakeHubSource)

	sigs, changed, err := newAnnotator().AnnotateFile(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, sigs, 2)
	assert.Equal(t, "InvalidValue(string,bytes)", sigs[0].Signature)
	assert.Equal(t, Selector("InvalidValue(string,bytes)"), sigs[0].Selector)
	assert.Equal(t, 2, sigs[0].Line)
	assert.Equal(t, "0x4e487b71", sigs[1].Selector)

	content := readFile(t, path)
	assert.Contains(t, content, AnnotationPrefix+Selector("InvalidValue(string,bytes)")+"\n    error InvalidValue(string key, bytes value);\n")
	assert.Contains(t, content, AnnotationPrefix+"0x4e487b71\n    error Panic(uint256 code);\n")
	assert.Equal(t, 2, strings.Count(content, "@notice signature:"))
	// nested declarations and revert statements are left alone
	assert.Contains(t, content, "        revert InvalidValue(\"x\", \"\");\n")
}

func TestAnnotateFileIdempotent(t *testing.T) {
	path := writeFile(t, stakeHubSource)
	a := newAnnotator()

	_, _, err := a.AnnotateFile(context.Background(), path)
	require.NoError(t, err)
	first := readFile(t, path)

	sigs, changed, err := a.AnnotateFile(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, readFile(t, path))
	for _, sig := range sigs {
		assert.True(t, sig.Updated)
	}
}

func TestAnnotateFileReinsertsDeletedAnnotation(t *testing.T) {
	path := writeFile(t, stakeHubSource)
	a := newAnnotator()

	_, _, err := a.AnnotateFile(context.Background(), path)
	require.NoError(t, err)
	annotated := readFile(t, path)

	line := AnnotationPrefix + "0x4e487b71\n"
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(annotated, line, "", 1)), 0644))

	_, changed, err := a.AnnotateFile(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, annotated, readFile(t, path))
}

func TestAnnotateFileOverwritesStaleAnnotation(t *testing.T) {
	path := writeFile(t, "contract A {\n    // @notice signature: 0xdeadbeef\n    error Panic(uint256 code);\n}\n")

	sigs, changed, err := newAnnotator().AnnotateFile(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, sigs, 1)
	assert.True(t, sigs[0].Updated)
	assert.Equal(t, "contract A {\n    // @notice signature: 0x4e487b71\n    error Panic(uint256 code);\n}\n", readFile(t, path))
}

func TestAnnotateFileNoErrors(t *testing.T) {
	path := writeFile(t, "contract A {}\n")

	sigs, changed, err := newAnnotator().AnnotateFile(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, sigs)
}
