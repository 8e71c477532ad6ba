package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternFind(t *testing.T) {
	p := MustCompile(`FOO = \d+`)

	span, ok := p.Find("a FOO = 1; b FOO = 2;")
	require.True(t, ok)
	assert.Equal(t, Span{Start: 2, End: 9}, span)

	_, ok = p.Find("nothing here")
	assert.False(t, ok)
}

func TestCompileInvalid(t *testing.T) {
	_, err := Compile(`unbalanced(`)
	assert.Error(t, err)
}

func TestReplaceParameter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		prefix  string
		value   string
		want    string
		found   bool
	}{
		{
			name:    "simple constant",
			content: "    uint256 public constant FOO = 10;\n",
			prefix:  "uint256 public constant FOO",
			value:   "99",
			want:    "    uint256 public constant FOO = 99;\n",
			found:   true,
		},
		{
			name:    "only first declaration is touched",
			content: "uint256 public constant FOO = 1;\nuint256 public constant FOO = 2;\n",
			prefix:  "uint256 public constant FOO",
			value:   "3",
			want:    "uint256 public constant FOO = 3;\nuint256 public constant FOO = 2;\n",
			found:   true,
		},
		{
			name:    "multiline value",
			content: "bytes public constant INIT = hex\"00\"\n    hex\"11\";\nrest",
			prefix:  "bytes public constant INIT",
			value:   `hex"ff"`,
			want:    "bytes public constant INIT = hex\"ff\";\nrest",
			found:   true,
		},
		{
			name:    "prefix is literal",
			content: "uint16 constant public bscChainID = 0x0038;",
			prefix:  "uint16 constant public bscChainID",
			value:   "0x0061",
			want:    "uint16 constant public bscChainID = 0x0061;",
			found:   true,
		},
		{
			name:    "value with dollar sign is not expanded",
			content: "string public constant NAME = \"a\";",
			prefix:  "string public constant NAME",
			value:   `"$1"`,
			want:    `string public constant NAME = "$1";`,
			found:   true,
		},
		{
			name:    "missing declaration",
			content: "uint256 public constant BAR = 10;",
			prefix:  "uint256 public constant FOO",
			value:   "99",
			want:    "uint256 public constant BAR = 10;",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ReplaceParameter(tt.content, tt.prefix, tt.value)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplaceCount(t *testing.T) {
	content := "x = 1; x = 2; x = 3;"
	p := MustCompile(`x = \d;`)

	got, n := Replace(content, p, "y;", 0)
	assert.Equal(t, 1, n)
	assert.Equal(t, "y; x = 2; x = 3;", got)

	got, n = Replace(content, p, "y;", 2)
	assert.Equal(t, 2, n)
	assert.Equal(t, "y; y; x = 3;", got)

	got, n = Replace(content, p, "y;", -1)
	assert.Equal(t, 3, n)
	assert.Equal(t, "y; y; y;", got)

	got, n = Replace(content, MustCompile(`z`), "y", 1)
	assert.Equal(t, 0, n)
	assert.Equal(t, content, got)
}

func TestInsertBefore(t *testing.T) {
	content := strings.Join([]string{
		"function init() external {",
		"    numOperator = 2;",
		"    alreadyInit = true;",
		"    numOperator = 2;",
		"}",
		"",
	}, "\n")

	got, found := InsertBefore(content, MustCompile(`numOperator = 2;`), "    operators[A] = true;")
	require.True(t, found)
	assert.Equal(t, strings.Join([]string{
		"function init() external {",
		"    operators[A] = true;",
		"    numOperator = 2;",
		"    alreadyInit = true;",
		"    numOperator = 2;",
		"}",
		"",
	}, "\n"), got)
	assert.Equal(t, 1, strings.Count(got, "operators[A]"))
}

func TestInsertBeforeSequential(t *testing.T) {
	// Two inserts against the same anchor end up in call order above it
	content := "a\nnumOperator = 2;\n"
	p := MustCompile(`numOperator = 2;`)

	content, found := InsertBefore(content, p, "first")
	require.True(t, found)
	content, found = InsertBefore(content, p, "second")
	require.True(t, found)

	assert.Equal(t, "a\nfirst\nsecond\nnumOperator = 2;\n", content)
}

func TestInsertBeforeKeepsCRLF(t *testing.T) {
	content := "a\r\nb\r\n"
	got, found := InsertBefore(content, MustCompile(`^b$`), "x")
	require.True(t, found)
	assert.Equal(t, "a\r\nx\r\nb\r\n", got)
}

func TestInsertBeforeLastLineWithoutNewline(t *testing.T) {
	got, found := InsertBefore("a\nb", MustCompile(`b`), "x")
	require.True(t, found)
	assert.Equal(t, "a\nx\nb", got)
}

func TestInsertBeforeNotFound(t *testing.T) {
	content := "a\nb\n"
	got, found := InsertBefore(content, MustCompile(`c`), "x")
	assert.False(t, found)
	assert.Equal(t, content, got)
}
