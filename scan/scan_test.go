package scan_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mkarlsen/plifront/scan"
	"github.com/mkarlsen/plifront/token"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	type tok struct {
		cat  token.Category
		text string
	}

	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{
			name:  "directive with condition",
			input: "%IF DEBUG = 1 %THEN",
			expected: []tok{
				{token.DIRECTIVE, "%IF"},
				{token.IDENT, "DEBUG"},
				{token.OPERATOR, "="},
				{token.IDENT, "1"},
				{token.DIRECTIVE, "%THEN"},
			},
		},
		{
			name:  "assignment statement",
			input: "X = 1;",
			expected: []tok{
				{token.IDENT, "X"},
				{token.OPERATOR, "="},
				{token.IDENT, "1"},
				{token.SPECIAL, ";"},
			},
		},
		{
			name:  "string literal",
			input: "MSG = 'hello world';",
			expected: []tok{
				{token.IDENT, "MSG"},
				{token.OPERATOR, "="},
				{token.STRING, "'hello world'"},
				{token.SPECIAL, ";"},
			},
		},
		{
			name:     "empty string literal",
			input:    "''",
			expected: []tok{{token.STRING, "''"}},
		},
		{
			name:  "lowercase directive keeps source casing",
			input: "%if a %then",
			expected: []tok{
				{token.DIRECTIVE, "%if"},
				{token.IDENT, "a"},
				{token.DIRECTIVE, "%then"},
			},
		},
		{
			name:  "parenthesized call",
			input: "PROC(A, B)",
			expected: []tok{
				{token.IDENT, "PROC"},
				{token.SPECIAL, "("},
				{token.IDENT, "A"},
				{token.SPECIAL, ","},
				{token.IDENT, "B"},
				{token.SPECIAL, ")"},
			},
		},
		{
			name:  "no whitespace between classes",
			input: "A=B;",
			expected: []tok{
				{token.IDENT, "A"},
				{token.OPERATOR, "="},
				{token.IDENT, "B"},
				{token.SPECIAL, ";"},
			},
		},
		{
			name:  "sigil right after identifier",
			input: "AB%IF",
			expected: []tok{
				{token.IDENT, "AB"},
				{token.DIRECTIVE, "%IF"},
			},
		},
		{
			name:     "unrecognized character",
			input:    "@",
			expected: []tok{{token.UNKNOWN, "@"}},
		},
		{
			name:     "multi-byte character is one token",
			input:    "é",
			expected: []tok{{token.UNKNOWN, "é"}},
		},
		{
			name:  "multi-byte character between tokens",
			input: "A § B",
			expected: []tok{
				{token.IDENT, "A"},
				{token.UNKNOWN, "§"},
				{token.IDENT, "B"},
			},
		},
		{
			name:     "underscore identifier",
			input:    "A_1",
			expected: []tok{{token.IDENT, "A_1"}},
		},
		{
			name:     "empty line",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    " \t  ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, fault := scan.Line(tt.input, 1)
			require.NoError(t, fault)
			require.Len(t, tokens, len(tt.expected))
			for i, want := range tt.expected {
				require.Equal(t, want.cat, tokens[i].Category, "token[%d] category", i)
				require.Equal(t, want.text, tokens[i].Text, "token[%d] text", i)
				require.Equal(t, 1, tokens[i].Line, "token[%d] line", i)
			}
		})
	}
}

func TestLineUnterminatedString(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedColumn int
		expectedTokens int
	}{
		{"lone opening quote", "'abc", 1, 0},
		{"after assignment", "X = 'abc", 5, 2},
		{"quote at end of line", "A'", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, fault := scan.Line(tt.input, 3)
			require.Error(t, fault)

			var unterminated *scan.UnterminatedStringError
			require.ErrorAs(t, fault, &unterminated)
			require.Equal(t, 3, unterminated.Line)
			require.Equal(t, tt.expectedColumn, unterminated.Column)
			require.Len(t, tokens, tt.expectedTokens)
		})
	}
}

func TestLineUnknownDirective(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedName string
	}{
		{"unknown word", "%FOO", "%FOO"},
		{"prefix of a real directive is not enough", "%IFX", "%IFX"},
		{"lone sigil", "%", "%"},
		{"digits after sigil", "%5A", "%5A"},
		{"casing preserved in fault", "%Foo", "%Foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, fault := scan.Line(tt.input, 7)
			require.Error(t, fault)

			var unknown *scan.UnknownDirectiveError
			require.ErrorAs(t, fault, &unknown)
			require.Equal(t, 7, unknown.Line)
			require.Equal(t, tt.expectedName, unknown.Name)

			// The offending word is still visible to the caller.
			require.NotEmpty(t, tokens)
			last := tokens[len(tokens)-1]
			require.Equal(t, token.UNKNOWN, last.Category)
			require.Equal(t, tt.expectedName, last.Text)
		})
	}
}

func TestLineFaultStopsScan(t *testing.T) {
	tokens, fault := scan.Line("%FOO A = B;", 1)
	require.Error(t, fault)
	require.Len(t, tokens, 1, "nothing after the fault should be scanned")
	require.Equal(t, "%FOO", tokens[0].Text)

	tokens, fault = scan.Line("X = 'open A = B", 1)
	require.Error(t, fault)
	require.Len(t, tokens, 2, "the unterminated literal consumes the rest of the line")
}

func TestLineCoverage(t *testing.T) {
	// Concatenating token texts must reconstruct every non-whitespace
	// character of a fault-free line, in order.
	inputs := []string{
		"%IF DEBUG = 1 %THEN",
		"X = 1;",
		"MSG = 'a b  c';",
		"  A  =  B  ",
		"PROC(A,B);",
		"@ $ ?",
		"%comment 'done'",
		"π = 3; µ§é",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, fault := scan.Line(input, 1)
			require.NoError(t, fault)
			requireCoverage(t, input, tokens)
			for _, tok := range tokens {
				require.True(t, utf8.ValidString(tok.Text), "token %q is not valid UTF-8", tok.Text)
			}
		})
	}
}

// requireCoverage walks the line left to right, matching each token's text
// at its position and skipping only whitespace between tokens.
func requireCoverage(t *testing.T, line string, tokens []token.Token) {
	t.Helper()
	pos := 0
	for _, tok := range tokens {
		for pos < len(line) && isSpace(line[pos]) {
			pos++
		}
		require.True(t, strings.HasPrefix(line[pos:], tok.Text),
			"token %q does not match line at column %d", tok.Text, pos+1)
		pos += len(tok.Text)
	}
	for pos < len(line) {
		require.True(t, isSpace(line[pos]), "uncovered character %q at column %d", line[pos], pos+1)
		pos++
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
