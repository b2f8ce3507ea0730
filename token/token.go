package token

import (
	"slices"
	"strings"
)

// Sigil is the reserved character that opens a preprocessor directive.
const Sigil = '%'

// Category is the lexical category of a token.
type Category string

// Token represents a single classified lexical unit taken from one source
// line. Text is the exact source substring the token covers, delimiters
// included, with its original casing preserved.
type Token struct {
	Category Category
	Text     string
	Line     int // 1-based source line the token came from
}

// HasSigil reports whether the token's text begins with the directive sigil.
func (t Token) HasSigil() bool {
	return strings.HasPrefix(t.Text, string(Sigil))
}

const (
	// DIRECTIVE is a recognized preprocessor directive, e.g. %IF.
	DIRECTIVE Category = "DIRECTIVE"
	// IDENT is a run of letters, digits and underscores, e.g. DEBUG, A_1.
	IDENT Category = "IDENT"
	// STRING is a quoted literal including both delimiters, e.g. 'abc'.
	STRING Category = "STRING"
	// OPERATOR is a single operator character, e.g. = or *.
	OPERATOR Category = "OPERATOR"
	// SPECIAL is a single delimiter character, e.g. ; or (.
	SPECIAL Category = "SPECIAL"
	// UNKNOWN is anything that fits no other category.
	UNKNOWN Category = "UNKNOWN"
)

// DirectiveKind buckets the recognized directives for the downstream
// preprocessing stage.
type DirectiveKind string

const (
	KindControlFlow DirectiveKind = "CONTROL_FLOW" // %IF, %THEN, %ELSE, %ENDIF
	KindComment     DirectiveKind = "COMMENT"      // %COMMENT
)

// directives is the complete vocabulary. It is part of the contract with the
// expansion stage: exactly these five words, matched case-insensitively.
var directives = map[string]DirectiveKind{
	"%IF":      KindControlFlow,
	"%THEN":    KindControlFlow,
	"%ELSE":    KindControlFlow,
	"%ENDIF":   KindControlFlow,
	"%COMMENT": KindComment,
}

// LookupDirective checks the directive vocabulary for word. Matching is
// case-insensitive and exact: %IFX is not a directive. The second return
// value reports whether word is recognized.
func LookupDirective(word string) (DirectiveKind, bool) {
	kind, ok := directives[strings.ToUpper(word)]
	return kind, ok
}

// Directives returns the recognized directive words in canonical upper
// case, sorted.
func Directives() []string {
	words := make([]string, 0, len(directives))
	for w := range directives {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
