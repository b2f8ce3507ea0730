package scan

import "github.com/mkarlsen/plifront/token"

// class is the coarse classification of a single input character. Every
// character falls into exactly one class; characters outside the recognized
// alphabet land in classOther and tokenize as UNKNOWN.
type class int

const (
	classLetter class = iota
	classDigit
	classWhitespace
	classQuote
	classSigil
	classPunct
	classOther
)

// classify maps one character to its class. The quote character is the
// single quote used by PL/I string literals. '_' counts as a letter so
// identifiers like A_1 stay whole.
func classify(ch byte) class {
	switch {
	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
		return classWhitespace
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', ch == '_':
		return classLetter
	case '0' <= ch && ch <= '9':
		return classDigit
	case ch == '\'':
		return classQuote
	case ch == token.Sigil:
		return classSigil
	case isOperator(ch) || isDelimiter(ch):
		return classPunct
	default:
		return classOther
	}
}

func isOperator(ch byte) bool {
	switch ch {
	case '=', '#', '*', '+', '-', '/', '<', '>':
		return true
	}
	return false
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ';', '(', ')', ',':
		return true
	}
	return false
}

// punctCategory picks the token category for a single punctuation
// character. Punctuation always tokenizes one character at a time; there is
// no multi-character operator fusion.
func punctCategory(ch byte) token.Category {
	if isOperator(ch) {
		return token.OPERATOR
	}
	return token.SPECIAL
}
