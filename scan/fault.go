package scan

import "fmt"

// Faults are recoverable, line-scoped problems. They are returned as values
// alongside the tokens scanned so far and never abort a run; a line carries
// at most one fault because the first one stops the scan of that line.

// UnterminatedStringError reports a string literal whose closing quote was
// not found before the end of the line. Column is the 1-based column of the
// opening quote.
type UnterminatedStringError struct {
	Line   int
	Column int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("line %d: unterminated string literal starting at column %d", e.Line, e.Column)
}

// UnknownDirectiveError reports a word that begins with the directive sigil
// but is not in the directive vocabulary. Name preserves the source casing
// of the offending word.
type UnknownDirectiveError struct {
	Line int
	Name string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("line %d: unrecognized preprocessor directive %q", e.Line, e.Name)
}
