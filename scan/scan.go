// Package scan tokenizes single lines of PL/I preprocessor source.
//
// Scanning is total: every line, including the empty one, yields an ordered
// token slice and at most one fault. Faults are data, not failures; they
// describe the line and leave the caller free to continue with the next one.
package scan

import (
	"unicode/utf8"

	"github.com/mkarlsen/plifront/token"
)

// state of the per-line tokenizer.
type state int

const (
	stateScanning state = iota
	stateInString
	stateDone
	stateFaulted
)

// Line tokenizes one source line. lineNumber is the 1-based number recorded
// on every token, threaded in by the caller so the tokenizer itself holds no
// cross-line state.
//
// The returned error, when non-nil, is either *UnterminatedStringError or
// *UnknownDirectiveError. The first fault stops the scan of the line; tokens
// produced up to that point are still returned.
func Line(text string, lineNumber int) ([]token.Token, error) {
	t := tokenizer{text: text, line: lineNumber}
	return t.run()
}

type tokenizer struct {
	text   string
	line   int
	pos    int
	st     state
	acc    accumulator
	tokens []token.Token
	fault  error
}

func (t *tokenizer) run() ([]token.Token, error) {
	t.st = stateScanning
	for t.st == stateScanning {
		if t.pos >= len(t.text) {
			t.flush()
			if t.st == stateScanning {
				t.st = stateDone
			}
			break
		}

		ch := t.text[t.pos]
		switch classify(ch) {
		case classWhitespace:
			t.flush()
			t.pos++
		case classQuote:
			t.flush()
			if t.st != stateScanning {
				break
			}
			t.st = stateInString
			lit, next, ok := scanString(t.text, t.pos)
			if !ok {
				t.fail(&UnterminatedStringError{Line: t.line, Column: t.pos + 1})
				break
			}
			t.emit(token.STRING, lit)
			t.pos = next
			t.st = stateScanning
		case classSigil:
			// A sigil always opens a fresh directive candidate, even
			// right after an identifier run.
			t.flush()
			if t.st != stateScanning {
				break
			}
			t.acc.start(ch)
			t.pos++
		case classLetter, classDigit:
			t.acc.add(ch)
			t.pos++
		case classPunct:
			t.flush()
			if t.st != stateScanning {
				break
			}
			t.emit(punctCategory(ch), string(ch))
			t.pos++
		default: // classOther
			t.flush()
			if t.st != stateScanning {
				break
			}
			// The recognized alphabet is ASCII, so anything else is
			// one UNKNOWN token per character: decode a full rune to
			// keep multi-byte characters whole. An invalid UTF-8 byte
			// decodes with size 1 and passes through as-is.
			_, size := utf8.DecodeRuneInString(t.text[t.pos:])
			t.emit(token.UNKNOWN, t.text[t.pos:t.pos+size])
			t.pos += size
		}
	}
	return t.tokens, t.fault
}

// flush finalizes any pending accumulator content into a token. A pending
// directive candidate goes through the vocabulary here; an unrecognized one
// still emits an UNKNOWN token so the caller can see what was scanned, and
// the line faults.
func (t *tokenizer) flush() {
	text, pending := t.acc.take()
	if !pending {
		return
	}
	if text[0] == token.Sigil {
		if _, ok := token.LookupDirective(text); ok {
			t.emit(token.DIRECTIVE, text)
			return
		}
		t.emit(token.UNKNOWN, text)
		t.fail(&UnknownDirectiveError{Line: t.line, Name: text})
		return
	}
	t.emit(token.IDENT, text)
}

func (t *tokenizer) emit(cat token.Category, text string) {
	t.tokens = append(t.tokens, token.Token{Category: cat, Text: text, Line: t.line})
}

func (t *tokenizer) fail(fault error) {
	t.fault = fault
	t.st = stateFaulted
}

// accumulator builds up the text of the token currently being scanned. It
// holds the in-progress buffer between character steps and hands it off
// whole when a class boundary is reached.
type accumulator struct {
	buf []byte
}

// start begins a new buffer with ch, discarding nothing: callers flush any
// pending content first.
func (a *accumulator) start(ch byte) {
	a.buf = append(a.buf[:0], ch)
}

func (a *accumulator) add(ch byte) {
	a.buf = append(a.buf, ch)
}

// take returns the buffered text and resets the accumulator. pending is
// false when nothing was buffered, so whitespace runs never produce empty
// tokens.
func (a *accumulator) take() (text string, pending bool) {
	if len(a.buf) == 0 {
		return "", false
	}
	text = string(a.buf)
	a.buf = a.buf[:0]
	return text, true
}
