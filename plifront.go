package plifront

import (
	"bufio"
	"io"

	"github.com/mkarlsen/plifront/scan"
	"github.com/mkarlsen/plifront/token"
)

// Verdict is the classification of one fully tokenized source line.
type Verdict string

const (
	// Blank is a line with no non-whitespace content.
	Blank Verdict = "BLANK"
	// PlainLine has tokens but no leading directive.
	PlainLine Verdict = "PLAIN"
	// ValidDirectiveLine opens with a recognized preprocessor directive.
	ValidDirectiveLine Verdict = "VALID_DIRECTIVE"
	// MalformedDirectiveLine opens with the sigil but no recognized
	// directive, or carried a tokenization fault.
	MalformedDirectiveLine Verdict = "MALFORMED_DIRECTIVE"
)

// Result is everything the front end knows about one source line. Results
// are produced fresh per line and not retained; the caller owns them.
type Result struct {
	LineNumber int
	Verdict    Verdict
	Tokens     []token.Token
	Fault      error
}

// Classify decides the verdict for a tokenized line. It is a pure function
// of its inputs: the same (tokens, fault) pair always yields the same
// verdict.
func Classify(tokens []token.Token, fault error) Verdict {
	switch {
	case fault != nil:
		// Checked before the blank case: an unterminated literal can
		// fault without leaving any tokens behind.
		return MalformedDirectiveLine
	case len(tokens) == 0:
		return Blank
	case tokens[0].Category == token.DIRECTIVE:
		return ValidDirectiveLine
	case tokens[0].HasSigil():
		// Safety net; the tokenizer should have faulted already.
		return MalformedDirectiveLine
	default:
		return PlainLine
	}
}

// ScanLine tokenizes and classifies a single source line. lineNumber is the
// 1-based line number recorded on the result and its tokens.
func ScanLine(text string, lineNumber int) Result {
	tokens, fault := scan.Line(text, lineNumber)
	return Result{
		LineNumber: lineNumber,
		Verdict:    Classify(tokens, fault),
		Tokens:     tokens,
		Fault:      fault,
	}
}

// maxLineSize is the longest single source line the Scanner accepts. Lines
// beyond it surface as bufio.ErrTooLong from Err.
const maxLineSize = 1 << 20

// Scanner drives line-by-line scanning of a whole source stream. It threads
// the line counter explicitly; no other state crosses line boundaries, so a
// bad line never affects the lines after it.
type Scanner struct {
	lines *bufio.Scanner
	n     int
	cur   Result
}

// NewScanner creates a Scanner reading source lines from r. Lines up to
// 1 MiB are accepted.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Scanner{lines: lines}
}

// Scan advances to the next source line, tokenizing and classifying it. It
// returns false at end of input or on a read error; see Err.
func (s *Scanner) Scan() bool {
	if !s.lines.Scan() {
		return false
	}
	s.n++
	s.cur = ScanLine(s.lines.Text(), s.n)
	return true
}

// Result returns the outcome for the line consumed by the last call to Scan.
func (s *Scanner) Result() Result {
	return s.cur
}

// Text returns the raw text of the line consumed by the last call to Scan.
func (s *Scanner) Text() string {
	return s.lines.Text()
}

// Err returns the first error encountered reading the underlying stream.
// Tokenization faults are never reported here; they live on each Result.
func (s *Scanner) Err() error {
	return s.lines.Err()
}

// ScanAll reads r to the end and returns one Result per source line. The
// only possible error is a read error from r.
func ScanAll(r io.Reader) ([]Result, error) {
	var results []Result
	s := NewScanner(r)
	for s.Scan() {
		results = append(results, s.Result())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
