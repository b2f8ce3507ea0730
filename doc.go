/*
Package plifront tokenizes and classifies lines of PL/I preprocessor source.

It is the front end of a preprocessor pipeline: each input line is scanned
into a sequence of categorized tokens and given a per-line verdict. The
package does not expand macros, evaluate conditions, or resolve includes;
those belong to a later stage that consumes this package's output.

Scanning a single line:

	res := plifront.ScanLine("%IF DEBUG = 1 %THEN", 1)
	// res.Verdict == plifront.ValidDirectiveLine
	// res.Tokens[0].Category == token.DIRECTIVE

Scanning a whole source stream:

	s := plifront.NewScanner(f)
	for s.Scan() {
		res := s.Result()
		// log, forward, or discard res
	}
	if err := s.Err(); err != nil {
		// handle read error
	}

Tokenization problems are faults, not errors: a line with an unterminated
string literal or an unrecognized directive gets the
MalformedDirectiveLine verdict and carries a typed fault value, and the
scan simply continues with the next line. The recognized directive
vocabulary is exactly %IF, %THEN, %ELSE, %ENDIF and %COMMENT, matched
case-insensitively.
*/
package plifront
