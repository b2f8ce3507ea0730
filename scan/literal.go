package scan

// scanString consumes a quoted literal. start must index the opening quote
// in line. On success it returns the literal text including both quotes and
// the index just past the closing quote. If the line ends before a closing
// quote is found, ok is false and the caller treats the rest of the line as
// consumed.
//
// A quote character always closes the literal; doubled-quote escapes are not
// part of the grammar at this stage.
func scanString(line string, start int) (lit string, next int, ok bool) {
	for i := start + 1; i < len(line); i++ {
		if line[i] == '\'' {
			return line[start : i+1], i + 1, true
		}
	}
	return "", len(line), false
}
