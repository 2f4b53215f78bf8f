package console

import "strings"

// Tokenize splits one input line on single space characters.
//
// Consecutive spaces yield empty tokens ("a  b" -> ["a", "", "b"]) and
// leading spaces yield leading empty tokens. Trailing empty tokens are
// dropped, so a blank line or a line of only spaces produces no tokens.
// Callers that want word-collapsing behavior must normalize the line first.
func Tokenize(line string) []string {
	tokens := strings.Split(line, " ")

	end := len(tokens)
	for end > 0 && tokens[end-1] == "" {
		end--
	}
	return tokens[:end]
}
