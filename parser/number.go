package parser

import "strconv"

// parseNumber converts a lexer-produced Integer/Float lexeme to float64.
// A trailing '.' with no fractional digits (e.g. "1.") is valid per the
// lexer's grammar but not accepted by strconv.ParseFloat, so it is trimmed
// before parsing.
func parseNumber(lexeme string) (float64, error) {
	if lexeme[len(lexeme)-1] == '.' {
		lexeme = lexeme[:len(lexeme)-1]
	}
	return strconv.ParseFloat(lexeme, 64)
}
