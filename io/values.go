package io

import (
	"strings"

	"github.com/ezrec/sic1/cpu"
)

// ParseValues parses custom input: numbers, characters and strings,
// separated by whitespace or commas. Semicolons start comments.
func ParseValues(text string) (values []int8, err error) {
	for n, line := range strings.Split(text, "\n") {
		var tokens []cpu.Token
		tokens, err = cpu.TokenizeLine(line, n+1)
		if err != nil {
			return
		}

		ctx := cpu.Context{LineNo: n + 1, Line: line}
		for _, token := range tokens {
			switch token.Kind {
			case cpu.TOKEN_WHITESPACE, cpu.TOKEN_COMMA:
				continue
			case cpu.TOKEN_NUMBER, cpu.TOKEN_CHARACTER, cpu.TOKEN_STRING:
				var bytes []uint8
				bytes, err = cpu.TokenValues(token, ctx)
				if err != nil {
					return
				}
				for _, value := range bytes {
					values = append(values, cpu.UnsignedToSigned(value))
				}
			default:
				err = &cpu.ErrInvalidValueExpression{Context: ctx, Text: token.Raw}
				return
			}
		}
	}

	return
}
