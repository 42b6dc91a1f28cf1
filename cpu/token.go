package cpu

import (
	"errors"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_LABEL      = TokenKind(0) // label
	TOKEN_COMMAND    = TokenKind(1) // command
	TOKEN_NUMBER     = TokenKind(2) // number
	TOKEN_CHARACTER  = TokenKind(3) // character
	TOKEN_STRING     = TokenKind(4) // string
	TOKEN_COMMA      = TokenKind(5) // comma
	TOKEN_BANG       = TokenKind(6) // bang
	TOKEN_WHITESPACE = TokenKind(7) // whitespace
	TOKEN_REFERENCE  = TokenKind(8) // reference
	TOKEN_COMMENT    = TokenKind(9) // comment
)

// Token is a lexical token of a source line.
type Token struct {
	Kind    TokenKind
	Raw     string // Source text of the token.
	Name    string // Label or reference name, without the '@'.
	Offset  int    // Reference offset.
	Negated bool   // Reference, character or string had a leading '-'.
	Body    string // Character or string contents, with escapes.
}

type tokenRule struct {
	Kind    TokenKind
	Pattern *regexp.Regexp
	Discard bool
}

const identifier = `[_a-zA-Z0-9]+`

// Rules are tried in order, first match wins.
var tokenRules = []tokenRule{
	{Kind: TOKEN_WHITESPACE, Pattern: regexp.MustCompile(`^\s+`)},
	{Kind: TOKEN_COMMENT, Pattern: regexp.MustCompile(`^;.*`), Discard: true},
	{Kind: TOKEN_COMMA, Pattern: regexp.MustCompile(`^,`)},
	{Kind: TOKEN_BANG, Pattern: regexp.MustCompile(`^!`)},
	{Kind: TOKEN_LABEL, Pattern: regexp.MustCompile(`^@(` + identifier + `):`)},
	{Kind: TOKEN_REFERENCE, Pattern: regexp.MustCompile(`^(-?)@(` + identifier + `)([+-][0-9]+)?`)},
	{Kind: TOKEN_CHARACTER, Pattern: regexp.MustCompile(`^(-?)'(\\.|[^'\\])'`)},
	{Kind: TOKEN_STRING, Pattern: regexp.MustCompile(`^(-?)"((?:\\.|[^"\\])*)"`)},
	{Kind: TOKEN_NUMBER, Pattern: regexp.MustCompile(`^-?[0-9]+`)},
	{Kind: TOKEN_COMMAND, Pattern: regexp.MustCompile(`^\.?[_a-zA-Z][_a-zA-Z0-9]*`)},
}

// TokenizeLine splits a source line into tokens.
// Whitespace is kept, comments are dropped.
func TokenizeLine(line string, lineNo int) (tokens []Token, err error) {
	ctx := Context{LineNo: lineNo, Line: line}

	text := line
	for len(text) > 0 {
		var token Token
		var ok bool
		token, ok = nextToken(text)
		if !ok {
			err = &ErrInvalidToken{Context: ctx, Text: text}
			return
		}
		text = text[len(token.Raw):]
		if token.Kind == TOKEN_COMMENT {
			continue
		}
		tokens = append(tokens, token)
	}

	return
}

func nextToken(text string) (token Token, ok bool) {
	for _, rule := range tokenRules {
		match := rule.Pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		token = Token{Kind: rule.Kind, Raw: match[0]}
		switch rule.Kind {
		case TOKEN_LABEL:
			token.Name = match[1]
		case TOKEN_REFERENCE:
			token.Negated = match[1] == "-"
			token.Name = match[2]
			if len(match[3]) > 0 {
				// Out of range offsets clamp, and fail address range checks.
				offset, err := strconv.ParseInt(match[3], 10, 16)
				if err != nil && !errors.Is(err, strconv.ErrRange) {
					return
				}
				token.Offset = int(offset)
			}
		case TOKEN_CHARACTER, TOKEN_STRING:
			token.Negated = match[1] == "-"
			token.Body = match[2]
		}

		ok = true
		return
	}

	return
}

var escapeMap = map[rune]uint8{
	'0':  0,
	'n':  '\n',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// unescape decodes character or string contents into byte values.
func unescape(body string, ctx Context) (values []uint8, err error) {
	for len(body) > 0 {
		r, size := utf8.DecodeRuneInString(body)
		body = body[size:]

		if r == '\\' {
			code, size := utf8.DecodeRuneInString(body)
			body = body[size:]
			value, ok := escapeMap[code]
			if !ok {
				err = &ErrInvalidEscapeCode{Context: ctx, Text: `\` + string(code)}
				return
			}
			values = append(values, value)
			continue
		}

		if r > ADDRESS_MAX {
			err = &ErrValueRange{Context: ctx, Text: strconv.QuoteRune(r), Min: 0, Max: ADDRESS_MAX}
			return
		}
		values = append(values, uint8(r))
	}

	return
}

// TokenValues returns the bytes a numeric, character or string token emits.
func TokenValues(token Token, ctx Context) (values []uint8, err error) {
	switch token.Kind {
	case TOKEN_NUMBER:
		var value int
		value, err = strconv.Atoi(token.Raw)
		if err != nil || value < VALUE_MIN || value > VALUE_MAX {
			err = &ErrValueRange{Context: ctx, Text: token.Raw, Min: VALUE_MIN, Max: VALUE_MAX}
			return
		}
		values = []uint8{uint8(value)}
	case TOKEN_CHARACTER:
		values, err = unescape(token.Body, ctx)
		if err != nil {
			return
		}
		if len(values) != 1 {
			err = &ErrInternalCompiler{Context: ctx, Detail: token.Raw}
			return
		}
	case TOKEN_STRING:
		values, err = unescape(token.Body, ctx)
		if err != nil {
			return
		}
		values = append(values, 0)
	default:
		err = &ErrInvalidValueExpression{Context: ctx, Text: token.Raw}
		return
	}

	if token.Negated {
		for n, value := range values {
			values[n] = -value
		}
	}

	return
}
