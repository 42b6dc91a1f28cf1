package cpu

import (
	"fmt"
	"strconv"
)

// LabelDefinition is a label defined on a source line.
type LabelDefinition struct {
	Label  string // Label name, without the '@'.
	Offset int    // Byte offset from the start of the line.
	Inline bool   // Defined between arguments.
}

// Expression is a Literal or a LabelReference.
type Expression interface {
	expression()
}

// Literal is a resolved byte.
type Literal uint8

func (Literal) expression() {}

// LabelReference is resolved once all labels are known.
type LabelReference struct {
	Label   string
	Negated bool
	Offset  int
	Context Context // Line of the reference.
}

func (LabelReference) expression() {}

func (ref LabelReference) String() (text string) {
	if ref.Negated {
		text = "-"
	}
	text += "@" + ref.Label
	if ref.Offset != 0 {
		text += fmt.Sprintf("%+d", ref.Offset)
	}
	return
}

// ParsedLine is the structure of one source line.
type ParsedLine struct {
	Labels      []LabelDefinition
	Command     Command
	Expressions []Expression
	Breakpoint  bool
}

// ParseLine tokenizes and parses a single source line.
func ParseLine(line string, lineNo int) (parsed *ParsedLine, err error) {
	tokens, err := TokenizeLine(line, lineNo)
	if err != nil {
		return
	}

	return ParseTokens(tokens, Context{LineNo: lineNo, Line: line})
}

type lineCursor struct {
	tokens []Token
	index  int
}

func (lc *lineCursor) done() bool {
	return lc.index >= len(lc.tokens)
}

func (lc *lineCursor) is(kind TokenKind) bool {
	return !lc.done() && lc.tokens[lc.index].Kind == kind
}

func (lc *lineCursor) next() (token Token) {
	token = lc.tokens[lc.index]
	lc.index++
	return
}

func (lc *lineCursor) accept(kind TokenKind) (ok bool) {
	ok = lc.is(kind)
	if ok {
		lc.index++
	}
	return
}

func (lc *lineCursor) skipWhitespace() (skipped bool) {
	for lc.accept(TOKEN_WHITESPACE) {
		skipped = true
	}
	return
}

// ParseTokens parses the tokens of a single source line.
func ParseTokens(tokens []Token, ctx Context) (parsed *ParsedLine, err error) {
	lc := &lineCursor{tokens: tokens}
	line := &ParsedLine{}

	lc.skipWhitespace()
	if lc.accept(TOKEN_BANG) {
		line.Breakpoint = true
		lc.skipWhitespace()
	}

	for lc.is(TOKEN_LABEL) {
		line.Labels = append(line.Labels, LabelDefinition{Label: lc.next().Name})
		lc.skipWhitespace()
	}

	if lc.done() {
		if line.Breakpoint {
			err = &ErrInvalidBreakpoint{Context: ctx}
			return
		}
		parsed = line
		return
	}

	token := lc.next()
	if token.Kind == TOKEN_BANG {
		err = &ErrInvalidBreakpoint{Context: ctx}
		return
	}
	command, ok := commandMap[token.Raw]
	if token.Kind != TOKEN_COMMAND || !ok {
		err = &ErrInvalidCommand{Context: ctx, Text: token.Raw}
		return
	}
	if line.Breakpoint && command != COMMAND_SUBLEQ {
		err = &ErrInvalidBreakpoint{Context: ctx}
		return
	}
	line.Command = command

	if !lc.done() && !lc.skipWhitespace() {
		err = &ErrMissingWhitespace{Context: ctx, Text: token.Raw}
		return
	}

	offset := 0
	count := 0
	for !lc.done() {
		comma := false
		if count > 0 {
			separated := lc.skipWhitespace()
			if lc.accept(TOKEN_COMMA) {
				comma = true
				lc.skipWhitespace()
			}
			if lc.done() {
				if comma {
					err = line.badExpression(ctx, ",")
					return
				}
				break
			}
			if !separated && !comma {
				err = &ErrMissingCommaOrWhitespace{Context: ctx, Text: lc.tokens[lc.index].Raw}
				return
			}
		}

		for lc.is(TOKEN_LABEL) {
			line.Labels = append(line.Labels, LabelDefinition{
				Label:  lc.next().Name,
				Offset: offset,
				Inline: true,
			})
			lc.skipWhitespace()
		}
		if lc.done() {
			break
		}

		var exprs []Expression
		exprs, err = line.parseArgument(lc.next(), ctx)
		if err != nil {
			return
		}
		line.Expressions = append(line.Expressions, exprs...)
		offset += len(exprs)
		count++
	}

	switch line.Command {
	case COMMAND_SUBLEQ:
		if count < SUBLEQ_BYTES-1 || count > SUBLEQ_BYTES {
			err = &ErrInvalidSubleqArgumentCount{
				Context: ctx,
				Count:   count,
				Min:     SUBLEQ_BYTES - 1,
				Max:     SUBLEQ_BYTES,
			}
			return
		}
	case COMMAND_DATA:
		if count < 1 {
			err = &ErrInvalidDataArgumentCount{Context: ctx, Count: count}
			return
		}
	}

	parsed = line
	return
}

func (line *ParsedLine) badExpression(ctx Context, text string) error {
	if line.Command == COMMAND_SUBLEQ {
		return &ErrInvalidAddressExpression{Context: ctx, Text: text}
	}
	return &ErrInvalidValueExpression{Context: ctx, Text: text}
}

// parseArgument converts one argument token into expressions.
func (line *ParsedLine) parseArgument(token Token, ctx Context) (exprs []Expression, err error) {
	switch token.Kind {
	case TOKEN_REFERENCE:
		exprs = []Expression{LabelReference{
			Label:   token.Name,
			Negated: token.Negated,
			Offset:  token.Offset,
			Context: ctx,
		}}
		return
	case TOKEN_BANG:
		err = &ErrInvalidBreakpoint{Context: ctx}
		return
	case TOKEN_COMMA, TOKEN_COMMAND:
		err = line.badExpression(ctx, token.Raw)
		return
	case TOKEN_NUMBER, TOKEN_CHARACTER, TOKEN_STRING:
	default:
		err = &ErrInternalCompiler{Context: ctx, Detail: fmt.Sprintf("unexpected %v token %q", token.Kind, token.Raw)}
		return
	}

	if line.Command == COMMAND_SUBLEQ {
		if token.Kind != TOKEN_NUMBER {
			err = &ErrInvalidAddressExpression{Context: ctx, Text: token.Raw}
			return
		}
		value, atoiErr := strconv.Atoi(token.Raw)
		if atoiErr != nil || value < ADDRESS_MIN || value > ADDRESS_MAX {
			err = &ErrAddressLiteralRange{Context: ctx, Text: token.Raw, Min: ADDRESS_MIN, Max: ADDRESS_MAX}
			return
		}
		exprs = []Expression{Literal(value)}
		return
	}

	values, err := TokenValues(token, ctx)
	if err != nil {
		return
	}
	for _, value := range values {
		exprs = append(exprs, Literal(value))
	}

	return
}
