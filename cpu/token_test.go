package cpu

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeLine(t *testing.T) {
	assert := assert.New(t)

	tokens, err := TokenizeLine(`@loop: subleq @one, -@two+3 ; comment`, 1)
	assert.NoError(err)

	kinds := make([]TokenKind, len(tokens))
	for n, token := range tokens {
		kinds[n] = token.Kind
	}
	assert.Equal([]TokenKind{
		TOKEN_LABEL, TOKEN_WHITESPACE,
		TOKEN_COMMAND, TOKEN_WHITESPACE,
		TOKEN_REFERENCE, TOKEN_COMMA, TOKEN_WHITESPACE,
		TOKEN_REFERENCE, TOKEN_WHITESPACE,
	}, kinds)

	assert.Equal("loop", tokens[0].Name)
	assert.Equal("subleq", tokens[2].Raw)
	assert.Equal(Token{Kind: TOKEN_REFERENCE, Raw: "@one", Name: "one"}, tokens[4])
	assert.Equal(Token{Kind: TOKEN_REFERENCE, Raw: "-@two+3", Name: "two", Offset: 3, Negated: true}, tokens[7])
}

func TestTokenizeLineKinds(t *testing.T) {
	table := [](struct {
		line  string
		token Token
	}){
		{"@0:", Token{Kind: TOKEN_LABEL, Raw: "@0:", Name: "0"}},
		{"@_x1", Token{Kind: TOKEN_REFERENCE, Raw: "@_x1", Name: "_x1"}},
		{"@x-4", Token{Kind: TOKEN_REFERENCE, Raw: "@x-4", Name: "x", Offset: -4}},
		{"@x+99999999999999999999", Token{Kind: TOKEN_REFERENCE, Raw: "@x+99999999999999999999", Name: "x", Offset: math.MaxInt16}},
		{"@x-99999999999999999999", Token{Kind: TOKEN_REFERENCE, Raw: "@x-99999999999999999999", Name: "x", Offset: math.MinInt16}},
		{"-12", Token{Kind: TOKEN_NUMBER, Raw: "-12"}},
		{"'H'", Token{Kind: TOKEN_CHARACTER, Raw: "'H'", Body: "H"}},
		{`-'\n'`, Token{Kind: TOKEN_CHARACTER, Raw: `-'\n'`, Body: `\n`, Negated: true}},
		{`"a\"b"`, Token{Kind: TOKEN_STRING, Raw: `"a\"b"`, Body: `a\"b`}},
		{`""`, Token{Kind: TOKEN_STRING, Raw: `""`}},
		{".data", Token{Kind: TOKEN_COMMAND, Raw: ".data"}},
		{"!", Token{Kind: TOKEN_BANG, Raw: "!"}},
		{",", Token{Kind: TOKEN_COMMA, Raw: ","}},
		{" \t", Token{Kind: TOKEN_WHITESPACE, Raw: " \t"}},
	}

	for _, entry := range table {
		t.Run(entry.line, func(t *testing.T) {
			assert := assert.New(t)
			tokens, err := TokenizeLine(entry.line, 1)
			assert.NoError(err)
			assert.Equal([]Token{entry.token}, tokens)
		})
	}
}

func TestTokenizeLineComment(t *testing.T) {
	assert := assert.New(t)

	tokens, err := TokenizeLine("; just a comment, with 'quotes' and \"strings", 1)
	assert.NoError(err)
	assert.Empty(tokens)
}

func TestTokenizeLineInvalid(t *testing.T) {
	table := []string{
		`'\'`,
		`''`,
		`'''`,
		`"\"`,
		`"""`,
		`#`,
		`@-1 .data -1`,
		`'ab'`,
	}

	for _, line := range table {
		t.Run(line, func(t *testing.T) {
			assert := assert.New(t)
			_, err := TokenizeLine(line, 7)
			var invalid *ErrInvalidToken
			assert.True(errors.As(err, &invalid), "%v", err)
			if invalid != nil {
				assert.Equal(Context{LineNo: 7, Line: line}, invalid.Location())
				assert.Equal(ERROR_INVALID_TOKEN, invalid.Kind())
			}
		})
	}
}

func TestTokenValues(t *testing.T) {
	ctx := Context{LineNo: 1, Line: "test"}

	table := [](struct {
		line   string
		values []uint8
		kind   ErrorKind
		failed bool
	}){
		{line: "0", values: []uint8{0}},
		{line: "127", values: []uint8{127}},
		{line: "-128", values: []uint8{0x80}},
		{line: "128", kind: ERROR_VALUE_RANGE, failed: true},
		{line: "-129", kind: ERROR_VALUE_RANGE, failed: true},
		{line: "'H'", values: []uint8{72}},
		{line: "-'H'", values: []uint8{0xb8}},
		{line: `'\0'`, values: []uint8{0}},
		{line: `'\n'`, values: []uint8{10}},
		{line: `'\\'`, values: []uint8{'\\'}},
		{line: `'\''`, values: []uint8{'\''}},
		{line: `'\"'`, values: []uint8{'"'}},
		{line: `'"'`, values: []uint8{'"'}},
		{line: `'\t'`, kind: ERROR_INVALID_ESCAPE_CODE, failed: true},
		{line: `'é'`, values: []uint8{0xe9}},
		{line: `'€'`, kind: ERROR_VALUE_RANGE, failed: true},
		{line: `"abc"`, values: []uint8{'a', 'b', 'c', 0}},
		{line: `-"abc"`, values: []uint8{0x9f, 0x9e, 0x9d, 0}},
		{line: `""`, values: []uint8{0}},
		{line: `"'"`, values: []uint8{'\'', 0}},
		{line: `"a\nb"`, values: []uint8{'a', '\n', 'b', 0}},
		{line: `"\q"`, kind: ERROR_INVALID_ESCAPE_CODE, failed: true},
		{line: "@x", kind: ERROR_INVALID_VALUE_EXPRESSION, failed: true},
	}

	for _, entry := range table {
		t.Run(entry.line, func(t *testing.T) {
			assert := assert.New(t)

			tokens, err := TokenizeLine(entry.line, 1)
			assert.NoError(err)
			assert.Equal(1, len(tokens))
			if len(tokens) != 1 {
				return
			}

			values, err := TokenValues(tokens[0], ctx)
			if entry.failed {
				var ce CompilationError
				assert.True(errors.As(err, &ce), "%v", err)
				if ce != nil {
					assert.Equal(entry.kind, ce.Kind())
					assert.Equal(ctx, ce.Location())
				}
				return
			}
			assert.NoError(err)
			assert.Equal(entry.values, values)
		})
	}
}

func TestSignedConversion(t *testing.T) {
	assert := assert.New(t)

	for value := range MEMORY_SIZE {
		assert.Equal(uint8(value), SignedToUnsigned(UnsignedToSigned(uint8(value))))
	}
	assert.Equal(int8(-1), UnsignedToSigned(0xff))
	assert.Equal(int8(-128), UnsignedToSigned(0x80))
	assert.Equal(uint8(0xfb), SignedToUnsigned(-5))
}
