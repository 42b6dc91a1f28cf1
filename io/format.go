package io

import (
	"strconv"
	"strings"
)

// Format is the text rendering of program input and output.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_NUMBERS    = Format(0) // numbers
	FORMAT_CHARACTERS = Format(1) // characters
	FORMAT_STRINGS    = Format(2) // strings
)

var formatMap = map[string]Format{
	FORMAT_NUMBERS.String():    FORMAT_NUMBERS,
	FORMAT_CHARACTERS.String(): FORMAT_CHARACTERS,
	FORMAT_STRINGS.String():    FORMAT_STRINGS,
}

// ParseFormat returns the format by name.
func ParseFormat(name string) (format Format, err error) {
	format, ok := formatMap[name]
	if !ok {
		err = ErrFormatUnknown
	}

	return
}

// Parse converts text to values.
// Numbers are parsed with ParseValues. Characters are the bytes of the text.
// Strings are the bytes of the text, with newlines as zero terminators.
func (format Format) Parse(text string) (values []int8, err error) {
	switch format {
	case FORMAT_NUMBERS:
		return ParseValues(text)
	case FORMAT_CHARACTERS, FORMAT_STRINGS:
		for _, value := range []byte(text) {
			values = append(values, format.fromByte(value))
		}
	default:
		err = ErrFormatUnknown
	}

	return
}

func (format Format) fromByte(value byte) int8 {
	if format == FORMAT_STRINGS && value == '\n' {
		return 0
	}
	return int8(value)
}

// Render converts values to text.
// Numbers are space separated decimals.
func (format Format) Render(values []int8) string {
	var text strings.Builder

	for n, value := range values {
		if format == FORMAT_NUMBERS && n > 0 {
			text.WriteByte(' ')
		}
		text.WriteString(format.render(value))
	}

	return text.String()
}

func (format Format) render(value int8) string {
	switch format {
	case FORMAT_CHARACTERS:
		return string([]byte{byte(value)})
	case FORMAT_STRINGS:
		if value == 0 {
			return "\n"
		}
		return string([]byte{byte(value)})
	default:
		return strconv.Itoa(int(value))
	}
}
