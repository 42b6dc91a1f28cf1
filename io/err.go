package io

import (
	"errors"

	"github.com/ezrec/sic1/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrFormatUnknown  = errors.New(f("format unknown"))
)
