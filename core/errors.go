package core

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrValueOverflow  = errors.New("value overflows 256 bits")
	ErrMissingSigner  = errors.New("no signer provided")
)
