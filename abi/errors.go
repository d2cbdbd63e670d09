package abi

import "errors"

var (
	// ErrParse reports malformed type-expression syntax.
	ErrParse = errors.New("cannot parse type expression")

	// ErrTypeNotFound reports a type name missing from the catalogue.
	ErrTypeNotFound = errors.New("type not found")

	// ErrInvalidTypeExpression reports a structurally invalid expression,
	// e.g. a generic instantiated with the wrong number of parameters.
	ErrInvalidTypeExpression = errors.New("invalid type expression")

	// ErrCodec reports an encode/decode failure (buffer underrun, trailing
	// bytes, or a value the single-value codec cannot represent).
	ErrCodec = errors.New("codec error")

	// ErrSerializer reports an argument-sequencing failure, e.g. a variadic
	// value in a non-trailing position.
	ErrSerializer = errors.New("serializer error")

	// ErrInvalidArgument reports a native value that matches the declared
	// type structurally but violates its constraints (range, length).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCannotInferType reports a native value whose shape does not match
	// the declared parameter type.
	ErrCannotInferType = errors.New("cannot infer type of argument")

	// ErrInvalidArgumentCount reports an argument count that does not match
	// the endpoint arity.
	ErrInvalidArgumentCount = errors.New("invalid number of arguments")
)
