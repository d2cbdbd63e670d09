package check

import (
	"fmt"
)

// These functions are meant to simplify panicking in the code.
// Always consider returning errors instead of panicking!
//
// Generally, you need the simpler versions: PanicIfNot and PanicIfErr.
// If you use PanicIfNotf, the message should be informative and should have
// runtime-defined arguments. Panic dumps a stack trace, so messages without
// specific data do not add anything.

// PanicIfNot panics on false (use as simple assert).
func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}

// PanicIff panics on true with the given message.
func PanicIff(flag bool, format string, args ...any) {
	PanicIfNotf(!flag, format, args...)
}

// PanicIfNotf panics on false with the given message.
func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfErr calls panic(err) if err is not nil.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}
