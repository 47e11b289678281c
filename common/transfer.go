package common

import "github.com/nspcc-dev/neo-go/pkg/interop"

// ErrInvalidArgument is thrown by argument checks of this package.
const ErrInvalidArgument = "invalid argument"

// CheckHash panics with ErrInvalidArgument if h is not a valid script hash,
// name is included into the message.
func CheckHash(h interop.Hash160, name string) {
	if len(h) != interop.Hash160Len {
		panic(ErrInvalidArgument + ": invalid " + name)
	}
}

// CheckAmount panics with ErrInvalidArgument if amount is negative.
func CheckAmount(amount int) {
	if amount < 0 {
		panic(ErrInvalidArgument + ": negative amount")
	}
}

// CheckTransferArgs panics with ErrInvalidArgument if to is not a valid
// script hash or amount is negative.
func CheckTransferArgs(to interop.Hash160, amount int) {
	CheckHash(to, "recipient")
	CheckAmount(amount)
}
