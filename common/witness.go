package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	// ErrOwnerWitnessFailed is thrown when the owner of some assets
	// hasn't signed the transaction.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrWitnessFailed is thrown when an account acting in the method
	// hasn't signed the transaction.
	ErrWitnessFailed = "witness check failed"
)

// CheckOwnerWitness panics with ErrOwnerWitnessFailed if owner is not a valid
// script hash or hasn't witnessed the invocation.
func CheckOwnerWitness(owner interop.Hash160) {
	requireWitness(owner, ErrOwnerWitnessFailed)
}

// CheckWitness is like CheckOwnerWitness but panics with ErrWitnessFailed.
func CheckWitness(acc interop.Hash160) {
	requireWitness(acc, ErrWitnessFailed)
}

func requireWitness(acc interop.Hash160, msg string) {
	CheckHash(acc, "account")

	if !runtime.CheckWitness(acc) {
		panic(msg)
	}
}
