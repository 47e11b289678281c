package nep17reject

import "github.com/nspcc-dev/neo-go/pkg/interop"

// ErrRejected is the exception every payment to the contract faults with.
const ErrRejected = "payment rejected"

// OnNEP17Payment refuses any incoming NEP-17 payment.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	panic(ErrRejected)
}
