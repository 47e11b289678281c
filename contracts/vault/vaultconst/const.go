// Package vaultconst contains constants shared by the Vault contract and its
// off-chain clients.
package vaultconst

// Exception messages the Vault contract faults with. Every fault rolls back
// the whole transaction, so a failed call never moves any asset.
const (
	// ErrUnauthorized is thrown when an owner-only method is invoked without
	// the owner witness.
	ErrUnauthorized = "unauthorized"
	// ErrInsufficientBalance is thrown when the vault holds less than the
	// requested amount on the relevant ledger.
	ErrInsufficientBalance = "insufficient balance"
	// ErrAllowanceInsufficient is thrown when the token pull exceeds the
	// allowance granted to the vault.
	ErrAllowanceInsufficient = "allowance insufficient"
	// ErrTransferRejected is thrown when GAS ledger refuses to move the funds.
	ErrTransferRejected = "transfer rejected"
	// ErrLedgerRejected is thrown when a token ledger refuses the transfer for
	// its own reasons (e.g. a frozen account).
	ErrLedgerRejected = "ledger rejected"
)
