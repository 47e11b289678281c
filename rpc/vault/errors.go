package vault

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/vault-contract/common"
	"github.com/nspcc-dev/vault-contract/contracts/vault/vaultconst"
)

// Errors a faulted Vault invocation is classified into by FaultError.
var (
	ErrUnauthorized          = errors.New(vaultconst.ErrUnauthorized)
	ErrInsufficientBalance   = errors.New(vaultconst.ErrInsufficientBalance)
	ErrAllowanceInsufficient = errors.New(vaultconst.ErrAllowanceInsufficient)
	ErrTransferRejected      = errors.New(vaultconst.ErrTransferRejected)
	ErrLedgerRejected        = errors.New(vaultconst.ErrLedgerRejected)
	ErrInvalidArgument       = errors.New(common.ErrInvalidArgument)
	ErrWitness               = errors.New(common.ErrWitnessFailed)
)

var faultErrors = []error{
	ErrUnauthorized,
	ErrInsufficientBalance,
	ErrAllowanceInsufficient,
	ErrTransferRejected,
	ErrLedgerRejected,
	ErrInvalidArgument,
	ErrWitness,
}

// FaultError converts the exception of a faulted Vault invocation into an
// error matching one of the package errors with [errors.Is]. Exceptions
// thrown by other contracts are returned as is.
func FaultError(exception string) error {
	if e := matchFault(exception); e != nil {
		return fmt.Errorf("%w: %s", e, exception)
	}

	return errors.New(exception)
}

// WrapError is like FaultError, but keeps err in the chain. It's intended
// for errors returned by Contract methods, actor reports test invocation
// faults with the exception included into the error text. Nil is returned
// for nil err.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	if e := matchFault(err.Error()); e != nil {
		return fmt.Errorf("%w: %w", e, err)
	}

	return err
}

// matchFault looks for a quoted exception message that is either one of
// the Vault messages or starts with one followed by ": ".
func matchFault(text string) error {
	for _, e := range faultErrors {
		quoted := `"` + e.Error()
		if strings.Contains(text, quoted+`"`) || strings.Contains(text, quoted+": ") {
			return e
		}
	}

	return nil
}
