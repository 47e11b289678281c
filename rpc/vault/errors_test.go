package vault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFaultError(t *testing.T) {
	for _, tc := range []struct {
		exception string
		expected  error
	}{
		{`at instruction 95 (THROW): unhandled exception: "unauthorized"`, ErrUnauthorized},
		{`unhandled exception: "insufficient balance"`, ErrInsufficientBalance},
		{`unhandled exception: "allowance insufficient"`, ErrAllowanceInsufficient},
		{`unhandled exception: "transfer rejected"`, ErrTransferRejected},
		{`unhandled exception: "ledger rejected"`, ErrLedgerRejected},
		{`unhandled exception: "invalid argument: negative amount"`, ErrInvalidArgument},
		{`unhandled exception: "witness check failed"`, ErrWitness},
	} {
		err := FaultError(tc.exception)
		require.ErrorIs(t, err, tc.expected, tc.exception)
		require.Contains(t, err.Error(), tc.exception)
	}

	for _, exc := range []string{
		`unhandled exception: "payment rejected"`,
		`unhandled exception: "caller is unauthorized"`,
		`unhandled exception: "owner witness check failed"`,
		`unauthorized`,
	} {
		err := FaultError(exc)
		for _, e := range faultErrors {
			require.NotErrorIs(t, err, e, exc)
		}
		require.EqualError(t, err, exc)
	}
}

func TestWrapError(t *testing.T) {
	require.NoError(t, WrapError(nil))

	plain := errors.New("connection refused")
	require.Equal(t, plain, WrapError(plain))

	fault := errors.New(`unhandled exception: "ledger rejected"`)
	err := WrapError(fault)
	require.ErrorIs(t, err, ErrLedgerRejected)
	require.ErrorIs(t, err, fault)

	other := errors.New(`unhandled exception: "token: unauthorized"`)
	require.Equal(t, other, WrapError(other))
}
