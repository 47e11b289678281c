/*
Package vault implements Vault contract: a custodial account holding GAS and
NEP-17 tokens on behalf of a single owner.

The owner is the sender of the deployment transaction. It is stored once and
never changes, there is no update method.

Anyone can deposit: GAS or any NEP-17 token transferred to the contract
address is accepted by onNEP17Payment, and receiveNEP17 pulls tokens the
caller has approved for the vault in an allowance-capable token contract.
Only the owner can move assets out with sendGas and sendNEP17.

Vault keeps no balance records of its own, every check reads the ledger
right before the transfer. Any failed check or refused transfer faults the
transaction, so no partial transfer is ever persisted. Fault messages are
listed in the vaultconst package.

# Contract notifications

Vault contract does not produce notifications. Ledgers emit their own
Transfer notifications.
*/
package vault

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'o' -> interop.Hash160
    vault owner, written once on deployment
*/
