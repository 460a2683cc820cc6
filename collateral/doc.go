/*
Package collateral implements Collateral contract of the Merit reputation
ledger.

Collateral contract is the custody of participant stakes. It is a NEP-17
compatible token contract backed one-to-one by native GAS: depositing GAS
to the contract address mints an equal custody balance to the depositor.
The Merit contract charges the registration collateral out of this balance
into its own custody account; there is no withdrawal path, so the total
protocol custody only grows.

# Contract notifications

Deposit notification. Produced when GAS is deposited and a custody balance
is minted.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: receiver
	    type: Hash160

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with
details, produced on protocol charges.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package collateral

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'TotalGAS' -> int
   total amount of GAS deposited into the protocol
 - 'a<addr>' -> std.Serialize(Account)
   custody balance sheet (here Account is a structure defined in current
   package)
 - 'admin' -> interop.Hash160
   administrator script hash
 - 'meritScriptHash' -> interop.Hash160
   Merit contract reference, the only contract allowed to charge balances

# Accounting
Contract stores custody balances of all Merit accounts.
*/
