/*
Package governance implements Governance contract of the Merit reputation
ledger.

The contract stores parameter-change proposals and their vote tallies. A
proposal is open for voting from the block it is submitted at until the end
of its voting period; each account votes at most once per proposal, which
the contract enforces with an explicit per-proposal-per-voter record. After
the window elapses anyone can finalize the proposal: it passes when the
votes in favor outnumber the votes against. The administrator then applies
the payload of a passed proposal off-contract (normally a setProtocolParams
call on the Merit contract) and marks it executed, exactly once.

# Contract notifications

Proposal notification. Produced when a proposal is submitted.

	Proposal:
	  - name: id
	    type: Integer
	  - name: proposer
	    type: Hash160

Vote notification. Produced when a vote is counted.

	Vote:
	  - name: id
	    type: Integer
	  - name: voter
	    type: Hash160
	  - name: inFavor
	    type: Boolean

Finalize notification. Produced when a proposal is settled.

	Finalize:
	  - name: id
	    type: Integer
	  - name: state
	    type: Integer

Execute notification. Produced when a passed proposal is marked executed.

	Execute:
	  - name: id
	    type: Integer
	  - name: payload
	    type: ByteArray
*/
package governance

/*
Contract storage model.

Current conventions:
 <id>: little-endian unsigned integer proposal id
 <addr>: 20-byte script hash of an account

# Summary
Key-value storage format:
 - 'p<id>' -> std.Serialize(Proposal)
   stored proposals
 - 'v<id><addr>' -> bool
   per-proposal-per-voter choice, presence prevents double voting
 - 'id' -> int
   last assigned proposal id
 - 'admin' -> interop.Hash160
   administrator script hash

# Voting
Vote records are never removed: the tally of a settled proposal stays
auditable together with every individual choice.
*/
