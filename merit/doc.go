/*
Package merit implements Merit contract, the core of the Merit reputation
ledger.

The contract keeps a reputation account per registered participant, an
evaluator credential sheet and a per-epoch evaluation ledger. Registration
requires collateral: the configured requirement is charged from the owner's
balance in the Collateral contract and held in protocol custody for the
lifetime of the account. Credentialed evaluators submit scored evaluations
for participants that are not suspended;
each submission blends into the participant's running score with a weight
that shrinks as the evaluation count grows and scales with the evaluator's
accuracy. Scores of inactive participants decay with elapsed epochs; decay
is computed from stored state and the current epoch at every read, stored
values are never aged by a background process.

Every state-changing method is a single transaction: any failed guard makes
the call FAULT, so either all of its writes are applied or none is.

The epoch number is advanced by the administrator (normally every
EpochLength blocks); the contract only validates monotonicity.

# Contract notifications

Register notification. Produced when a new participant account is created.

	Register:
	  - name: owner
	    type: Hash160
	  - name: collateral
	    type: Integer

Evaluation notification. Produced when an evaluation is accepted.

	Evaluation:
	  - name: participant
	    type: Hash160
	  - name: evaluator
	    type: Hash160
	  - name: score
	    type: Integer

SetParams notification. Produced when the administrator replaces the
protocol parameter set.

	SetParams:
	  - name: minReputation
	    type: Integer
	  - name: maxReputation
	    type: Integer
	  - name: collateralRequirement
	    type: Integer

NewEpoch notification. Produced when the epoch number is advanced.

	NewEpoch:
	  - name: epoch
	    type: Integer
*/
package merit

/*
Contract storage model.

Current conventions:
 <epoch>: little-endian unsigned integer Merit epoch
 <addr>: 20-byte script hash of an account

# Summary
Key-value storage format:
 - 'a<addr>' -> std.Serialize(Participant)
   reputation accounts of registered participants
 - 'c<addr>' -> std.Serialize(EvaluatorCredential)
   evaluator credential sheet
 - 'r<epoch><addr>' -> std.Serialize(EvaluationRecord)
   evaluation ledger, one record per participant per epoch, last write wins
 - 'param' + name -> int
   protocol parameters (MinReputation, MaxReputation,
   CollateralRequirement, EpochLength, DecayInterval, DecayRate)
 - 'statParticipants' -> int
   number of registered participants
 - 'statCollateral' -> int
   total collateral held in protocol custody
 - 'statEvaluations' -> int
   number of accepted evaluations
 - 'epoch' -> int
   current Merit epoch
 - 'admin' -> interop.Hash160
   administrator script hash
 - 'collateralScriptHash' -> interop.Hash160
   Collateral contract reference

# Scores
The stored participant score is the value as of LastActiveEpoch. Temporal
decay down to MinReputation is derived at read time, so reads are pure and
two reads within one epoch always agree.
*/
