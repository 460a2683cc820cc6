package governance

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/meritledger/merit-contract/common"
	"github.com/meritledger/merit-contract/governance/proposalstate"
)

// Proposal is the stored state of a governance proposal.
type Proposal struct {
	// Submitting account.
	Proposer interop.Hash160

	// Human-readable subject, at most maxDescriptionSize bytes.
	Description []byte

	// First block of the voting window.
	StartBlock int

	// First block past the voting window.
	EndBlock int

	// Current proposal state.
	State proposalstate.Type

	// Vote tally.
	VotesFor     int
	VotesAgainst int

	// Optional execution payload; its interpretation belongs to the
	// administrator applying it, the contract only carries it.
	Payload []byte
}

const (
	counterKey = "id"

	maxDescriptionSize = 1024

	proposalKeyPrefix = 'p'
	voteKeyPrefix     = 'v'

	// ProposalNotFoundError is thrown when the referenced proposal does
	// not exist.
	ProposalNotFoundError = "not found: proposal does not exist"
)

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin interop.Hash160
	})

	if len(args.admin) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect administrator script hash")
	}

	storage.Put(ctx, common.AdminKey, args.admin)
	storage.Put(ctx, counterKey, 0)

	runtime.Log("governance contract initialized")
}

// Update method updates contract source code and manifest. It can be
// invoked only by the administrator.
func Update(script []byte, manifest []byte, data interface{}) {
	ctx := storage.GetReadOnlyContext()
	if !common.HasUpdateAccess(ctx) {
		panic("only administrator can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("governance contract updated")
}

// Submit stores a new proposal and opens its voting window at the current
// block. The call must be signed by the proposer. It returns the id of the
// created proposal.
//
// Produces Proposal notification.
func Submit(proposer interop.Hash160, description []byte, votingPeriod int, payload []byte) int {
	if len(proposer) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect proposer script hash")
	}
	if votingPeriod <= 0 {
		panic(common.ErrValidationFailed + ": non-positive voting period")
	}
	if len(description) == 0 || len(description) > maxDescriptionSize {
		panic(common.ErrValidationFailed + ": bad description size")
	}

	common.CheckOwnerWitness(proposer)

	ctx := storage.GetContext()

	id := storage.Get(ctx, counterKey).(int) + 1
	storage.Put(ctx, counterKey, id)

	start := ledger.CurrentIndex()
	p := Proposal{
		Proposer:     proposer,
		Description:  description,
		StartBlock:   start,
		EndBlock:     start + votingPeriod,
		State:        proposalstate.Active,
		VotesFor:     0,
		VotesAgainst: 0,
		Payload:      payload,
	}
	common.SetSerialized(ctx, proposalKey(id), p)

	runtime.Log("submitted new proposal")
	runtime.Notify("Proposal", id, proposer)

	return id
}

// Vote counts the voter's choice on an active proposal. The call must be
// signed by the voter, the proposal window must be open and each account
// votes at most once per proposal.
//
// Produces Vote notification.
func Vote(voter interop.Hash160, id int, inFavor bool) {
	if len(voter) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect voter script hash")
	}

	common.CheckOwnerWitness(voter)

	ctx := storage.GetContext()
	p := getProposal(ctx, id)

	if p.State != proposalstate.Active {
		panic(common.ErrInvalidState + ": proposal is not active")
	}

	height := ledger.CurrentIndex()
	if height < p.StartBlock || height >= p.EndBlock {
		panic(common.ErrInvalidState + ": voting window is closed")
	}

	if storage.Get(ctx, voteKey(id, voter)) != nil {
		panic(common.ErrInvalidState + ": already voted")
	}
	storage.Put(ctx, voteKey(id, voter), inFavor)

	if inFavor {
		p.VotesFor = p.VotesFor + 1
	} else {
		p.VotesAgainst = p.VotesAgainst + 1
	}
	common.SetSerialized(ctx, proposalKey(id), p)

	runtime.Log("counted vote")
	runtime.Notify("Vote", id, voter, inFavor)
}

// Finalize settles an active proposal once its voting window has elapsed:
// it becomes Passed when the votes in favor outnumber the votes against,
// Failed otherwise. Anyone can invoke Finalize.
//
// Produces Finalize notification.
func Finalize(id int) {
	ctx := storage.GetContext()
	p := getProposal(ctx, id)

	if p.State != proposalstate.Active {
		panic(common.ErrInvalidState + ": proposal is not active")
	}
	if ledger.CurrentIndex() < p.EndBlock {
		panic(common.ErrInvalidState + ": voting is still open")
	}

	if p.VotesFor > p.VotesAgainst {
		p.State = proposalstate.Passed
	} else {
		p.State = proposalstate.Failed
	}
	common.SetSerialized(ctx, proposalKey(id), p)

	runtime.Log("finalized proposal")
	runtime.Notify("Finalize", id, int(p.State))
}

// Execute marks a passed proposal as executed, exactly once, and hands its
// payload to the administrator through the Execute notification. Applying
// the payload (e.g. a protocol parameter change on the Merit contract) is
// the administrator's duty; the contract only tracks that it happened. It
// can be invoked only by the administrator.
//
// Produces Execute notification.
func Execute(id int) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	p := getProposal(ctx, id)
	if p.State != proposalstate.Passed {
		panic(common.ErrInvalidState + ": proposal has not passed")
	}

	p.State = proposalstate.Executed
	common.SetSerialized(ctx, proposalKey(id), p)

	runtime.Log("executed proposal")
	runtime.Notify("Execute", id, p.Payload)
}

// GetProposal returns the stored proposal by its id.
func GetProposal(id int) Proposal {
	return getProposal(storage.GetReadOnlyContext(), id)
}

// HasVoted reports whether the account has already voted on the proposal.
func HasVoted(id int, voter interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, voteKey(id, voter)) != nil
}

// ProposalCount returns the number of proposals ever submitted. Proposal
// ids are sequential starting from 1.
func ProposalCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, counterKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getProposal(ctx storage.Context, id int) Proposal {
	data := storage.Get(ctx, proposalKey(id))
	if data == nil {
		panic(ProposalNotFoundError)
	}

	return std.Deserialize(data.([]byte)).(Proposal)
}

func proposalKey(id int) []byte {
	return append([]byte{proposalKeyPrefix}, convert.ToBytes(id)...)
}

func voteKey(id int, voter interop.Hash160) []byte {
	key := append([]byte{voteKeyPrefix}, convert.ToBytes(id)...)
	return append(key, voter...)
}
