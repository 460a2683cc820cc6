package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/meritledger/merit-contract/common"
	"github.com/meritledger/merit-contract/governance"
	"github.com/stretchr/testify/require"
)

const votingPeriod = 20

func newGovernanceInvoker(t *testing.T) *neotest.ContractInvoker {
	return deployGovernanceContract(t, newExecutor(t))
}

func submitProposal(t *testing.T, c *neotest.ContractInvoker, proposer neotest.Signer, payload []byte) int64 {
	description := []byte("proposal " + uuid.NewString())
	c.WithSigners(proposer).Invoke(t, int64(1), "submit",
		proposer.ScriptHash(), description, int64(votingPeriod), payload)
	return 1
}

func proposalState(t *testing.T, c *neotest.ContractInvoker, id int64) int64 {
	s, err := c.TestInvoke(t, "getProposal", id)
	require.NoError(t, err)

	items, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, items, 8)

	state, err := items[4].TryInteger()
	require.NoError(t, err)
	return state.Int64()
}

func skipBlocks(t *testing.T, c *neotest.ContractInvoker, n int) {
	for i := 0; i < n; i++ {
		c.AddNewBlock(t)
	}
}

func TestGovernance_Submit(t *testing.T) {
	c := newGovernanceInvoker(t)
	proposer := c.NewAccount(t)

	t.Run("missing witness", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"submit", proposer.ScriptHash(), []byte("x"), int64(votingPeriod), nil)
	})

	t.Run("bad arguments", func(t *testing.T) {
		cP := c.WithSigners(proposer)
		cP.InvokeFail(t, common.ErrValidationFailed,
			"submit", proposer.ScriptHash(), []byte{}, int64(votingPeriod), nil)
		cP.InvokeFail(t, common.ErrValidationFailed,
			"submit", proposer.ScriptHash(), []byte("x"), int64(0), nil)
	})

	id := submitProposal(t, c, proposer, []byte("payload"))
	require.EqualValues(t, 1, proposalState(t, c, id)) // Active
	c.Invoke(t, int64(1), "proposalCount")

	t.Run("unknown proposal", func(t *testing.T) {
		c.InvokeFail(t, governance.ProposalNotFoundError, "getProposal", int64(42))
	})
}

func TestGovernance_Vote(t *testing.T) {
	c := newGovernanceInvoker(t)
	proposer := c.NewAccount(t)
	id := submitProposal(t, c, proposer, nil)

	voter := c.NewAccount(t)
	cVoter := c.WithSigners(voter)

	t.Run("missing witness", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"vote", voter.ScriptHash(), id, true)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		cVoter.InvokeFail(t, governance.ProposalNotFoundError,
			"vote", voter.ScriptHash(), int64(42), true)
	})

	c.Invoke(t, false, "hasVoted", id, voter.ScriptHash())
	cVoter.Invoke(t, stackitem.Null{}, "vote", voter.ScriptHash(), id, true)
	c.Invoke(t, true, "hasVoted", id, voter.ScriptHash())

	t.Run("double voting", func(t *testing.T) {
		cVoter.InvokeFail(t, common.ErrInvalidState,
			"vote", voter.ScriptHash(), id, false)
	})

	t.Run("window closed", func(t *testing.T) {
		skipBlocks(t, c, votingPeriod)

		late := c.NewAccount(t)
		c.WithSigners(late).InvokeFail(t, common.ErrInvalidState,
			"vote", late.ScriptHash(), id, true)
	})
}

func TestGovernance_FinalizeAndExecute(t *testing.T) {
	c := newGovernanceInvoker(t)
	proposer := c.NewAccount(t)
	id := submitProposal(t, c, proposer, []byte("raise collateral"))

	for _, inFavor := range []bool{true, true, false} {
		voter := c.NewAccount(t)
		c.WithSigners(voter).Invoke(t, stackitem.Null{}, "vote",
			voter.ScriptHash(), id, inFavor)
	}

	t.Run("voting still open", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidState, "finalize", id)
	})

	t.Run("execute before finalization", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidState, "execute", id)
	})

	skipBlocks(t, c, votingPeriod)

	c.Invoke(t, stackitem.Null{}, "finalize", id)
	require.EqualValues(t, 2, proposalState(t, c, id)) // Passed

	t.Run("repeated finalization", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidState, "finalize", id)
	})

	t.Run("not an administrator", func(t *testing.T) {
		acc := c.NewAccount(t)
		c.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"execute", id)
	})

	h := c.Invoke(t, stackitem.Null{}, "execute", id)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Execute", aer.Events[0].Name)
	require.EqualValues(t, 4, proposalState(t, c, id)) // Executed

	t.Run("executes exactly once", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidState, "execute", id)
	})
}

func TestGovernance_Rejection(t *testing.T) {
	c := newGovernanceInvoker(t)
	proposer := c.NewAccount(t)
	id := submitProposal(t, c, proposer, nil)

	// a tie is not enough to pass
	for _, inFavor := range []bool{true, false} {
		voter := c.NewAccount(t)
		c.WithSigners(voter).Invoke(t, stackitem.Null{}, "vote",
			voter.ScriptHash(), id, inFavor)
	}

	skipBlocks(t, c, votingPeriod)

	c.Invoke(t, stackitem.Null{}, "finalize", id)
	require.EqualValues(t, 3, proposalState(t, c, id)) // Failed

	c.InvokeFail(t, common.ErrInvalidState, "execute", id)
}
