package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/meritledger/merit-contract/common"
	"github.com/meritledger/merit-contract/merit/meritconst"
	"github.com/stretchr/testify/require"
)

func testInvokeStruct(t *testing.T, c *neotest.ContractInvoker, method string, args ...interface{}) []stackitem.Item {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.NotEqual(t, 0, s.Len())

	items, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	return items
}

func requireProfile(t *testing.T, d *meritDeployment, acc neotest.Signer, score, evaluations, collateral, state int64) {
	items := testInvokeStruct(t, d.merit, "getProfile", acc.ScriptHash())
	require.Len(t, items, 4)

	got := make([]int64, 4)
	for i := range items {
		bi, err := items[i].TryInteger()
		require.NoError(t, err)
		got[i] = bi.Int64()
	}

	require.Equal(t, score, got[0])
	require.Equal(t, evaluations, got[1])
	require.Equal(t, collateral, got[2])
	require.Equal(t, state, got[3])
}

func requireMetrics(t *testing.T, d *meritDeployment, participants, collateral, evaluations, epoch int64) {
	items := testInvokeStruct(t, d.merit, "getMetrics")
	require.Len(t, items, 4)

	expected := []int64{participants, collateral, evaluations, epoch}
	for i := range items {
		bi, err := items[i].TryInteger()
		require.NoError(t, err)
		require.Equal(t, expected[i], bi.Int64(), "metric %d", i)
	}
}

func TestMerit_Register(t *testing.T) {
	d := newMeritDeployment(t)

	acc := d.merit.NewAccount(t)
	cAcc := d.merit.WithSigners(acc)

	t.Run("missing witness", func(t *testing.T) {
		other := d.merit.NewAccount(t)
		d.merit.WithSigners(other).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"register", acc.ScriptHash(), int64(collateralRequirement))
	})

	t.Run("no custody balance", func(t *testing.T) {
		cAcc.InvokeFail(t, common.ErrInsufficientCollateral,
			"register", acc.ScriptHash(), int64(collateralRequirement))
	})

	t.Run("one below the requirement", func(t *testing.T) {
		d.deposit(t, acc.ScriptHash(), collateralRequirement-1)
		cAcc.InvokeFail(t, common.ErrInsufficientCollateral,
			"register", acc.ScriptHash(), int64(collateralRequirement-1))
	})

	// exactly the requirement succeeds, score starts at the maximum
	d.deposit(t, acc.ScriptHash(), 1)
	cAcc.Invoke(t, stackitem.Null{}, "register",
		acc.ScriptHash(), int64(collateralRequirement))

	requireProfile(t, d, acc, maxReputation, 0, collateralRequirement, 1)
	requireMetrics(t, d, 1, collateralRequirement, 0, 0)

	// the collateral moved into the Merit contract's custody account
	d.collateral.Invoke(t, int64(0), "balanceOf", acc.ScriptHash())
	d.collateral.Invoke(t, int64(collateralRequirement), "balanceOf", d.meritHash)

	t.Run("duplicate registration", func(t *testing.T) {
		d.deposit(t, acc.ScriptHash(), collateralRequirement)
		cAcc.InvokeFail(t, common.ErrAlreadyExists,
			"register", acc.ScriptHash(), int64(collateralRequirement))

		// first registration is unaffected
		requireProfile(t, d, acc, maxReputation, 0, collateralRequirement, 1)
		requireMetrics(t, d, 1, collateralRequirement, 0, 0)
	})

	t.Run("zero collateral requirement", func(t *testing.T) {
		d.merit.Invoke(t, stackitem.Null{}, "setProtocolParams",
			int64(minReputation), int64(maxReputation), int64(0),
			int64(epochLength), int64(decayInterval), int64(decayRate))

		// meeting the requirement exactly succeeds even with an empty
		// custody balance, nothing gets charged
		free := d.merit.NewAccount(t)
		d.merit.WithSigners(free).Invoke(t, stackitem.Null{}, "register",
			free.ScriptHash(), int64(0))

		requireProfile(t, d, free, maxReputation, 0, 0, 1)
		requireMetrics(t, d, 2, collateralRequirement, 0, 0)
		d.collateral.Invoke(t, int64(collateralRequirement), "balanceOf", d.meritHash)
	})
}

func TestMerit_SubmitEvaluation(t *testing.T) {
	d := newMeritDeployment(t)

	p := d.newParticipant(t, collateralRequirement)
	ev := d.newEvaluator(t, 100)
	cEv := d.merit.WithSigners(ev)

	t.Run("no credential", func(t *testing.T) {
		stranger := d.merit.NewAccount(t)
		d.merit.WithSigners(stranger).InvokeFail(t, common.ErrAccessDenied,
			"submitEvaluation", stranger.ScriptHash(), p.ScriptHash(), int64(60), nil)
		requireMetrics(t, d, 1, collateralRequirement, 0, 0)
	})

	t.Run("revoked credential", func(t *testing.T) {
		revoked := d.merit.NewAccount(t)
		d.merit.Invoke(t, stackitem.Null{}, "setEvaluator", revoked.ScriptHash(), false, int64(100))
		d.merit.WithSigners(revoked).InvokeFail(t, common.ErrAccessDenied,
			"submitEvaluation", revoked.ScriptHash(), p.ScriptHash(), int64(60), nil)
	})

	t.Run("unknown participant", func(t *testing.T) {
		stranger := d.merit.NewAccount(t)
		cEv.InvokeFail(t, meritconst.ParticipantNotFoundError,
			"submitEvaluation", ev.ScriptHash(), stranger.ScriptHash(), int64(60), nil)
	})

	t.Run("score out of bounds", func(t *testing.T) {
		cEv.InvokeFail(t, common.ErrValidationFailed,
			"submitEvaluation", ev.ScriptHash(), p.ScriptHash(), int64(maxReputation+1), nil)
		requireProfile(t, d, p, maxReputation, 0, collateralRequirement, 1)
		requireMetrics(t, d, 1, collateralRequirement, 0, 0)
	})

	t.Run("oversized metadata", func(t *testing.T) {
		cEv.InvokeFail(t, common.ErrValidationFailed,
			"submitEvaluation", ev.ScriptHash(), p.ScriptHash(), int64(60),
			randomBytes(meritconst.MaxMetadataSize+1))
	})

	// first evaluation: the raw score fully replaces the fresh maximum
	meta := []byte(uuid.NewString())
	cEv.Invoke(t, int64(60), "submitEvaluation",
		ev.ScriptHash(), p.ScriptHash(), int64(60), meta)

	requireProfile(t, d, p, 60, 1, collateralRequirement, 1)
	requireMetrics(t, d, 1, collateralRequirement, 1, 0)

	record := testInvokeStruct(t, d.merit, "evaluation", p.ScriptHash(), int64(0))
	require.Len(t, record, 5)
	base, err := record[0].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 60, base.Int64())
	weighted, err := record[1].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 60, weighted.Int64())
	evaluator, err := record[2].TryBytes()
	require.NoError(t, err)
	require.Equal(t, ev.ScriptHash().BytesBE(), evaluator)
	gotMeta, err := record[4].TryBytes()
	require.NoError(t, err)
	require.Equal(t, meta, gotMeta)

	t.Run("same epoch overwrites the record", func(t *testing.T) {
		// base 60*1/2=30 plus increment 80*100/(100*2)=40
		cEv.Invoke(t, int64(70), "submitEvaluation",
			ev.ScriptHash(), p.ScriptHash(), int64(80), nil)

		record := testInvokeStruct(t, d.merit, "evaluation", p.ScriptHash(), int64(0))
		base, err := record[0].TryInteger()
		require.NoError(t, err)
		require.EqualValues(t, 80, base.Int64())

		// the counter still grows on every accepted submission
		requireProfile(t, d, p, 70, 2, collateralRequirement, 1)
		requireMetrics(t, d, 1, collateralRequirement, 2, 0)
	})

	t.Run("no record for another epoch", func(t *testing.T) {
		d.merit.InvokeFail(t, meritconst.EvaluationNotFoundError,
			"evaluation", p.ScriptHash(), int64(7))
	})

	t.Run("credential tracks submissions", func(t *testing.T) {
		cred := testInvokeStruct(t, d.merit, "evaluator", ev.ScriptHash())
		require.Len(t, cred, 4)
		count, err := cred[1].TryInteger()
		require.NoError(t, err)
		require.EqualValues(t, 2, count.Int64())
	})
}

func TestMerit_HalfAccuracyEvaluator(t *testing.T) {
	d := newMeritDeployment(t)

	p := d.newParticipant(t, collateralRequirement)
	ev := d.newEvaluator(t, 50)

	// base 100*0/1=0 plus increment 60*50/(100*1)=30
	d.merit.WithSigners(ev).Invoke(t, int64(30), "submitEvaluation",
		ev.ScriptHash(), p.ScriptHash(), int64(60), nil)
}

func TestMerit_Decay(t *testing.T) {
	d := newMeritDeployment(t)

	p := d.newParticipant(t, collateralRequirement)
	ev := d.newEvaluator(t, 100)
	cEv := d.merit.WithSigners(ev)

	cEv.Invoke(t, int64(60), "submitEvaluation",
		ev.ScriptHash(), p.ScriptHash(), int64(60), nil)

	// less than a full decay interval elapsed, the score holds
	d.merit.Invoke(t, stackitem.Null{}, "newEpoch", int64(decayInterval-1))
	requireProfile(t, d, p, 60, 1, collateralRequirement, 1)

	// one full interval: one decay tick, and reads stay idempotent
	d.merit.Invoke(t, stackitem.Null{}, "newEpoch", int64(decayInterval+5))
	requireProfile(t, d, p, 60-decayRate, 1, collateralRequirement, 1)
	requireProfile(t, d, p, 60-decayRate, 1, collateralRequirement, 1)

	// the blend consumes the decayed value, the stored score is aged only
	// at read: base 55*1/2=27 plus increment 60*100/(100*2)=30
	cEv.Invoke(t, int64(57), "submitEvaluation",
		ev.ScriptHash(), p.ScriptHash(), int64(60), nil)
	requireProfile(t, d, p, 57, 2, collateralRequirement, 1)

	// decay never drives the score below the configured minimum
	d.merit.Invoke(t, stackitem.Null{}, "newEpoch", int64(1_000_000))
	requireProfile(t, d, p, minReputation, 2, collateralRequirement, 1)
}

func TestMerit_NewEpoch(t *testing.T) {
	d := newMeritDeployment(t)

	acc := d.merit.NewAccount(t)
	d.merit.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed,
		"newEpoch", int64(1))

	d.merit.InvokeFail(t, common.ErrInvalidState, "newEpoch", int64(0))

	d.merit.Invoke(t, stackitem.Null{}, "newEpoch", int64(3))
	d.merit.Invoke(t, int64(3), "epoch")

	d.merit.InvokeFail(t, common.ErrInvalidState, "newEpoch", int64(3))
}

func TestMerit_ProtocolParams(t *testing.T) {
	d := newMeritDeployment(t)

	params := testInvokeStruct(t, d.merit, "protocolParams")
	require.Len(t, params, 6)
	expected := []int64{minReputation, maxReputation, collateralRequirement,
		epochLength, decayInterval, decayRate}
	for i := range params {
		bi, err := params[i].TryInteger()
		require.NoError(t, err)
		require.Equal(t, expected[i], bi.Int64(), "parameter %d", i)
	}

	t.Run("not an administrator", func(t *testing.T) {
		acc := d.merit.NewAccount(t)
		d.merit.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"setProtocolParams", int64(0), int64(100), int64(1),
			int64(epochLength), int64(decayInterval), int64(decayRate))
	})

	t.Run("inconsistent bounds", func(t *testing.T) {
		d.merit.InvokeFail(t, common.ErrValidationFailed,
			"setProtocolParams", int64(50), int64(40), int64(1),
			int64(epochLength), int64(decayInterval), int64(decayRate))
	})

	t.Run("zero decay interval", func(t *testing.T) {
		d.merit.InvokeFail(t, common.ErrValidationFailed,
			"setProtocolParams", int64(0), int64(100), int64(1),
			int64(epochLength), int64(0), int64(decayRate))
	})

	t.Run("requirement change is not retroactive", func(t *testing.T) {
		p := d.newParticipant(t, collateralRequirement)

		d.merit.Invoke(t, stackitem.Null{}, "setProtocolParams",
			int64(minReputation), int64(maxReputation),
			int64(collateralRequirement*2), int64(epochLength),
			int64(decayInterval), int64(decayRate))

		// the existing participant keeps its account untouched
		requireProfile(t, d, p, maxReputation, 0, collateralRequirement, 1)

		// a newcomer with the old collateral amount is rejected
		acc := d.merit.NewAccount(t)
		d.deposit(t, acc.ScriptHash(), collateralRequirement)
		d.merit.WithSigners(acc).InvokeFail(t, common.ErrInsufficientCollateral,
			"register", acc.ScriptHash(), int64(collateralRequirement))
	})
}

func TestMerit_IsAdministrator(t *testing.T) {
	d := newMeritDeployment(t)

	acc := d.merit.NewAccount(t)
	d.merit.Invoke(t, true, "isAdministrator", d.e.CommitteeHash)
	d.merit.Invoke(t, false, "isAdministrator", acc.ScriptHash())
}

func TestMerit_SetParticipantState(t *testing.T) {
	d := newMeritDeployment(t)

	p := d.newParticipant(t, collateralRequirement)

	t.Run("not an administrator", func(t *testing.T) {
		acc := d.merit.NewAccount(t)
		d.merit.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"setParticipantState", p.ScriptHash(), int64(2))
	})

	t.Run("unknown participant", func(t *testing.T) {
		acc := d.merit.NewAccount(t)
		d.merit.InvokeFail(t, meritconst.ParticipantNotFoundError,
			"setParticipantState", acc.ScriptHash(), int64(2))
	})

	t.Run("unsupported state", func(t *testing.T) {
		d.merit.InvokeFail(t, common.ErrValidationFailed,
			"setParticipantState", p.ScriptHash(), int64(9))
	})

	d.merit.Invoke(t, stackitem.Null{}, "setParticipantState",
		p.ScriptHash(), int64(2)) // Suspended
	requireProfile(t, d, p, maxReputation, 0, collateralRequirement, 2)

	t.Run("suspension excludes from evaluation", func(t *testing.T) {
		ev := d.newEvaluator(t, 100)
		cEv := d.merit.WithSigners(ev)

		cEv.InvokeFail(t, common.ErrInvalidState,
			"submitEvaluation", ev.ScriptHash(), p.ScriptHash(), int64(60), nil)
		requireMetrics(t, d, 1, collateralRequirement, 0, 0)

		// participants on probation are still evaluated
		d.merit.Invoke(t, stackitem.Null{}, "setParticipantState",
			p.ScriptHash(), int64(3)) // Probation
		cEv.Invoke(t, int64(60), "submitEvaluation",
			ev.ScriptHash(), p.ScriptHash(), int64(60), nil)
		requireProfile(t, d, p, 60, 1, collateralRequirement, 3)
	})
}

func TestMerit_EvaluatorCredential(t *testing.T) {
	d := newMeritDeployment(t)

	p := d.newParticipant(t, collateralRequirement)
	ev := d.newEvaluator(t, 100)

	t.Run("accuracy out of range", func(t *testing.T) {
		d.merit.InvokeFail(t, common.ErrValidationFailed,
			"setEvaluator", ev.ScriptHash(), true, int64(101))
		d.merit.InvokeFail(t, common.ErrValidationFailed,
			"recalibrateEvaluator", ev.ScriptHash(), int64(-1))
	})

	t.Run("recalibrate unknown evaluator", func(t *testing.T) {
		acc := d.merit.NewAccount(t)
		d.merit.InvokeFail(t, common.ErrNotFound,
			"recalibrateEvaluator", acc.ScriptHash(), int64(50))
	})

	d.merit.WithSigners(ev).Invoke(t, int64(60), "submitEvaluation",
		ev.ScriptHash(), p.ScriptHash(), int64(60), nil)

	// reauthorization keeps the submission counter
	d.merit.Invoke(t, stackitem.Null{}, "setEvaluator",
		ev.ScriptHash(), true, int64(80))

	cred := testInvokeStruct(t, d.merit, "evaluator", ev.ScriptHash())
	require.Len(t, cred, 4)
	count, err := cred[1].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 1, count.Int64())
	accuracy, err := cred[2].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 80, accuracy.Int64())
}
