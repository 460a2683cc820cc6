package tests

import (
	"math/rand"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	meritPath      = "../merit"
	collateralPath = "../collateral"
	governancePath = "../governance"
)

// default protocol parameters used by the test deployments.
const (
	minReputation         = 0
	maxReputation         = 100
	collateralRequirement = 1000
	epochLength           = 240
	decayInterval         = 10
	decayRate             = 5
)

type meritDeployment struct {
	e *neotest.Executor

	meritHash      util.Uint160
	collateralHash util.Uint160

	// all three invokers sign as the committee account, which the
	// deployments below store as the protocol administrator.
	merit      *neotest.ContractInvoker
	collateral *neotest.ContractInvoker
	gas        *neotest.ContractInvoker
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// newMeritDeployment compiles and deploys the Collateral and Merit
// contracts wired to each other, with the committee account as the
// administrator.
func newMeritDeployment(t *testing.T) *meritDeployment {
	e := newExecutor(t)

	ctrMerit := neotest.CompileFile(t, e.CommitteeHash, meritPath,
		path.Join(meritPath, "config.yml"))
	ctrCollateral := neotest.CompileFile(t, e.CommitteeHash, collateralPath,
		path.Join(collateralPath, "config.yml"))

	e.DeployContract(t, ctrCollateral, []interface{}{
		e.CommitteeHash,
		ctrMerit.Hash,
	})
	e.DeployContract(t, ctrMerit, []interface{}{
		e.CommitteeHash,
		ctrCollateral.Hash,
		int64(minReputation),
		int64(maxReputation),
		int64(collateralRequirement),
		int64(epochLength),
		int64(decayInterval),
		int64(decayRate),
	})

	return &meritDeployment{
		e:              e,
		meritHash:      ctrMerit.Hash,
		collateralHash: ctrCollateral.Hash,
		merit:          e.CommitteeInvoker(ctrMerit.Hash),
		collateral:     e.CommitteeInvoker(ctrCollateral.Hash),
		gas:            e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas)),
	}
}

func deployGovernanceContract(t *testing.T, e *neotest.Executor) *neotest.ContractInvoker {
	c := neotest.CompileFile(t, e.CommitteeHash, governancePath,
		path.Join(governancePath, "config.yml"))

	e.DeployContract(t, c, []interface{}{e.CommitteeHash})
	return e.CommitteeInvoker(c.Hash)
}

// deposit mints custody balance to the given account by transferring GAS
// from the committee to the Collateral contract.
func (d *meritDeployment) deposit(t *testing.T, to util.Uint160, amount int64) {
	d.gas.Invoke(t, true, "transfer",
		d.e.CommitteeHash, d.collateralHash, amount, to)
}

// newParticipant funds a fresh account with custody balance and registers
// it with the given collateral.
func (d *meritDeployment) newParticipant(t *testing.T, collateral int64) neotest.Signer {
	acc := d.merit.NewAccount(t)
	d.deposit(t, acc.ScriptHash(), collateral)
	d.merit.WithSigners(acc).Invoke(t, stackitem.Null{}, "register",
		acc.ScriptHash(), collateral)
	return acc
}

// newEvaluator issues an authorized evaluator credential for a fresh
// account.
func (d *meritDeployment) newEvaluator(t *testing.T, accuracy int64) neotest.Signer {
	acc := d.merit.NewAccount(t)
	d.merit.Invoke(t, stackitem.Null{}, "setEvaluator",
		acc.ScriptHash(), true, accuracy)
	return acc
}

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}
