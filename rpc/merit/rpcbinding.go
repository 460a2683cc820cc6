// Package merit contains RPC wrappers for Merit contract.
package merit

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// MeritEvaluationRecord is a contract-specific merit.EvaluationRecord type used by its methods.
type MeritEvaluationRecord struct {
	BaseScore *big.Int
	WeightedScore *big.Int
	Evaluator util.Uint160
	Block *big.Int
	Metadata []byte
}

// MeritEvaluatorCredential is a contract-specific merit.EvaluatorCredential type used by its methods.
type MeritEvaluatorCredential struct {
	Authorized bool
	Evaluations *big.Int
	Accuracy *big.Int
	LastEvaluation *big.Int
}

// MeritMetrics is a contract-specific merit.Metrics type used by its methods.
type MeritMetrics struct {
	Participants *big.Int
	Collateral *big.Int
	Evaluations *big.Int
	Epoch *big.Int
}

// MeritParams is a contract-specific merit.Params type used by its methods.
type MeritParams struct {
	MinReputation *big.Int
	MaxReputation *big.Int
	CollateralRequirement *big.Int
	EpochLength *big.Int
	DecayInterval *big.Int
	DecayRate *big.Int
}

// MeritProfile is a contract-specific merit.Profile type used by its methods.
type MeritProfile struct {
	Score *big.Int
	Evaluations *big.Int
	Collateral *big.Int
	State *big.Int
}

// RegisterEvent represents "Register" event emitted by the contract.
type RegisterEvent struct {
	Owner util.Uint160
	Collateral *big.Int
}

// EvaluationEvent represents "Evaluation" event emitted by the contract.
type EvaluationEvent struct {
	Participant util.Uint160
	Evaluator util.Uint160
	WeightedScore *big.Int
}

// SetParamsEvent represents "SetParams" event emitted by the contract.
type SetParamsEvent struct {
	MinReputation *big.Int
	MaxReputation *big.Int
	CollateralRequirement *big.Int
}

// NewEpochEvent represents "NewEpoch" event emitted by the contract.
type NewEpochEvent struct {
	Epoch *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Epoch invokes `epoch` method of contract.
func (c *ContractReader) Epoch() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "epoch"))
}

// Evaluation invokes `evaluation` method of contract.
func (c *ContractReader) Evaluation(participant util.Uint160, epoch *big.Int) (*MeritEvaluationRecord, error) {
	return itemToMeritEvaluationRecord(unwrap.Item(c.invoker.Call(c.hash, "evaluation", participant, epoch)))
}

// Evaluator invokes `evaluator` method of contract.
func (c *ContractReader) Evaluator(evaluator util.Uint160) (*MeritEvaluatorCredential, error) {
	return itemToMeritEvaluatorCredential(unwrap.Item(c.invoker.Call(c.hash, "evaluator", evaluator)))
}

// GetMetrics invokes `getMetrics` method of contract.
func (c *ContractReader) GetMetrics() (*MeritMetrics, error) {
	return itemToMeritMetrics(unwrap.Item(c.invoker.Call(c.hash, "getMetrics")))
}

// GetProfile invokes `getProfile` method of contract.
func (c *ContractReader) GetProfile(participant util.Uint160) (*MeritProfile, error) {
	return itemToMeritProfile(unwrap.Item(c.invoker.Call(c.hash, "getProfile", participant)))
}

// IsAdministrator invokes `isAdministrator` method of contract.
func (c *ContractReader) IsAdministrator(caller util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAdministrator", caller))
}

// ProtocolParams invokes `protocolParams` method of contract.
func (c *ContractReader) ProtocolParams() (*MeritParams, error) {
	return itemToMeritParams(unwrap.Item(c.invoker.Call(c.hash, "protocolParams")))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// NewEpoch creates a transaction invoking `newEpoch` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) NewEpoch(epochNum *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "newEpoch", epochNum)
}

// NewEpochTransaction creates a transaction invoking `newEpoch` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) NewEpochTransaction(epochNum *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "newEpoch", epochNum)
}

// NewEpochUnsigned creates a transaction invoking `newEpoch` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) NewEpochUnsigned(epochNum *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "newEpoch", nil, epochNum)
}

// RecalibrateEvaluator creates a transaction invoking `recalibrateEvaluator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RecalibrateEvaluator(evaluator util.Uint160, accuracy *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recalibrateEvaluator", evaluator, accuracy)
}

// RecalibrateEvaluatorTransaction creates a transaction invoking `recalibrateEvaluator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RecalibrateEvaluatorTransaction(evaluator util.Uint160, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recalibrateEvaluator", evaluator, accuracy)
}

// RecalibrateEvaluatorUnsigned creates a transaction invoking `recalibrateEvaluator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RecalibrateEvaluatorUnsigned(evaluator util.Uint160, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recalibrateEvaluator", nil, evaluator, accuracy)
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(owner util.Uint160, collateral *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", owner, collateral)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(owner util.Uint160, collateral *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", owner, collateral)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(owner util.Uint160, collateral *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, owner, collateral)
}

// SetEvaluator creates a transaction invoking `setEvaluator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetEvaluator(evaluator util.Uint160, authorized bool, accuracy *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setEvaluator", evaluator, authorized, accuracy)
}

// SetEvaluatorTransaction creates a transaction invoking `setEvaluator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetEvaluatorTransaction(evaluator util.Uint160, authorized bool, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setEvaluator", evaluator, authorized, accuracy)
}

// SetEvaluatorUnsigned creates a transaction invoking `setEvaluator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetEvaluatorUnsigned(evaluator util.Uint160, authorized bool, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setEvaluator", nil, evaluator, authorized, accuracy)
}

// SetParticipantState creates a transaction invoking `setParticipantState` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetParticipantState(participant util.Uint160, state *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setParticipantState", participant, state)
}

// SetParticipantStateTransaction creates a transaction invoking `setParticipantState` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetParticipantStateTransaction(participant util.Uint160, state *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setParticipantState", participant, state)
}

// SetParticipantStateUnsigned creates a transaction invoking `setParticipantState` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetParticipantStateUnsigned(participant util.Uint160, state *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setParticipantState", nil, participant, state)
}

// SetProtocolParams creates a transaction invoking `setProtocolParams` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetProtocolParams(minReputation *big.Int, maxReputation *big.Int, collateralRequirement *big.Int, epochLength *big.Int, decayInterval *big.Int, decayRate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setProtocolParams", minReputation, maxReputation, collateralRequirement, epochLength, decayInterval, decayRate)
}

// SetProtocolParamsTransaction creates a transaction invoking `setProtocolParams` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetProtocolParamsTransaction(minReputation *big.Int, maxReputation *big.Int, collateralRequirement *big.Int, epochLength *big.Int, decayInterval *big.Int, decayRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setProtocolParams", minReputation, maxReputation, collateralRequirement, epochLength, decayInterval, decayRate)
}

// SetProtocolParamsUnsigned creates a transaction invoking `setProtocolParams` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetProtocolParamsUnsigned(minReputation *big.Int, maxReputation *big.Int, collateralRequirement *big.Int, epochLength *big.Int, decayInterval *big.Int, decayRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setProtocolParams", nil, minReputation, maxReputation, collateralRequirement, epochLength, decayInterval, decayRate)
}

// SubmitEvaluation creates a transaction invoking `submitEvaluation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitEvaluation(evaluator util.Uint160, participant util.Uint160, rawScore *big.Int, metadata []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitEvaluation", evaluator, participant, rawScore, metadata)
}

// SubmitEvaluationTransaction creates a transaction invoking `submitEvaluation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitEvaluationTransaction(evaluator util.Uint160, participant util.Uint160, rawScore *big.Int, metadata []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitEvaluation", evaluator, participant, rawScore, metadata)
}

// SubmitEvaluationUnsigned creates a transaction invoking `submitEvaluation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitEvaluationUnsigned(evaluator util.Uint160, participant util.Uint160, rawScore *big.Int, metadata []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitEvaluation", nil, evaluator, participant, rawScore, metadata)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToMeritEvaluationRecord converts stack item into *MeritEvaluationRecord.
func itemToMeritEvaluationRecord(item stackitem.Item, err error) (*MeritEvaluationRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(MeritEvaluationRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of MeritEvaluationRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *MeritEvaluationRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.BaseScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BaseScore: %w", err)
	}

	index++
	res.WeightedScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field WeightedScore: %w", err)
	}

	index++
	res.Evaluator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Evaluator: %w", err)
	}

	index++
	res.Block, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Block: %w", err)
	}

	index++
	res.Metadata, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Metadata: %w", err)
	}

	return nil
}

// itemToMeritEvaluatorCredential converts stack item into *MeritEvaluatorCredential.
func itemToMeritEvaluatorCredential(item stackitem.Item, err error) (*MeritEvaluatorCredential, error) {
	if err != nil {
		return nil, err
	}
	var res = new(MeritEvaluatorCredential)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of MeritEvaluatorCredential from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *MeritEvaluatorCredential) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Authorized, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Authorized: %w", err)
	}

	index++
	res.Evaluations, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Evaluations: %w", err)
	}

	index++
	res.Accuracy, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Accuracy: %w", err)
	}

	index++
	res.LastEvaluation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastEvaluation: %w", err)
	}

	return nil
}

// itemToMeritMetrics converts stack item into *MeritMetrics.
func itemToMeritMetrics(item stackitem.Item, err error) (*MeritMetrics, error) {
	if err != nil {
		return nil, err
	}
	var res = new(MeritMetrics)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of MeritMetrics from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *MeritMetrics) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Participants, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Participants: %w", err)
	}

	index++
	res.Collateral, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Collateral: %w", err)
	}

	index++
	res.Evaluations, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Evaluations: %w", err)
	}

	index++
	res.Epoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Epoch: %w", err)
	}

	return nil
}

// itemToMeritParams converts stack item into *MeritParams.
func itemToMeritParams(item stackitem.Item, err error) (*MeritParams, error) {
	if err != nil {
		return nil, err
	}
	var res = new(MeritParams)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of MeritParams from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *MeritParams) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.MinReputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinReputation: %w", err)
	}

	index++
	res.MaxReputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxReputation: %w", err)
	}

	index++
	res.CollateralRequirement, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CollateralRequirement: %w", err)
	}

	index++
	res.EpochLength, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EpochLength: %w", err)
	}

	index++
	res.DecayInterval, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DecayInterval: %w", err)
	}

	index++
	res.DecayRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DecayRate: %w", err)
	}

	return nil
}

// itemToMeritProfile converts stack item into *MeritProfile.
func itemToMeritProfile(item stackitem.Item, err error) (*MeritProfile, error) {
	if err != nil {
		return nil, err
	}
	var res = new(MeritProfile)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of MeritProfile from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *MeritProfile) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	index++
	res.Evaluations, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Evaluations: %w", err)
	}

	index++
	res.Collateral, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Collateral: %w", err)
	}

	index++
	res.State, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field State: %w", err)
	}

	return nil
}

// RegisterEventsFromApplicationLog retrieves a set of all emitted events
// with "Register" name from the provided [result.ApplicationLog].
func RegisterEventsFromApplicationLog(log *result.ApplicationLog) ([]*RegisterEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RegisterEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Register" {
				continue
			}
			event := new(RegisterEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RegisterEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RegisterEvent or
// returns an error if it's not possible to do to so.
func (e *RegisterEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Collateral, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Collateral: %w", err)
	}

	return nil
}

// EvaluationEventsFromApplicationLog retrieves a set of all emitted events
// with "Evaluation" name from the provided [result.ApplicationLog].
func EvaluationEventsFromApplicationLog(log *result.ApplicationLog) ([]*EvaluationEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EvaluationEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Evaluation" {
				continue
			}
			event := new(EvaluationEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EvaluationEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EvaluationEvent or
// returns an error if it's not possible to do to so.
func (e *EvaluationEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Participant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	index++
	e.Evaluator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Evaluator: %w", err)
	}

	index++
	e.WeightedScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field WeightedScore: %w", err)
	}

	return nil
}

// SetParamsEventsFromApplicationLog retrieves a set of all emitted events
// with "SetParams" name from the provided [result.ApplicationLog].
func SetParamsEventsFromApplicationLog(log *result.ApplicationLog) ([]*SetParamsEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SetParamsEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SetParams" {
				continue
			}
			event := new(SetParamsEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SetParamsEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SetParamsEvent or
// returns an error if it's not possible to do to so.
func (e *SetParamsEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.MinReputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinReputation: %w", err)
	}

	index++
	e.MaxReputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxReputation: %w", err)
	}

	index++
	e.CollateralRequirement, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CollateralRequirement: %w", err)
	}

	return nil
}

// NewEpochEventsFromApplicationLog retrieves a set of all emitted events
// with "NewEpoch" name from the provided [result.ApplicationLog].
func NewEpochEventsFromApplicationLog(log *result.ApplicationLog) ([]*NewEpochEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NewEpochEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NewEpoch" {
				continue
			}
			event := new(NewEpochEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NewEpochEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NewEpochEvent or
// returns an error if it's not possible to do to so.
func (e *NewEpochEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Epoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Epoch: %w", err)
	}

	return nil
}
