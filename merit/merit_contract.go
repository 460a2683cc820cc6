package merit

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
	"github.com/meritledger/merit-contract/merit/meritconst"
	"github.com/meritledger/merit-contract/merit/participantstate"
	"github.com/meritledger/merit-contract/merit/scoring"
)

type (
	// Participant is the stored per-identity reputation state.
	Participant struct {
		// Current reputation score as of LastActiveEpoch. Decay for
		// later epochs is applied at read time, the stored value is
		// never aged in place.
		Score int

		// Epoch of the last accepted evaluation (registration epoch
		// until then).
		LastActiveEpoch int

		// Number of accepted evaluations.
		Evaluations int

		// Collateral charged at registration and held in protocol
		// custody.
		Collateral int

		// Current participant status.
		State participantstate.Type
	}

	// EvaluatorCredential authorizes an identity to submit evaluations.
	EvaluatorCredential struct {
		// Authorized gates submission; revoked credentials stay stored
		// with Authorized set to false.
		Authorized bool

		// Number of submitted evaluations.
		Evaluations int

		// Historical accuracy in [0, scoring.AccuracyScale]. Scales the
		// weight of every submitted evaluation.
		Accuracy int

		// Epoch of the last submitted evaluation.
		LastEvaluation int
	}

	// EvaluationRecord is the per-participant-per-epoch audit record. A
	// repeated submission for the same participant within the same epoch
	// overwrites the record while still counting as a submission.
	EvaluationRecord struct {
		// Raw score as submitted by the evaluator.
		BaseScore int

		// Score after blending with the participant's prior state.
		WeightedScore int

		// Submitting evaluator.
		Evaluator interop.Hash160

		// Chain block at submission time.
		Block int

		// Optional evaluator-provided context, at most
		// meritconst.MaxMetadataSize bytes.
		Metadata []byte
	}

	// Params groups the governable protocol parameters.
	Params struct {
		MinReputation         int
		MaxReputation         int
		CollateralRequirement int
		EpochLength           int
		DecayInterval         int
		DecayRate             int
	}

	// Profile is the read-only projection of a participant returned to
	// callers, with decay applied to the score.
	Profile struct {
		Score       int
		Evaluations int
		Collateral  int
		State       participantstate.Type
	}

	// Metrics groups the protocol-wide counters.
	Metrics struct {
		Participants int
		Collateral   int
		Evaluations  int
		Epoch        int
	}
)

const (
	epochKey              = "epoch"
	collateralContractKey = "collateralScriptHash"

	participantsStatKey = "statParticipants"
	collateralStatKey   = "statCollateral"
	evaluationsStatKey  = "statEvaluations"

	participantKeyPrefix = 'a'
	credentialKeyPrefix  = 'c'
	evaluationKeyPrefix  = 'r'
)

var paramPrefix = []byte("param")

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin                 interop.Hash160
		collateralContract    interop.Hash160
		minReputation         int
		maxReputation         int
		collateralRequirement int
		epochLength           int
		decayInterval         int
		decayRate             int
	})

	if len(args.admin) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect administrator script hash")
	}
	if len(args.collateralContract) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect collateral contract script hash")
	}

	storage.Put(ctx, common.AdminKey, args.admin)
	storage.Put(ctx, collateralContractKey, args.collateralContract)

	putParams(ctx, Params{
		MinReputation:         args.minReputation,
		MaxReputation:         args.maxReputation,
		CollateralRequirement: args.collateralRequirement,
		EpochLength:           args.epochLength,
		DecayInterval:         args.decayInterval,
		DecayRate:             args.decayRate,
	})

	// counters and epoch are little endian ints, they don't need to be
	// serialized
	storage.Put(ctx, epochKey, 0)
	storage.Put(ctx, participantsStatKey, 0)
	storage.Put(ctx, collateralStatKey, 0)
	storage.Put(ctx, evaluationsStatKey, 0)

	runtime.Log("merit contract initialized")
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
	runtime.Log("merit contract updated")
}

// Register creates a reputation account for the owner and moves collateral
// from the owner's custody balance into protocol custody. The call must be
// signed by the owner. It fails if the owner is already registered or if
// collateral does not cover the current collateral requirement. A later
// change of the requirement never affects already registered participants.
//
// New participants start from the maximum reputation score in Active state.
//
// Produces Register notification.
func Register(owner interop.Hash160, collateral int) {
	if len(owner) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect owner script hash")
	}

	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	if storage.Get(ctx, participantKey(owner)) != nil {
		panic(common.ErrAlreadyExists + ": participant is already registered")
	}

	requirement := parameter(ctx, meritconst.CollateralRequirementKey)
	if collateral < requirement {
		panic(common.ErrInsufficientCollateral + ": collateral requirement is not met")
	}

	// under a zero requirement the charge is a no-op, TransferX only moves
	// positive amounts
	if collateral > 0 {
		custody := storage.Get(ctx, collateralContractKey).(interop.Hash160)
		balance := contract.Call(custody, "balanceOf", contract.ReadOnly, owner).(int)
		if balance < collateral {
			panic(common.ErrInsufficientCollateral + ": custody balance does not cover the deposit")
		}

		contract.Call(custody, "transferX", contract.All,
			owner, runtime.GetExecutingScriptHash(), collateral,
			common.ChargeTransferDetails(owner))
	}

	p := Participant{
		Score:           parameter(ctx, meritconst.MaxReputationKey),
		LastActiveEpoch: currentEpoch(ctx),
		Evaluations:     0,
		Collateral:      collateral,
		State:           participantstate.Active,
	}
	common.SetSerialized(ctx, participantKey(owner), p)

	addStat(ctx, participantsStatKey, 1)
	addStat(ctx, collateralStatKey, collateral)

	runtime.Log("registered new participant")
	runtime.Notify("Register", owner, collateral)
}

// SubmitEvaluation folds a new evaluation of the participant into its
// reputation score and returns the updated score. The call must be signed
// by the evaluator, and the evaluator must hold an authorized credential.
// The raw score must lie within the configured reputation bounds, and the
// participant must not be suspended.
//
// The participant's stored score is first decay-adjusted for the epochs
// elapsed since its last activity, then blended with the raw score weighted
// by the evaluator's accuracy. The evaluation record is stored per
// participant per epoch: a repeated submission within one epoch overwrites
// the record, while the participant's evaluation counter grows on each
// submission.
//
// Produces Evaluation notification.
func SubmitEvaluation(evaluator, participant interop.Hash160, rawScore int, metadata []byte) int {
	if len(evaluator) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect evaluator script hash")
	}
	if len(participant) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect participant script hash")
	}

	common.CheckWitness(evaluator)

	ctx := storage.GetContext()

	credData := storage.Get(ctx, credentialKey(evaluator))
	if credData == nil {
		panic(meritconst.EvaluatorNotAuthorizedError)
	}
	cred := std.Deserialize(credData.([]byte)).(EvaluatorCredential)
	if !cred.Authorized {
		panic(meritconst.EvaluatorNotAuthorizedError)
	}

	partData := storage.Get(ctx, participantKey(participant))
	if partData == nil {
		panic(meritconst.ParticipantNotFoundError)
	}
	p := std.Deserialize(partData.([]byte)).(Participant)
	if p.State == participantstate.Suspended {
		panic(common.ErrInvalidState + ": participant is suspended")
	}

	params := getParams(ctx)
	if !scoring.ValidBounds(rawScore, params.MinReputation, params.MaxReputation) {
		panic(common.ErrValidationFailed + ": score is out of bounds")
	}
	if len(metadata) > meritconst.MaxMetadataSize {
		panic(common.ErrValidationFailed + ": metadata is too big")
	}

	epoch := currentEpoch(ctx)

	current := scoring.Decay(p.Score, p.LastActiveEpoch, epoch,
		params.DecayInterval, params.DecayRate, params.MinReputation)
	weighted := scoring.Blend(current, rawScore, p.Evaluations, cred.Accuracy)
	weighted = scoring.Clamp(weighted, params.MinReputation, params.MaxReputation)

	record := EvaluationRecord{
		BaseScore:     rawScore,
		WeightedScore: weighted,
		Evaluator:     evaluator,
		Block:         ledger.CurrentIndex(),
		Metadata:      metadata,
	}
	common.SetSerialized(ctx, evaluationKey(participant, epoch), record)

	p.Score = weighted
	p.LastActiveEpoch = epoch
	p.Evaluations = p.Evaluations + 1
	common.SetSerialized(ctx, participantKey(participant), p)

	cred.Evaluations = cred.Evaluations + 1
	cred.LastEvaluation = epoch
	common.SetSerialized(ctx, credentialKey(evaluator), cred)

	addStat(ctx, evaluationsStatKey, 1)

	runtime.Log("accepted evaluation")
	runtime.Notify("Evaluation", participant, evaluator, weighted)

	return weighted
}

// GetProfile returns the participant's projection with temporal decay
// applied to the score. Reading never mutates the stored state: repeated
// reads at one epoch return the same value, and reads at later epochs
// return monotonically non-increasing scores down to the configured
// minimum.
func GetProfile(participant interop.Hash160) Profile {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, participantKey(participant))
	if data == nil {
		panic(meritconst.ParticipantNotFoundError)
	}
	p := std.Deserialize(data.([]byte)).(Participant)

	params := getParams(ctx)
	score := scoring.Decay(p.Score, p.LastActiveEpoch, currentEpoch(ctx),
		params.DecayInterval, params.DecayRate, params.MinReputation)

	return Profile{
		Score:       score,
		Evaluations: p.Evaluations,
		Collateral:  p.Collateral,
		State:       p.State,
	}
}

// Evaluation returns the stored evaluation record of the participant for
// the given epoch.
func Evaluation(participant interop.Hash160, epoch int) EvaluationRecord {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, evaluationKey(participant, epoch))
	if data == nil {
		panic(meritconst.EvaluationNotFoundError)
	}

	return std.Deserialize(data.([]byte)).(EvaluationRecord)
}

// Evaluator returns the stored credential of the given evaluator.
func Evaluator(evaluator interop.Hash160) EvaluatorCredential {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, credentialKey(evaluator))
	if data == nil {
		panic(common.ErrNotFound + ": evaluator credential is not issued")
	}

	return std.Deserialize(data.([]byte)).(EvaluatorCredential)
}

// GetMetrics returns the protocol-wide counters.
func GetMetrics() Metrics {
	ctx := storage.GetReadOnlyContext()

	return Metrics{
		Participants: storage.Get(ctx, participantsStatKey).(int),
		Collateral:   storage.Get(ctx, collateralStatKey).(int),
		Evaluations:  storage.Get(ctx, evaluationsStatKey).(int),
		Epoch:        currentEpoch(ctx),
	}
}

// ProtocolParams returns the current protocol parameter set.
func ProtocolParams() Params {
	return getParams(storage.GetReadOnlyContext())
}

// SetProtocolParams replaces the protocol parameter set wholesale. It can
// be invoked only by the administrator. The new set is cross-validated;
// existing participant and evaluator records are never revalidated against
// it.
//
// Produces SetParams notification.
func SetProtocolParams(minReputation, maxReputation, collateralRequirement, epochLength, decayInterval, decayRate int) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	putParams(ctx, Params{
		MinReputation:         minReputation,
		MaxReputation:         maxReputation,
		CollateralRequirement: collateralRequirement,
		EpochLength:           epochLength,
		DecayInterval:         decayInterval,
		DecayRate:             decayRate,
	})

	runtime.Log("protocol parameters updated")
	runtime.Notify("SetParams", minReputation, maxReputation, collateralRequirement)
}

// IsAdministrator reports whether the caller is the stored administrator.
func IsAdministrator(caller interop.Hash160) bool {
	return common.IsAdministrator(storage.GetReadOnlyContext(), caller)
}

// SetParticipantState changes the participant's status. It can be invoked
// only by the administrator. State must be from the [participantstate.Type]
// enum.
func SetParticipantState(participant interop.Hash160, state participantstate.Type) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	if !participantstate.Valid(state) {
		panic(common.ErrValidationFailed + ": unsupported participant state")
	}

	data := storage.Get(ctx, participantKey(participant))
	if data == nil {
		panic(meritconst.ParticipantNotFoundError)
	}

	p := std.Deserialize(data.([]byte)).(Participant)
	p.State = state
	common.SetSerialized(ctx, participantKey(participant), p)

	runtime.Log("participant state updated")
}

// SetEvaluator issues or updates the evaluator credential. It can be
// invoked only by the administrator. Submission counters of an existing
// credential survive reauthorization.
func SetEvaluator(evaluator interop.Hash160, authorized bool, accuracy int) {
	if len(evaluator) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect evaluator script hash")
	}
	checkAccuracy(accuracy)

	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	cred := EvaluatorCredential{}
	data := storage.Get(ctx, credentialKey(evaluator))
	if data != nil {
		cred = std.Deserialize(data.([]byte)).(EvaluatorCredential)
	}

	cred.Authorized = authorized
	cred.Accuracy = accuracy
	common.SetSerialized(ctx, credentialKey(evaluator), cred)

	runtime.Log("evaluator credential updated")
}

// RecalibrateEvaluator replaces the accuracy of an existing evaluator
// credential. It can be invoked only by the administrator.
func RecalibrateEvaluator(evaluator interop.Hash160, accuracy int) {
	checkAccuracy(accuracy)

	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	data := storage.Get(ctx, credentialKey(evaluator))
	if data == nil {
		panic(common.ErrNotFound + ": evaluator credential is not issued")
	}

	cred := std.Deserialize(data.([]byte)).(EvaluatorCredential)
	cred.Accuracy = accuracy
	common.SetSerialized(ctx, credentialKey(evaluator), cred)

	runtime.Log("evaluator accuracy recalibrated")
}

// NewEpoch advances the epoch number up to the provided epochNum argument.
// It can be invoked only by the administrator. An epoch number less than or
// equal to the current one is rejected.
//
// Produces NewEpoch notification.
func NewEpoch(epochNum int) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(ctx)

	if epochNum <= currentEpoch(ctx) {
		panic(common.ErrInvalidState + ": epoch number must increase")
	}

	storage.Put(ctx, epochKey, epochNum)

	runtime.Log("process new epoch")
	runtime.Notify("NewEpoch", epochNum)
}

// Epoch returns the current epoch number.
func Epoch() int {
	return currentEpoch(storage.GetReadOnlyContext())
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func currentEpoch(ctx storage.Context) int {
	return storage.Get(ctx, epochKey).(int)
}

func parameter(ctx storage.Context, name string) int {
	return storage.Get(ctx, append(paramPrefix, []byte(name)...)).(int)
}

func putParameter(ctx storage.Context, name string, val int) {
	storage.Put(ctx, append(paramPrefix, []byte(name)...), val)
}

func getParams(ctx storage.Context) Params {
	return Params{
		MinReputation:         parameter(ctx, meritconst.MinReputationKey),
		MaxReputation:         parameter(ctx, meritconst.MaxReputationKey),
		CollateralRequirement: parameter(ctx, meritconst.CollateralRequirementKey),
		EpochLength:           parameter(ctx, meritconst.EpochLengthKey),
		DecayInterval:         parameter(ctx, meritconst.DecayIntervalKey),
		DecayRate:             parameter(ctx, meritconst.DecayRateKey),
	}
}

func putParams(ctx storage.Context, p Params) {
	if p.MinReputation < 0 || p.MinReputation > p.MaxReputation {
		panic(common.ErrValidationFailed + ": inconsistent reputation bounds")
	}
	if p.CollateralRequirement < 0 {
		panic(common.ErrValidationFailed + ": negative collateral requirement")
	}
	if p.EpochLength <= 0 || p.DecayInterval <= 0 {
		panic(common.ErrValidationFailed + ": epoch length and decay interval must be positive")
	}
	if p.DecayRate < 0 {
		panic(common.ErrValidationFailed + ": negative decay rate")
	}

	putParameter(ctx, meritconst.MinReputationKey, p.MinReputation)
	putParameter(ctx, meritconst.MaxReputationKey, p.MaxReputation)
	putParameter(ctx, meritconst.CollateralRequirementKey, p.CollateralRequirement)
	putParameter(ctx, meritconst.EpochLengthKey, p.EpochLength)
	putParameter(ctx, meritconst.DecayIntervalKey, p.DecayInterval)
	putParameter(ctx, meritconst.DecayRateKey, p.DecayRate)
}

func checkAccuracy(accuracy int) {
	if accuracy < 0 || accuracy > scoring.AccuracyScale {
		panic(common.ErrValidationFailed + ": accuracy is out of range")
	}
}

func addStat(ctx storage.Context, key string, diff int) {
	storage.Put(ctx, key, storage.Get(ctx, key).(int)+diff)
}

func participantKey(owner interop.Hash160) []byte {
	return append([]byte{participantKeyPrefix}, owner...)
}

func credentialKey(evaluator interop.Hash160) []byte {
	return append([]byte{credentialKeyPrefix}, evaluator...)
}

func evaluationKey(participant interop.Hash160, epoch int) []byte {
	key := append([]byte{evaluationKeyPrefix}, convert.ToBytes(epoch)...)
	return append(key, participant...)
}
