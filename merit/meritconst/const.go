package meritconst

const (
	// MinReputationKey is a parameter key which contains the lower bound of
	// reputation scores.
	MinReputationKey = "MinReputation"
	// MaxReputationKey is a parameter key which contains the upper bound of
	// reputation scores. New participants start from this value.
	MaxReputationKey = "MaxReputation"
	// CollateralRequirementKey is a parameter key which contains the amount
	// of custody balance charged at registration.
	CollateralRequirementKey = "CollateralRequirement"
	// EpochLengthKey is a parameter key which contains the epoch duration
	// in blocks. The value is informational for the epoch-advancing party;
	// the contract itself never derives epochs from block height.
	EpochLengthKey = "EpochLength"
	// DecayIntervalKey is a parameter key which contains the number of
	// epochs that must fully elapse before a score loses one decay tick.
	DecayIntervalKey = "DecayInterval"
	// DecayRateKey is a parameter key which contains the score reduction
	// applied per elapsed decay interval.
	DecayRateKey = "DecayRate"

	// MaxMetadataSize limits the evaluation metadata payload.
	MaxMetadataSize = 1024

	// ParticipantNotFoundError is thrown when the referenced participant is
	// not registered.
	ParticipantNotFoundError = "not found: participant is not registered"
	// EvaluationNotFoundError is thrown when no evaluation record is stored
	// for the requested participant and epoch.
	EvaluationNotFoundError = "not found: no evaluation for the epoch"
	// EvaluatorNotAuthorizedError is thrown when the submitting identity
	// holds no authorized evaluator credential.
	EvaluatorNotAuthorizedError = "access denied: evaluator is not authorized"
)
