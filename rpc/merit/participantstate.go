package merit

import (
	"math/big"

	"github.com/meritledger/merit-contract/merit/participantstate"
)

// Possible participant states in [MeritProfile].

var (
	// ParticipantStateActive is used by participants in good standing.
	ParticipantStateActive = big.NewInt(int64(participantstate.Active))

	// ParticipantStateSuspended is used by participants barred from
	// receiving evaluations.
	ParticipantStateSuspended = big.NewInt(int64(participantstate.Suspended))

	// ParticipantStateProbation is used by participants under review.
	ParticipantStateProbation = big.NewInt(int64(participantstate.Probation))
)
