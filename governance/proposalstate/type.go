package proposalstate

// Type is an enumeration for proposal states.
type Type int

// Various proposal states.
const (
	_ Type = iota

	// Active stands for proposals inside their voting window.
	Active

	// Passed stands for finalized proposals that gathered enough support.
	Passed

	// Failed stands for finalized proposals that did not gather enough
	// support.
	Failed

	// Executed stands for passed proposals whose payload has been applied
	// by the administrator.
	Executed
)
