package participantstate

// Type is an enumeration for participant statuses.
type Type int

// Various participant statuses.
const (
	_ Type = iota

	// Active stands for participants in good standing that can be
	// evaluated and take part in governance.
	Active

	// Suspended stands for participants excluded from evaluation by an
	// administrative decision.
	Suspended

	// Probation stands for participants under administrative review with
	// evaluations still accepted.
	Probation
)

// Valid reports whether t is a member of the enumeration.
func Valid(t Type) bool {
	return t == Active || t == Suspended || t == Probation
}
