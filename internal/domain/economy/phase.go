package economy

// Phase is the colony's strategic development phase, refreshed by the
// economic coordinator on its low-frequency cadence.
type Phase string

const (
	PhaseBootstrap  Phase = "BOOTSTRAP"
	PhaseDeveloping Phase = "DEVELOPING"
	PhaseStable     Phase = "STABLE"
	PhaseEmergency  Phase = "EMERGENCY"
)

// Valid reports whether the value is one of the defined phases. Unknown
// values loaded from a stale store are treated as bootstrap by callers.
func (p Phase) Valid() bool {
	switch p {
	case PhaseBootstrap, PhaseDeveloping, PhaseStable, PhaseEmergency:
		return true
	}
	return false
}
