package roster

// LunchPolicy selects which lunch window the rules test against.
type LunchPolicy string

const (
	// LunchPolicyFixed applies one global window to every employee.
	LunchPolicyFixed LunchPolicy = "fixo"
	// LunchPolicyIndividual applies each employee's own window.
	LunchPolicyIndividual LunchPolicy = "individual"
)

// Config is the global scheduling policy. It is persisted alongside the
// roster and consulted by the rules and the auto-fill engine.
type Config struct {
	// TurnDuration is the nominal shift length in hours.
	TurnDuration int
	// LunchCoverage is the target staffed percentage during lunch windows.
	LunchCoverage int
	// BalanceHours toggles least-loaded-first candidate ordering.
	BalanceHours bool
	// RotateChannels toggles the channel-balance tie-break for livechat picks.
	RotateChannels bool
	// RespectLunch toggles lunch-window exclusion during auto-fill.
	RespectLunch bool
	// LunchPolicy selects fixed versus individual lunch windows.
	LunchPolicy LunchPolicy
	// FixedLunchStart and FixedLunchEnd bound the global window ("HH:MM").
	FixedLunchStart string
	FixedLunchEnd   string
}

// DefaultConfig returns the policy applied when nothing has been persisted.
func DefaultConfig() Config {
	return Config{
		TurnDuration:    4,
		LunchCoverage:   50,
		BalanceHours:    true,
		RotateChannels:  true,
		RespectLunch:    true,
		LunchPolicy:     LunchPolicyIndividual,
		FixedLunchStart: "12:00",
		FixedLunchEnd:   "13:00",
	}
}
