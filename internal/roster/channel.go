// Package roster implements the weekly staffing roster: the in-memory
// schedule grid, the conflict and lunch rules that gate every assignment,
// the greedy auto-fill heuristic, and the read-side stats aggregation.
package roster

import "fmt"

// ChannelKind identifies one of the two communication channel families.
type ChannelKind string

const (
	// KindLivechat is the single synchronous chat queue.
	KindLivechat ChannelKind = "livechat"
	// KindLigacao covers the three parallel voice-call lines.
	KindLigacao ChannelKind = "ligacao"
)

// NumLines is the number of parallel ligação lines.
const NumLines = 3

// Channel is a tagged variant addressing either the livechat queue or one
// specific ligação line. Line is meaningful only when Kind is KindLigacao.
type Channel struct {
	Kind ChannelKind
	Line int
}

// Livechat returns the livechat channel.
func Livechat() Channel {
	return Channel{Kind: KindLivechat}
}

// Ligacao returns the ligação channel for the given line index (0..2).
func Ligacao(line int) Channel {
	return Channel{Kind: KindLigacao, Line: line}
}

// Validate reports whether the channel addresses a real grid column.
func (c Channel) Validate() error {
	switch c.Kind {
	case KindLivechat:
		if c.Line != 0 {
			return fmt.Errorf("roster: livechat channel carries line %d", c.Line)
		}
		return nil
	case KindLigacao:
		if c.Line < 0 || c.Line >= NumLines {
			return fmt.Errorf("roster: ligação line %d out of range", c.Line)
		}
		return nil
	default:
		return fmt.Errorf("roster: unknown channel kind %q", c.Kind)
	}
}

// String renders the channel for logs and error messages.
func (c Channel) String() string {
	if c.Kind == KindLigacao {
		return fmt.Sprintf("ligacao[%d]", c.Line)
	}
	return string(c.Kind)
}
