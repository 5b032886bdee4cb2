package credit

// Event carries the fields of an inbound signal the guard needs to rule on.
type Event struct {
	GuildID    string
	SenderID   string
	TargetID   string
	TargetName string

	// HasTarget is false for sticker messages that are not a reply. Reaction
	// signals always have a target (the author of the reacted-to message).
	HasTarget bool

	// TargetIsBot marks the target as a bot or service account.
	TargetIsBot bool
}

// Denial identifies why a signal was rejected. The empty value means the
// signal is allowed.
type Denial string

const (
	DenialNone           Denial = ""
	DenialNoTarget       Denial = "no_target"
	DenialSenderExcluded Denial = "sender_excluded"
	DenialSelfVote       Denial = "self_vote"
	DenialBotTarget      Denial = "bot_target"
)

// Guard decides whether a proposed score change is allowed. Denials are
// expected outcomes, not faults: they never touch storage and each maps to
// its own user-facing message, so the check order below is part of the
// contract.
type Guard struct {
	excluded map[string]struct{}
}

// NewGuard builds a guard barring the given sender IDs from issuing signals.
func NewGuard(excludedSenderIDs []string) *Guard {
	excluded := make(map[string]struct{}, len(excludedSenderIDs))
	for _, id := range excludedSenderIDs {
		excluded[id] = struct{}{}
	}
	return &Guard{excluded: excluded}
}

// Check runs the eligibility chain and returns the first failing denial, or
// DenialNone when the signal may proceed.
func (g *Guard) Check(ev Event) Denial {
	if !ev.HasTarget {
		return DenialNoTarget
	}
	if _, barred := g.excluded[ev.SenderID]; barred {
		return DenialSenderExcluded
	}
	if ev.SenderID == ev.TargetID {
		return DenialSelfVote
	}
	if ev.TargetIsBot {
		return DenialBotTarget
	}
	return DenialNone
}
