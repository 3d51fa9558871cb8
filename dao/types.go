package dao

// Amount is an unsigned token weight. Amounts carry no implicit precision:
// whatever scale the governance asset uses on-chain is the scale here.
type Amount uint64

// Timestamp is milliseconds since the host epoch, as handed out by the clock.
type Timestamp = int64

// Duration is a span in milliseconds, same unit as Timestamp.
type Duration = int64

// Side is the direction of a vote.
type Side uint8

const (
	SideAgainst Side = 0
	SideFor     Side = 1
)

// Flip returns the opposite side, used when a voter changes their mind.
// Example payload: dao.SideFor.Flip()
func (s Side) Flip() Side {
	if s == SideFor {
		return SideAgainst
	}
	return SideFor
}

// String prints the side as lower-case text for events and logs.
// Example payload: dao.SideAgainst.String()
func (s Side) String() string {
	if s == SideFor {
		return "for"
	}
	return "against"
}

// ProposalState captures a proposal's lifecycle. The numeric order is the
// lifecycle order: once time moves forward and no operation runs, the derived
// state never goes backwards.
type ProposalState uint8

const (
	ProposalStateUnspecified ProposalState = 0
	// ProposalPending means voting has not opened yet.
	ProposalPending ProposalState = 1
	// ProposalActive means the voting window is open.
	ProposalActive ProposalState = 2
	// ProposalDefeated means voting closed without a qualifying supermajority. Terminal.
	ProposalDefeated ProposalState = 3
	// ProposalAgreed means the vote passed but nobody queued execution yet.
	ProposalAgreed ProposalState = 4
	// ProposalQueued means execution is scheduled and the action delay is running.
	ProposalQueued ProposalState = 5
	// ProposalExecutable means the delay elapsed and the action payload is still unconsumed.
	ProposalExecutable ProposalState = 6
	// ProposalExtracted means the payload was consumed. Terminal.
	ProposalExtracted ProposalState = 7
)

// String prints the proposal state as lower-case text for events and logs.
// Example payload: dao.ProposalAgreed.String()
func (ps ProposalState) String() string {
	switch ps {
	case ProposalPending:
		return "pending"
	case ProposalActive:
		return "active"
	case ProposalDefeated:
		return "defeated"
	case ProposalAgreed:
		return "agreed"
	case ProposalQueued:
		return "queued"
	case ProposalExecutable:
		return "executable"
	case ProposalExtracted:
		return "extracted"
	default:
		return "unspecified"
	}
}
