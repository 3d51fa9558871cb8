package dao

import "agora_dao/sdk"

// Proposal is the core state machine record. Its state is never stored: it is
// re-derived from the clock and the fields below on every call, so there is no
// cached transition to skip or forget.
type Proposal struct {
	ID       uint64
	DaoID    uint64
	Proposer sdk.Address

	// StartTime/EndTime bound the voting window, fixed at creation.
	StartTime Timestamp
	EndTime   Timestamp

	// Tallies move only while the derived state is ACTIVE.
	ForVotes     Amount
	AgainstVotes Amount

	// ETA stays zero until queued, then holds the earliest execution time.
	ETA Timestamp

	// ActionDelay, QuorumVotes and QuorumRate are snapshotted at creation and
	// immune to later config changes.
	ActionDelay Duration
	QuorumVotes Amount
	QuorumRate  FixedPoint

	// Payload is present until executed; nil afterwards.
	Payload ActionPayload
}

// NewProposal validates the caller-chosen knobs against the DAO minimums and
// snapshots everything the lifecycle will ever need from the config.
func NewProposal(cfg Config, now Timestamp, proposer sdk.Address, payload ActionPayload, actionDelay Duration, quorumVotes Amount) (*Proposal, error) {
	if actionDelay < cfg.MinActionDelay {
		return nil, ErrActionDelayTooSmall
	}
	if quorumVotes < cfg.MinQuorumVotes {
		return nil, ErrMinQuorumVotesTooSmall
	}
	start := now + cfg.VotingDelay
	return &Proposal{
		Proposer:    proposer,
		StartTime:   start,
		EndTime:     start + cfg.VotingPeriod,
		ActionDelay: actionDelay,
		QuorumVotes: quorumVotes,
		QuorumRate:  cfg.QuorumRate,
		Payload:     payload,
	}, nil
}

// State derives the lifecycle position from the clock and current fields.
// First match wins; the total order below is the entire state machine.
func (p *Proposal) State(now Timestamp) ProposalState {
	switch {
	case now < p.StartTime:
		return ProposalPending
	case now <= p.EndTime:
		return ProposalActive
	case !p.quorumReached():
		return ProposalDefeated
	case p.ETA == 0:
		return ProposalAgreed
	case now < p.ETA:
		return ProposalQueued
	case p.Payload != nil:
		return ProposalExecutable
	default:
		return ProposalExtracted
	}
}

// quorumReached checks strict majority, the absolute floor, and the
// fixed-point supermajority rate. A proposal nobody voted on fails here
// instead of dividing by zero.
func (p *Proposal) quorumReached() bool {
	if p.ForVotes <= p.AgainstVotes {
		return false
	}
	if p.ForVotes < p.QuorumVotes {
		return false
	}
	frac, err := DivDown(p.ForVotes, p.ForVotes+p.AgainstVotes)
	if err != nil {
		return false
	}
	return frac >= p.QuorumRate
}

// owns verifies the DAO identity tag and the proposal back-reference before
// any receipt-driven mutation.
func (p *Proposal) owns(r *VoteReceipt) error {
	if r.DaoID != p.DaoID {
		return ErrDaoMismatch
	}
	if r.ProposalID != p.ID {
		return ErrReceiptMismatch
	}
	return nil
}

func (p *Proposal) addTally(side Side, amount Amount) {
	if side == SideFor {
		p.ForVotes += amount
	} else {
		p.AgainstVotes += amount
	}
}

func (p *Proposal) subTally(side Side, amount Amount) {
	if side == SideFor {
		p.ForVotes -= amount
	} else {
		p.AgainstVotes -= amount
	}
}

// CastVote adds stake to one side of the tally. The caller mints the receipt
// holding the locked amount.
func (p *Proposal) CastVote(now Timestamp, amount Amount, side Side) error {
	if p.State(now) != ProposalActive {
		return ErrProposalNotActive
	}
	if amount == 0 {
		return ErrZeroStake
	}
	p.addTally(side, amount)
	return nil
}

// ChangeVote flips the receipt's side and moves its full amount between
// tallies. The amount was non-zero at cast time so it is not re-checked.
func (p *Proposal) ChangeVote(now Timestamp, r *VoteReceipt) error {
	if p.State(now) != ProposalActive {
		return ErrProposalNotActive
	}
	if err := p.owns(r); err != nil {
		return err
	}
	p.subTally(r.Side, r.Staked)
	r.Side = r.Side.Flip()
	p.addTally(r.Side, r.Staked)
	return nil
}

// RevokeVote removes the receipt's amount from its tally while voting is still
// open and returns the stake. The caller destroys the receipt.
func (p *Proposal) RevokeVote(now Timestamp, r *VoteReceipt) (Amount, error) {
	if p.State(now) != ProposalActive {
		return 0, ErrProposalNotActive
	}
	if err := p.owns(r); err != nil {
		return 0, err
	}
	p.subTally(r.Side, r.Staked)
	return r.Staked, nil
}

// UnstakeVote releases the stake once resolution has begun. Tallies are left
// untouched so the historical record stays intact; this is the only way to
// reclaim stake after the voting window closes.
func (p *Proposal) UnstakeVote(now Timestamp, r *VoteReceipt) (Amount, error) {
	if p.State(now) <= ProposalActive {
		return 0, ErrVotingStillActive
	}
	if err := p.owns(r); err != nil {
		return 0, err
	}
	return r.Staked, nil
}

// Queue schedules execution of an agreed proposal. Calling it again fails
// because the derived state has already advanced past AGREED.
func (p *Proposal) Queue(now Timestamp) error {
	if p.State(now) != ProposalAgreed {
		return ErrProposalNotPassed
	}
	p.ETA = now + p.ActionDelay
	return nil
}

// ExtractAction consumes the payload exactly once and wraps it with the
// proposal's provenance. Afterwards the proposal permanently reports
// EXTRACTED. The time re-check is redundant with the derived state but kept
// as defense in depth.
func (p *Proposal) ExtractAction(now Timestamp) (*Action, error) {
	if p.State(now) != ProposalExecutable {
		return nil, ErrCannotExecute
	}
	if now < p.EndTime+p.ActionDelay {
		return nil, ErrTooEarlyToExecute
	}
	payload := p.Payload
	p.Payload = nil
	return &Action{daoID: p.DaoID, proposalID: p.ID, payload: payload}, nil
}
