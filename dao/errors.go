package dao

import "github.com/pkg/errors"

// Every failure in the core is a synchronous precondition violation with its
// own sentinel so callers can discriminate with errors.Is. No operation leaves
// a record partially mutated: validation runs before any write.
var (
	// Config validation.
	ErrInvalidQuorumRate  = errors.New("quorum rate must be in (0, 100%]")
	ErrZeroVotingDelay    = errors.New("voting delay must be positive")
	ErrZeroVotingPeriod   = errors.New("voting period must be positive")
	ErrZeroMinActionDelay = errors.New("min action delay must be positive")
	ErrZeroMinQuorumVotes = errors.New("min quorum votes must be positive")

	// Proposal preconditions.
	ErrActionDelayTooSmall    = errors.New("action delay below dao minimum")
	ErrMinQuorumVotesTooSmall = errors.New("quorum votes below dao minimum")
	ErrProposalNotActive      = errors.New("proposal not active")
	ErrProposalNotPassed      = errors.New("proposal not passed")
	ErrCannotExecute          = errors.New("cannot execute proposal")
	ErrTooEarlyToExecute      = errors.New("too early to execute proposal")

	// Vote consistency.
	ErrZeroStake         = errors.New("zero stake rejected")
	ErrReceiptMismatch   = errors.New("receipt does not belong to this proposal")
	ErrVotingStillActive = errors.New("voting window still active")

	// Identity / arithmetic guards.
	ErrDaoMismatch    = errors.New("record belongs to a different dao")
	ErrDivideByZero   = errors.New("division by zero")
	ErrActionConsumed = errors.New("action already consumed")
	ErrActionDropped  = errors.New("action dropped without being applied")
)
