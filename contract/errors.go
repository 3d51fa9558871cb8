package contract

import "github.com/pkg/errors"

var (
	// ErrDaoNotFound means the DAO id resolves to nothing in storage.
	ErrDaoNotFound = errors.New("dao not found")
	// ErrProposalNotFound means the proposal id resolves to nothing in storage.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrReceiptNotFound means the vote receipt was never minted or already destroyed.
	ErrReceiptNotFound = errors.New("vote receipt not found")
	// ErrNotReceiptHolder rejects receipt operations by anyone but the staker.
	ErrNotReceiptHolder = errors.New("caller does not hold this receipt")
	// ErrInvalidAddress rejects callers without a proper domain prefix.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrWitnessSpent rejects DAO creation with a used or duplicated witness.
	ErrWitnessSpent = errors.New("witness already spent for this asset")
	// ErrInsufficientTreasury rejects payouts exceeding the treasury balance.
	ErrInsufficientTreasury = errors.New("insufficient treasury funds")
)
