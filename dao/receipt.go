package dao

import "agora_dao/sdk"

// VoteReceipt records one staker's position against one proposal. The staked
// amount is exclusively owned by the receipt from cast until the receipt is
// destroyed, at which point the amount flows back to the holder. A staker may
// hold several receipts against the same proposal by voting repeatedly.
type VoteReceipt struct {
	ID         uint64
	DaoID      uint64
	ProposalID uint64
	Voter      sdk.Address
	Staked     Amount
	Side       Side
	// EndTime is copied from the proposal at cast time so the holder can tell
	// when the stake becomes reclaimable without re-reading the proposal.
	EndTime Timestamp
}

// Resolved reports whether the proposal's voting window has closed from the
// receipt's own snapshot of end_time.
// Example payload: receipt.Resolved(now)
func (r *VoteReceipt) Resolved(now Timestamp) bool {
	return now > r.EndTime
}
