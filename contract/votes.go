package contract

import (
	"sync"

	"github.com/pkg/errors"

	"agora_dao/dao"
	"agora_dao/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Vote Staking
////////////////////////////////////////////////////////////////////////////////

// CastVote locks the voter's governance tokens behind one side of the tally
// and mints a receipt for them. Voting twice mints two receipts.
func (e *Engine) CastVote(proposalID uint64, voter sdk.Address, amount dao.Amount, side dao.Side) (uint64, error) {
	if !voter.IsValid() {
		return 0, ErrInvalidAddress
	}
	l := e.proposalLock(proposalID)
	l.Lock()
	defer l.Unlock()

	p, err := e.loadProposal(proposalID)
	if err != nil {
		return 0, err
	}
	inst, err := e.loadInstance(p.DaoID)
	if err != nil {
		return 0, err
	}
	now := e.now()
	if err := p.CastVote(now, amount, side); err != nil {
		return 0, err
	}
	// The in-memory tally bump above is discarded if the lock fails, nothing
	// was saved yet.
	if err := e.ledger.Lock(voter, inst.Asset, uint64(amount)); err != nil {
		return 0, errors.Wrapf(err, "stake %d %s", amount, inst.Asset)
	}

	r := &dao.VoteReceipt{
		ID:         e.nextID(ReceiptsCount),
		DaoID:      p.DaoID,
		ProposalID: p.ID,
		Voter:      voter,
		Staked:     amount,
		Side:       side,
		EndTime:    p.EndTime,
	}
	e.saveReceipt(r)
	e.saveProposal(p)

	e.emit(VoteCastEvent{
		DaoID:      p.DaoID,
		ProposalID: p.ID,
		ReceiptID:  r.ID,
		Voter:      voter.String(),
		Side:       side.String(),
		Amount:     uint64(amount),
		At:         now,
	})
	return r.ID, nil
}

// lockReceipt takes the proposal lock a receipt hangs off and re-reads the
// receipt inside the critical section, so a concurrent revoke cannot hand us a
// stale copy. The caller must unlock the returned mutex.
func (e *Engine) lockReceipt(receiptID uint64, voter sdk.Address) (*dao.VoteReceipt, *sync.Mutex, error) {
	peek, err := e.loadReceipt(receiptID)
	if err != nil {
		return nil, nil, err
	}
	l := e.proposalLock(peek.ProposalID)
	l.Lock()
	r, err := e.loadReceipt(receiptID)
	if err != nil {
		l.Unlock()
		return nil, nil, err
	}
	if r.Voter != voter {
		l.Unlock()
		return nil, nil, ErrNotReceiptHolder
	}
	return r, l, nil
}

// ChangeVote flips the receipt's side, moving its full weight across the tally.
func (e *Engine) ChangeVote(receiptID uint64, voter sdk.Address) error {
	r, l, err := e.lockReceipt(receiptID, voter)
	if err != nil {
		return err
	}
	defer l.Unlock()

	p, err := e.loadProposal(r.ProposalID)
	if err != nil {
		return err
	}
	now := e.now()
	if err := p.ChangeVote(now, r); err != nil {
		return err
	}
	e.saveReceipt(r)
	e.saveProposal(p)

	e.emit(VoteChangedEvent{
		DaoID:      p.DaoID,
		ProposalID: p.ID,
		ReceiptID:  r.ID,
		Voter:      voter.String(),
		NewSide:    r.Side.String(),
		Amount:     uint64(r.Staked),
		At:         now,
	})
	return nil
}

// RevokeVote withdraws a vote while the window is still open. The weight
// leaves the tally and the stake unlocks; the receipt is destroyed.
func (e *Engine) RevokeVote(receiptID uint64, voter sdk.Address) error {
	r, l, err := e.lockReceipt(receiptID, voter)
	if err != nil {
		return err
	}
	defer l.Unlock()

	p, err := e.loadProposal(r.ProposalID)
	if err != nil {
		return err
	}
	now := e.now()
	returned, err := p.RevokeVote(now, r)
	if err != nil {
		return err
	}
	inst, err := e.loadInstance(p.DaoID)
	if err != nil {
		return err
	}
	if err := e.ledger.Unlock(voter, inst.Asset, uint64(returned)); err != nil {
		return errors.Wrapf(err, "unstake receipt %d", r.ID)
	}
	e.deleteReceipt(r.ID)
	e.saveProposal(p)

	e.emit(VoteRevokedEvent{
		DaoID:      p.DaoID,
		ProposalID: p.ID,
		ReceiptID:  r.ID,
		Voter:      voter.String(),
		Returned:   uint64(returned),
		At:         now,
	})
	return nil
}

// UnstakeVote reclaims the stake after voting has closed. Tallies stay frozen
// as cast, only the receipt and the lock go away.
func (e *Engine) UnstakeVote(receiptID uint64, voter sdk.Address) error {
	r, l, err := e.lockReceipt(receiptID, voter)
	if err != nil {
		return err
	}
	defer l.Unlock()

	// The receipt's own end_time snapshot answers reclaimability without
	// touching the proposal.
	now := e.now()
	if !r.Resolved(now) {
		return dao.ErrVotingStillActive
	}

	p, err := e.loadProposal(r.ProposalID)
	if err != nil {
		return err
	}
	returned, err := p.UnstakeVote(now, r)
	if err != nil {
		return err
	}
	inst, err := e.loadInstance(p.DaoID)
	if err != nil {
		return err
	}
	if err := e.ledger.Unlock(voter, inst.Asset, uint64(returned)); err != nil {
		return errors.Wrapf(err, "unstake receipt %d", r.ID)
	}
	e.deleteReceipt(r.ID)

	e.emit(VoteUnstakedEvent{
		DaoID:      p.DaoID,
		ProposalID: p.ID,
		ReceiptID:  r.ID,
		Voter:      voter.String(),
		Returned:   uint64(returned),
		At:         now,
	})
	return nil
}
