package contract_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"agora_dao/contract"
	"agora_dao/dao"
	"agora_dao/sdk"
)

// =============================================================================
// Vote Staking Tests
// =============================================================================

// TestCastVoteLocksStake checks tokens move to the locked bucket on cast.
func TestCastVoteLocksStake(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	rID, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)
	assert.Equal(t, uint64(9_850), f.ledger.Balance(alice, sdk.AssetHive))
	assert.Equal(t, uint64(150), f.ledger.Locked(alice, sdk.AssetHive))

	p, err := f.eng.GetProposal(propID)
	assert.NoError(t, err)
	assert.Equal(t, dao.Amount(150), p.ForVotes)
	assert.Equal(t, dao.Amount(0), p.AgainstVotes)

	ev, ok := f.lastEvent().(contract.VoteCastEvent)
	assert.True(t, ok)
	assert.Equal(t, rID, ev.ReceiptID)
}

// TestCastVoteInsufficientBalance checks the tally survives a failed lock.
func TestCastVoteInsufficientBalance(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	_, err := f.eng.CastVote(propID, alice, 20_000, dao.SideFor)
	assert.ErrorIs(t, err, sdk.ErrInsufficientBalance)

	p, _ := f.eng.GetProposal(propID)
	assert.Equal(t, dao.Amount(0), p.ForVotes, "failed cast must not count")
}

// TestCastVoteOutsideWindow checks casts in PENDING and after end both fail.
func TestCastVoteOutsideWindow(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)

	_, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.ErrorIs(t, err, dao.ErrProposalNotActive)

	f.advance(7_000)
	_, err = f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.ErrorIs(t, err, dao.ErrProposalNotActive)
}

// TestCastVoteZeroStake checks zero-weight votes are rejected.
func TestCastVoteZeroStake(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	_, err := f.eng.CastVote(propID, alice, 0, dao.SideFor)
	assert.ErrorIs(t, err, dao.ErrZeroStake)
}

// TestRepeatVotingMintsReceipts checks one voter can stack several receipts.
func TestRepeatVotingMintsReceipts(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	r1, err := f.eng.CastVote(propID, alice, 100, dao.SideFor)
	assert.NoError(t, err)
	r2, err := f.eng.CastVote(propID, alice, 50, dao.SideAgainst)
	assert.NoError(t, err)
	assert.NotEqual(t, r1, r2)

	p, _ := f.eng.GetProposal(propID)
	assert.Equal(t, dao.Amount(100), p.ForVotes)
	assert.Equal(t, dao.Amount(50), p.AgainstVotes)
	assert.Equal(t, uint64(150), f.ledger.Locked(alice, sdk.AssetHive))
}

// TestChangeVoteMovesWeight checks the flip moves the full weight across.
func TestChangeVoteMovesWeight(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	rID, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)
	assert.NoError(t, f.eng.ChangeVote(rID, alice))

	p, _ := f.eng.GetProposal(propID)
	assert.Equal(t, dao.Amount(0), p.ForVotes)
	assert.Equal(t, dao.Amount(150), p.AgainstVotes)

	// Flip back.
	assert.NoError(t, f.eng.ChangeVote(rID, alice))
	p, _ = f.eng.GetProposal(propID)
	assert.Equal(t, dao.Amount(150), p.ForVotes)
	assert.Equal(t, dao.Amount(0), p.AgainstVotes)
}

// TestChangeVoteHolderOnly checks nobody can flip someone else's receipt.
func TestChangeVoteHolderOnly(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	rID, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)
	assert.ErrorIs(t, f.eng.ChangeVote(rID, bob), contract.ErrNotReceiptHolder)
	assert.ErrorIs(t, f.eng.RevokeVote(rID, bob), contract.ErrNotReceiptHolder)
	assert.ErrorIs(t, f.eng.UnstakeVote(rID, bob), contract.ErrNotReceiptHolder)
}

// TestRevokeVote checks revoke removes weight and returns the stake in full.
func TestRevokeVote(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	rID, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)

	keysBefore := f.state.Len()
	assert.NoError(t, f.eng.RevokeVote(rID, alice))
	assert.Equal(t, keysBefore-1, f.state.Len(), "receipt record cleaned up")

	p, _ := f.eng.GetProposal(propID)
	assert.Equal(t, dao.Amount(0), p.ForVotes)
	assert.Equal(t, uint64(10_000), f.ledger.Balance(alice, sdk.AssetHive))
	assert.Equal(t, uint64(0), f.ledger.Locked(alice, sdk.AssetHive))

	// The receipt is gone, revoking twice cannot double-return stake.
	assert.ErrorIs(t, f.eng.RevokeVote(rID, alice), contract.ErrReceiptNotFound)
}

// TestRevokeAfterEndFails checks revoke is an ACTIVE-only operation.
func TestRevokeAfterEndFails(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	rID, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)

	f.advance(5_500)
	assert.ErrorIs(t, f.eng.RevokeVote(rID, alice), dao.ErrProposalNotActive)
}

// TestUnstakePreservesTallies checks reclaiming stake after resolution leaves
// the recorded outcome untouched.
func TestUnstakePreservesTallies(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	rID, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)

	// Still voting: unstake must wait, including at the inclusive end boundary.
	assert.ErrorIs(t, f.eng.UnstakeVote(rID, alice), dao.ErrVotingStillActive)
	f.advance(4_500) // t=6000
	assert.ErrorIs(t, f.eng.UnstakeVote(rID, alice), dao.ErrVotingStillActive)

	f.advance(1_000)
	assert.NoError(t, f.eng.UnstakeVote(rID, alice))
	assert.Equal(t, uint64(10_000), f.ledger.Balance(alice, sdk.AssetHive))

	p, _ := f.eng.GetProposal(propID)
	assert.Equal(t, dao.Amount(150), p.ForVotes, "tallies freeze at window close")
	assertState(t, f, propID, dao.ProposalAgreed)
}

// TestConcurrentVoting hammers one proposal from several goroutines and checks
// the per-proposal lock keeps the tally equal to the locked stake.
func TestConcurrentVoting(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				rID, err := f.eng.CastVote(propID, alice, 10, dao.SideFor)
				assert.NoError(t, err)
				assert.NoError(t, f.eng.ChangeVote(rID, alice))
				assert.NoError(t, f.eng.ChangeVote(rID, alice))
			}
		}()
	}
	wg.Wait()

	p, err := f.eng.GetProposal(propID)
	assert.NoError(t, err)
	assert.Equal(t, dao.Amount(400), p.ForVotes)
	assert.Equal(t, dao.Amount(0), p.AgainstVotes)
	assert.Equal(t, uint64(400), f.ledger.Locked(alice, sdk.AssetHive))
}

// TestStakeConservation runs a mixed session and checks every voter ends up
// with exactly their starting balance once all receipts are destroyed.
func TestStakeConservation(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)
	f.advance(1_500)

	rA, err := f.eng.CastVote(propID, alice, 120, dao.SideFor)
	assert.NoError(t, err)
	rB, err := f.eng.CastVote(propID, bob, 80, dao.SideAgainst)
	assert.NoError(t, err)
	rC, err := f.eng.CastVote(propID, carol, 60, dao.SideFor)
	assert.NoError(t, err)

	assert.NoError(t, f.eng.ChangeVote(rB, bob))
	assert.NoError(t, f.eng.RevokeVote(rC, carol))

	f.advance(5_500)
	assert.NoError(t, f.eng.UnstakeVote(rA, alice))
	assert.NoError(t, f.eng.UnstakeVote(rB, bob))

	for _, a := range []sdk.Address{alice, bob, carol} {
		assert.Equal(t, uint64(10_000), f.ledger.Balance(a, sdk.AssetHive))
		assert.Equal(t, uint64(0), f.ledger.Locked(a, sdk.AssetHive))
	}

	p, _ := f.eng.GetProposal(propID)
	assert.Equal(t, dao.Amount(200), p.ForVotes, "alice 120 plus bob's flipped 80")
	assert.Equal(t, dao.Amount(0), p.AgainstVotes)
}
