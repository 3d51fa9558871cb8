package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agora_dao/contract"
	"agora_dao/dao"
	"agora_dao/sdk"
)

// =============================================================================
// Proposal Lifecycle Tests
// =============================================================================

// TestProposalLifecycle walks one proposal from creation to execution so we
// dont break the happy path again.
func TestProposalLifecycle(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	assert.NoError(t, f.eng.DepositTreasury(alice, daoID, sdk.AssetHive, 500))

	propID, err := f.eng.Propose(daoID, alice, dao.PayoutAction{
		Receiver: bob,
		Amount:   250,
		Asset:    sdk.AssetHive,
	}, 2_000, 100)
	assert.NoError(t, err)

	// t=0: voting opens at 1000, closes at 6000.
	assertState(t, f, propID, dao.ProposalPending)

	f.advance(1_500)
	assertState(t, f, propID, dao.ProposalActive)
	_, err = f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)
	_, err = f.eng.CastVote(propID, bob, 40, dao.SideAgainst)
	assert.NoError(t, err)

	f.advance(5_500) // t=7000, past end
	assertState(t, f, propID, dao.ProposalAgreed)

	assert.NoError(t, f.eng.Queue(propID))
	assertState(t, f, propID, dao.ProposalQueued)
	p, err := f.eng.GetProposal(propID)
	assert.NoError(t, err)
	assert.Equal(t, int64(9_000), p.ETA)

	f.advance(2_000) // t=9000 == eta
	assertState(t, f, propID, dao.ProposalExecutable)

	bobBefore := f.ledger.Balance(bob, sdk.AssetHive)
	assert.NoError(t, f.eng.Execute(propID))
	assert.Equal(t, bobBefore+250, f.ledger.Balance(bob, sdk.AssetHive))
	assert.Equal(t, dao.Amount(250), f.eng.TreasuryBalance(daoID, sdk.AssetHive))
	assertState(t, f, propID, dao.ProposalExtracted)
}

// TestExecuteExactlyOnce checks the second execution attempt fails hard.
func TestExecuteExactlyOnce(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)

	f.advance(1_500)
	_, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)

	f.advance(5_500)
	assert.NoError(t, f.eng.Queue(propID))
	f.advance(2_000)
	assert.NoError(t, f.eng.Execute(propID))

	err = f.eng.Execute(propID)
	assert.ErrorIs(t, err, dao.ErrCannotExecute)
	assertState(t, f, propID, dao.ProposalExtracted)
}

// TestQueueRequiresAgreed checks queueing outside AGREED fails in every state.
func TestQueueRequiresAgreed(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)

	// PENDING
	assert.ErrorIs(t, f.eng.Queue(propID), dao.ErrProposalNotPassed)

	// ACTIVE
	f.advance(1_500)
	_, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)
	assert.ErrorIs(t, f.eng.Queue(propID), dao.ErrProposalNotPassed)

	// AGREED, then QUEUED: a second queue call must fail too.
	f.advance(5_500)
	assert.NoError(t, f.eng.Queue(propID))
	assert.ErrorIs(t, f.eng.Queue(propID), dao.ErrProposalNotPassed)
}

// TestDefeatedProposalCannotQueue checks quorum failures stay terminal.
func TestDefeatedProposalCannotQueue(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)

	f.advance(1_500)
	_, err := f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)
	_, err = f.eng.CastVote(propID, bob, 200, dao.SideAgainst)
	assert.NoError(t, err)

	f.advance(5_500)
	assertState(t, f, propID, dao.ProposalDefeated)
	assert.ErrorIs(t, f.eng.Queue(propID), dao.ErrProposalNotPassed)
	assert.ErrorIs(t, f.eng.Execute(propID), dao.ErrCannotExecute)
}

// TestZeroVotesDefeated checks a silent proposal never passes.
func TestZeroVotesDefeated(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	propID := createTextProposal(t, f, daoID)

	f.advance(7_000)
	assertState(t, f, propID, dao.ProposalDefeated)
}

// TestProposeRejectsWeakKnobs checks proposer knobs below the DAO minimums.
func TestProposeRejectsWeakKnobs(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)

	_, err := f.eng.Propose(daoID, alice, dao.TextAction{Memo: "x"}, 1_999, 100)
	assert.ErrorIs(t, err, dao.ErrActionDelayTooSmall)

	_, err = f.eng.Propose(daoID, alice, dao.TextAction{Memo: "x"}, 2_000, 99)
	assert.ErrorIs(t, err, dao.ErrMinQuorumVotesTooSmall)
}

// TestProposeUnknownDao checks proposing against a DAO that does not exist.
func TestProposeUnknownDao(t *testing.T) {
	f := setup()
	_, err := f.eng.Propose(42, alice, dao.TextAction{Memo: "x"}, 2_000, 100)
	assert.ErrorIs(t, err, contract.ErrDaoNotFound)
}

// TestConfigUpdateProposal runs a config change through the full pipeline and
// checks later proposals pick up the new policy while older ones keep their
// snapshot.
func TestConfigUpdateProposal(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)

	newPeriod := int64(10_000)
	newRate := dao.Percent(66)
	propID, err := f.eng.Propose(daoID, alice, dao.ConfigUpdate{
		VotingPeriod: &newPeriod,
		QuorumRate:   &newRate,
	}, 2_000, 100)
	assert.NoError(t, err)

	f.advance(1_500)
	_, err = f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)
	f.advance(5_500)
	assert.NoError(t, f.eng.Queue(propID))
	f.advance(2_000)
	assert.NoError(t, f.eng.Execute(propID))

	cfg, err := f.eng.GetConfig(daoID)
	assert.NoError(t, err)
	assert.Equal(t, newPeriod, cfg.VotingPeriod)
	assert.Equal(t, newRate, cfg.QuorumRate)
	assert.Equal(t, int64(1_000), cfg.VotingDelay, "untouched field survives")
	assert.Equal(t, uint64(2), cfg.Version)

	// A proposal opened under the new config gets the longer window.
	nextID, err := f.eng.Propose(daoID, alice, dao.TextAction{Memo: "y"}, 2_000, 100)
	assert.NoError(t, err)
	p, err := f.eng.GetProposal(nextID)
	assert.NoError(t, err)
	assert.Equal(t, newPeriod, p.EndTime-p.StartTime)
	assert.Equal(t, newRate, p.QuorumRate)
}

// TestPayoutExceedingTreasury checks execution fails and burns the action when
// the treasury cannot cover the payout.
func TestPayoutExceedingTreasury(t *testing.T) {
	f := setup()
	daoID := createTestDao(t, f)
	assert.NoError(t, f.eng.DepositTreasury(alice, daoID, sdk.AssetHive, 100))

	propID, err := f.eng.Propose(daoID, alice, dao.PayoutAction{
		Receiver: bob,
		Amount:   250,
		Asset:    sdk.AssetHive,
	}, 2_000, 100)
	assert.NoError(t, err)

	f.advance(1_500)
	_, err = f.eng.CastVote(propID, alice, 150, dao.SideFor)
	assert.NoError(t, err)
	f.advance(5_500)
	assert.NoError(t, f.eng.Queue(propID))
	f.advance(2_000)

	err = f.eng.Execute(propID)
	assert.ErrorIs(t, err, contract.ErrInsufficientTreasury)
	// Extraction committed before the executor ran.
	assertState(t, f, propID, dao.ProposalExtracted)
	assert.Equal(t, dao.Amount(100), f.eng.TreasuryBalance(daoID, sdk.AssetHive))
}
