package dao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agora_dao/dao"
)

// TestConfigValidate checks every invariant rejects its own violation.
func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*dao.Config)
		erron error
	}{
		{"zero rate", func(c *dao.Config) { c.QuorumRate = 0 }, dao.ErrInvalidQuorumRate},
		{"rate above one", func(c *dao.Config) { c.QuorumRate = dao.RateScale + 1 }, dao.ErrInvalidQuorumRate},
		{"zero delay", func(c *dao.Config) { c.VotingDelay = 0 }, dao.ErrZeroVotingDelay},
		{"negative delay", func(c *dao.Config) { c.VotingDelay = -1 }, dao.ErrZeroVotingDelay},
		{"zero period", func(c *dao.Config) { c.VotingPeriod = 0 }, dao.ErrZeroVotingPeriod},
		{"zero action delay", func(c *dao.Config) { c.MinActionDelay = 0 }, dao.ErrZeroMinActionDelay},
		{"zero quorum votes", func(c *dao.Config) { c.MinQuorumVotes = 0 }, dao.ErrZeroMinQuorumVotes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mut(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.erron)
		})
	}

	good := testConfig()
	assert.NoError(t, good.Validate())

	// Rate of exactly one is the inclusive upper bound.
	good.QuorumRate = dao.RateScale
	assert.NoError(t, good.Validate())
}

// TestConfigUpdateApplies checks present overrides land and absent ones dont.
func TestConfigUpdateApplies(t *testing.T) {
	cur := testConfig()
	period := int64(10_000)
	votes := dao.Amount(500)
	u := dao.ConfigUpdate{VotingPeriod: &period, MinQuorumVotes: &votes}

	next, err := u.ApplyTo(cur)
	assert.NoError(t, err)
	assert.Equal(t, period, next.VotingPeriod)
	assert.Equal(t, votes, next.MinQuorumVotes)
	assert.Equal(t, cur.VotingDelay, next.VotingDelay)
	assert.Equal(t, cur.QuorumRate, next.QuorumRate)
	assert.Equal(t, cur.Version+1, next.Version)
}

// TestConfigUpdateAtomic checks one bad override rejects the whole batch.
func TestConfigUpdateAtomic(t *testing.T) {
	cur := testConfig()
	period := int64(10_000)
	badRate := dao.FixedPoint(0)
	u := dao.ConfigUpdate{VotingPeriod: &period, QuorumRate: &badRate}

	next, err := u.ApplyTo(cur)
	assert.ErrorIs(t, err, dao.ErrInvalidQuorumRate)
	assert.Equal(t, dao.Config{}, next, "rejected batch returns nothing usable")
	assert.Equal(t, int64(5_000), cur.VotingPeriod, "input struct untouched")
}

// TestConfigUpdateZeroIsExplicit checks zero rides in through a pointer rather
// than being mistaken for absent, and still gets rejected on its own merits.
func TestConfigUpdateZeroIsExplicit(t *testing.T) {
	cur := testConfig()
	zero := int64(0)
	u := dao.ConfigUpdate{VotingDelay: &zero}

	_, err := u.ApplyTo(cur)
	assert.ErrorIs(t, err, dao.ErrZeroVotingDelay)

	// The empty update is legal and still bumps the version.
	next, err := (&dao.ConfigUpdate{}).ApplyTo(cur)
	assert.NoError(t, err)
	assert.Equal(t, cur.Version+1, next.Version)
}
