package dao

// Config is the mutable, versioned policy object for one DAO. Created at
// genesis, mutated only through a successfully executed ConfigUpdate action.
type Config struct {
	// VotingDelay is the gap between proposal creation and voting start.
	VotingDelay Duration
	// VotingPeriod is the length of the voting window.
	VotingPeriod Duration
	// QuorumRate is the required for-vote fraction of total cast votes.
	QuorumRate FixedPoint
	// MinActionDelay is the smallest gap a proposal may request between
	// voting end and execution eligibility.
	MinActionDelay Duration
	// MinQuorumVotes is the smallest absolute for-weight a proposal may require.
	MinQuorumVotes Amount
	// Version counts successful updates, starting at 1 at genesis.
	Version uint64
}

// Validate checks the full invariant set. It runs at genesis and after every
// ConfigUpdate substitution, before anything is committed.
func (c *Config) Validate() error {
	if c.QuorumRate == 0 || c.QuorumRate > RateScale {
		return ErrInvalidQuorumRate
	}
	if c.VotingDelay <= 0 {
		return ErrZeroVotingDelay
	}
	if c.VotingPeriod <= 0 {
		return ErrZeroVotingPeriod
	}
	if c.MinActionDelay <= 0 {
		return ErrZeroMinActionDelay
	}
	if c.MinQuorumVotes == 0 {
		return ErrZeroMinQuorumVotes
	}
	return nil
}

// ConfigUpdate carries optional overrides for each Config field. Nil means
// "leave unchanged". Explicit nullability matters here: zero is a legitimately
// attempted (if rejected) input, so it cannot double as a sentinel.
type ConfigUpdate struct {
	VotingDelay    *Duration
	VotingPeriod   *Duration
	QuorumRate     *FixedPoint
	MinActionDelay *Duration
	MinQuorumVotes *Amount
}

// ApplyTo substitutes every present override into a copy of cur, then
// re-validates the whole invariant set in one shot. The update is accepted or
// rejected as a unit; on error the returned Config must be discarded and cur
// stays untouched.
func (u *ConfigUpdate) ApplyTo(cur Config) (Config, error) {
	next := cur
	if u.VotingDelay != nil {
		next.VotingDelay = *u.VotingDelay
	}
	if u.VotingPeriod != nil {
		next.VotingPeriod = *u.VotingPeriod
	}
	if u.QuorumRate != nil {
		next.QuorumRate = *u.QuorumRate
	}
	if u.MinActionDelay != nil {
		next.MinActionDelay = *u.MinActionDelay
	}
	if u.MinQuorumVotes != nil {
		next.MinQuorumVotes = *u.MinQuorumVotes
	}
	if err := next.Validate(); err != nil {
		return Config{}, err
	}
	next.Version = cur.Version + 1
	return next, nil
}
