package contract_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"

	"agora_dao/contract"
	"agora_dao/dao"
	"agora_dao/sdk"
)

const (
	alice = sdk.Address("hive:alice")
	bob   = sdk.Address("hive:bob")
	carol = sdk.Address("hive:carol")
)

// sinkFunc adapts a closure into an EventSink so tests can capture emissions.
type sinkFunc func(contract.Event)

func (f sinkFunc) Emit(ev contract.Event) { f(ev) }

// fixture bundles an engine over fresh in-memory host services. The mock
// clock starts at unix zero so timestamps in tests are plain offsets.
type fixture struct {
	eng    *contract.Engine
	state  *sdk.MemoryState
	ledger *sdk.MemoryLedger
	clk    *clock.Mock
	events []contract.Event
}

func setup() *fixture {
	f := &fixture{
		state:  sdk.NewMemoryState(),
		ledger: sdk.NewMemoryLedger(),
		clk:    clock.NewMock(),
	}
	f.eng = contract.New(f.state, f.ledger, f.clk, sinkFunc(func(ev contract.Event) {
		f.events = append(f.events, ev)
	}))
	for _, a := range []sdk.Address{alice, bob, carol} {
		f.ledger.Deposit(a, sdk.AssetHive, 10_000)
	}
	return f
}

// advance moves the mock clock forward by ms milliseconds.
func (f *fixture) advance(ms int64) {
	f.clk.Add(time.Duration(ms) * time.Millisecond)
}

// lastEvent returns the most recent emission, nil when nothing fired yet.
func (f *fixture) lastEvent() contract.Event {
	if len(f.events) == 0 {
		return nil
	}
	return f.events[len(f.events)-1]
}

func defaultTestConfig() dao.Config {
	return dao.Config{
		VotingDelay:    1_000,
		VotingPeriod:   5_000,
		QuorumRate:     dao.Percent(50),
		MinActionDelay: 2_000,
		MinQuorumVotes: 100,
	}
}

// createTestDao mints a DAO over HIVE with the default knobs.
func createTestDao(t *testing.T, f *fixture) uint64 {
	id, err := f.eng.CreateDAO(alice, contract.NewWitness(sdk.AssetHive), defaultTestConfig())
	assert.NoError(t, err)
	assert.NotZero(t, id)
	return id
}

// createTextProposal opens a plain signaling proposal with the minimum knobs.
func createTextProposal(t *testing.T, f *fixture, daoID uint64) uint64 {
	id, err := f.eng.Propose(daoID, alice, dao.TextAction{Memo: "upgrade node infra"}, 2_000, 100)
	assert.NoError(t, err)
	return id
}

// assertState double-checks the derived lifecycle position.
func assertState(t *testing.T, f *fixture, propID uint64, want dao.ProposalState) {
	st, err := f.eng.ProposalState(propID)
	assert.NoError(t, err)
	assert.Equal(t, want, st, "expected proposal %d in %s", propID, want)
}
