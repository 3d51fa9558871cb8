package contract

import (
	"sync"

	"github.com/benbjohnson/clock"

	"agora_dao/dao"
	"agora_dao/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Governance Engine
////////////////////////////////////////////////////////////////////////////////

// Engine is the host-facing facade. It owns the storage layout, the stake
// ledger hookup and event emission; all lifecycle rules live in the dao
// package and are re-derived per call.
type Engine struct {
	state    sdk.State
	ledger   sdk.Ledger
	clock    clock.Clock
	sink     EventSink
	executor ActionExecutor

	locks [lockStripes]sync.Mutex
}

// lockStripes bounds the mutex table: proposals hash onto a fixed stripe set
// instead of growing one mutex per proposal ever touched.
const lockStripes = 64

// New wires an engine over the given storage and ledger. A nil clock falls
// back to wall time and a nil sink drops events.
func New(state sdk.State, ledger sdk.Ledger, clk clock.Clock, sink EventSink) *Engine {
	if clk == nil {
		clk = clock.New()
	}
	if sink == nil {
		sink = NopSink{}
	}
	e := &Engine{
		state:  state,
		ledger: ledger,
		clock:  clk,
		sink:   sink,
	}
	e.executor = &defaultExecutor{e: e}
	return e
}

// SetExecutor swaps in a custom action executor, mostly for hosts that route
// payload kinds we do not know about.
func (e *Engine) SetExecutor(x ActionExecutor) {
	e.executor = x
}

// now reads the clock in unix milliseconds, the time unit of every stored record.
func (e *Engine) now() dao.Timestamp {
	return e.clock.Now().UnixMilli()
}

// proposalLock serializes tally mutations per proposal. Proposals sharing a
// stripe contend with each other, which is safe, just slightly pessimistic.
func (e *Engine) proposalLock(id uint64) *sync.Mutex {
	return &e.locks[id%lockStripes]
}

// CreateDAO claims the witness and mints a new DAO over its governance asset.
// The asset mapping doubles as the spent marker, one DAO per asset, forever.
func (e *Engine) CreateDAO(creator sdk.Address, w *Witness, cfg dao.Config) (uint64, error) {
	if !creator.IsValid() {
		return 0, ErrInvalidAddress
	}
	if _, taken := e.state.Get(daoByAssetKey(w.Asset)); taken {
		return 0, ErrWitnessSpent
	}
	if _, spent := e.state.Get(witnessKey(w.ID)); spent {
		return 0, ErrWitnessSpent
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	cfg.Version = 1

	now := e.now()
	id := e.nextID(DaosCount)
	inst := &dao.Instance{
		ID:        id,
		Asset:     w.Asset,
		Creator:   creator,
		CreatedAt: now,
		Witness:   w.ID.String(),
	}
	e.saveInstance(inst)
	e.saveConfig(id, &cfg)
	e.setCount(daoByAssetKey(w.Asset), id)
	e.state.Set(witnessKey(w.ID), "1")

	e.emit(DaoCreatedEvent{
		DaoID:   id,
		Asset:   w.Asset.String(),
		Creator: creator.String(),
		At:      now,
	})
	return id, nil
}

// DaoByAsset resolves the one DAO governing the asset, if any.
func (e *Engine) DaoByAsset(asset sdk.Asset) (uint64, error) {
	id := e.getCount(daoByAssetKey(asset))
	if id == 0 {
		return 0, ErrDaoNotFound
	}
	return id, nil
}

// GetConfig returns the DAO's current policy snapshot.
func (e *Engine) GetConfig(daoID uint64) (*dao.Config, error) {
	return e.loadConfig(daoID)
}

// GetInstance returns the DAO identity record.
func (e *Engine) GetInstance(daoID uint64) (*dao.Instance, error) {
	return e.loadInstance(daoID)
}
