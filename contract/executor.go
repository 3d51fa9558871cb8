package contract

import (
	"github.com/pkg/errors"

	"agora_dao/dao"
)

// ActionExecutor consumes an extracted action. Implementations must call
// act.Consume exactly once on success; Execute treats a returned-but-unconsumed
// action as a dropped payload.
type ActionExecutor interface {
	Apply(daoID uint64, act *dao.Action) error
}

// defaultExecutor handles the three built-in payload kinds.
type defaultExecutor struct {
	e *Engine
}

func (x *defaultExecutor) Apply(daoID uint64, act *dao.Action) error {
	payload, err := act.Consume(daoID)
	if err != nil {
		return err
	}
	switch pl := payload.(type) {
	case dao.TextAction:
		// Signaling only. Passing was the whole effect.
		return nil

	case dao.ConfigUpdate:
		cfg, err := x.e.loadConfig(daoID)
		if err != nil {
			return err
		}
		next, err := pl.ApplyTo(*cfg)
		if err != nil {
			return errors.Wrapf(err, "config update for dao %d", daoID)
		}
		x.e.saveConfig(daoID, &next)
		x.e.emit(ConfigUpdatedEvent{
			DaoID:          daoID,
			VotingDelay:    next.VotingDelay,
			VotingPeriod:   next.VotingPeriod,
			QuorumRate:     uint64(next.QuorumRate),
			MinActionDelay: next.MinActionDelay,
			MinQuorumVotes: uint64(next.MinQuorumVotes),
			Version:        next.Version,
		})
		return nil

	case dao.PayoutAction:
		if err := x.e.removeTreasuryFunds(daoID, pl.Asset, pl.Amount); err != nil {
			return err
		}
		x.e.ledger.Deposit(pl.Receiver, pl.Asset, uint64(pl.Amount))
		return nil

	default:
		return errors.Errorf("unknown action kind %d", payload.Kind())
	}
}
