package contract

import (
	"agora_dao/dao"

	"github.com/pkg/errors"
)

////////////////////////////////////////////////////////////////////////////////
// Governance State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

func (e *Engine) saveInstance(inst *dao.Instance) {
	e.state.Set(daoKey(inst.ID), string(dao.EncodeInstance(inst)))
}

func (e *Engine) loadInstance(id uint64) (*dao.Instance, error) {
	v, ok := e.state.Get(daoKey(id))
	if !ok {
		return nil, errors.Wrapf(ErrDaoNotFound, "dao %d", id)
	}
	inst, err := dao.DecodeInstance([]byte(v))
	if err != nil {
		return nil, errors.Wrapf(err, "decode dao %d", id)
	}
	return inst, nil
}

func (e *Engine) saveConfig(daoID uint64, cfg *dao.Config) {
	e.state.Set(daoConfigKey(daoID), string(dao.EncodeConfig(cfg)))
}

func (e *Engine) loadConfig(daoID uint64) (*dao.Config, error) {
	v, ok := e.state.Get(daoConfigKey(daoID))
	if !ok {
		return nil, errors.Wrapf(ErrDaoNotFound, "config for dao %d", daoID)
	}
	cfg, err := dao.DecodeConfig([]byte(v))
	if err != nil {
		return nil, errors.Wrapf(err, "decode config for dao %d", daoID)
	}
	return cfg, nil
}

func (e *Engine) saveProposal(p *dao.Proposal) {
	e.state.Set(proposalKey(p.ID), string(dao.EncodeProposal(p)))
}

func (e *Engine) loadProposal(id uint64) (*dao.Proposal, error) {
	v, ok := e.state.Get(proposalKey(id))
	if !ok {
		return nil, errors.Wrapf(ErrProposalNotFound, "proposal %d", id)
	}
	p, err := dao.DecodeProposal([]byte(v))
	if err != nil {
		return nil, errors.Wrapf(err, "decode proposal %d", id)
	}
	return p, nil
}

func (e *Engine) saveReceipt(r *dao.VoteReceipt) {
	e.state.Set(receiptKey(r.ID), string(dao.EncodeVoteReceipt(r)))
}

func (e *Engine) loadReceipt(id uint64) (*dao.VoteReceipt, error) {
	v, ok := e.state.Get(receiptKey(id))
	if !ok {
		return nil, errors.Wrapf(ErrReceiptNotFound, "receipt %d", id)
	}
	r, err := dao.DecodeVoteReceipt([]byte(v))
	if err != nil {
		return nil, errors.Wrapf(err, "decode receipt %d", id)
	}
	return r, nil
}

// deleteReceipt destroys the receipt record once its stake has been returned.
func (e *Engine) deleteReceipt(id uint64) {
	e.state.Delete(receiptKey(id))
}
