package contract

import (
	"agora_dao/dao"
	"agora_dao/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Proposal Lifecycle
////////////////////////////////////////////////////////////////////////////////

// Propose opens a new proposal under the DAO's current config. The returned id
// is global across all DAOs.
func (e *Engine) Propose(daoID uint64, proposer sdk.Address, payload dao.ActionPayload, actionDelay dao.Duration, quorumVotes dao.Amount) (uint64, error) {
	if !proposer.IsValid() {
		return 0, ErrInvalidAddress
	}
	cfg, err := e.loadConfig(daoID)
	if err != nil {
		return 0, err
	}
	p, err := dao.NewProposal(*cfg, e.now(), proposer, payload, actionDelay, quorumVotes)
	if err != nil {
		return 0, err
	}
	p.ID = e.nextID(ProposalsCount)
	p.DaoID = daoID
	e.saveProposal(p)

	kind := ""
	if payload != nil {
		kind = payload.Kind().String()
	}
	e.emit(ProposalCreatedEvent{
		DaoID:       daoID,
		ProposalID:  p.ID,
		Proposer:    proposer.String(),
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		ActionDelay: p.ActionDelay,
		QuorumVotes: uint64(p.QuorumVotes),
		QuorumRate:  uint64(p.QuorumRate),
		Kind:        kind,
	})
	return p.ID, nil
}

// GetProposal returns the stored proposal record.
func (e *Engine) GetProposal(id uint64) (*dao.Proposal, error) {
	return e.loadProposal(id)
}

// ProposalState derives the proposal's current lifecycle state from the clock.
func (e *Engine) ProposalState(id uint64) (dao.ProposalState, error) {
	p, err := e.loadProposal(id)
	if err != nil {
		return 0, err
	}
	return p.State(e.now()), nil
}

// Queue schedules an agreed proposal for execution after its action delay.
func (e *Engine) Queue(id uint64) error {
	l := e.proposalLock(id)
	l.Lock()
	defer l.Unlock()

	p, err := e.loadProposal(id)
	if err != nil {
		return err
	}
	if err := p.Queue(e.now()); err != nil {
		return err
	}
	e.saveProposal(p)

	e.emit(ProposalQueuedEvent{DaoID: p.DaoID, ProposalID: p.ID, ETA: p.ETA})
	return nil
}

// Execute extracts the proposal's action and feeds it to the executor. The
// extraction is committed before the executor runs, so a second call fails
// with ErrCannotExecute no matter what the executor did.
func (e *Engine) Execute(id uint64) error {
	l := e.proposalLock(id)
	l.Lock()
	defer l.Unlock()

	p, err := e.loadProposal(id)
	if err != nil {
		return err
	}
	now := e.now()
	act, err := p.ExtractAction(now)
	if err != nil {
		return err
	}
	e.saveProposal(p)

	if err := e.executor.Apply(p.DaoID, act); err != nil {
		return err
	}
	if !act.Consumed() {
		return dao.ErrActionDropped
	}

	e.emit(ProposalExecutedEvent{
		DaoID:      p.DaoID,
		ProposalID: p.ID,
		Kind:       act.Kind().String(),
		At:         now,
	})
	return nil
}
