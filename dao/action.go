package dao

import "agora_dao/sdk"

// ActionKind discriminates the payload variants a proposal can carry.
type ActionKind uint8

const (
	ActionKindText         ActionKind = 1
	ActionKindConfigUpdate ActionKind = 2
	ActionKindPayout       ActionKind = 3
)

// String prints the kind as lower-case text for events and logs.
// Example payload: dao.ActionKindPayout.String()
func (k ActionKind) String() string {
	switch k {
	case ActionKindText:
		return "text"
	case ActionKindConfigUpdate:
		return "config_update"
	case ActionKindPayout:
		return "payout"
	default:
		return "unspecified"
	}
}

// ActionPayload is what an agreed proposal hands to the execution collaborator.
type ActionPayload interface {
	Kind() ActionKind
}

// TextAction is a signaling motion with no on-chain effect beyond its record.
type TextAction struct {
	Memo string
}

func (TextAction) Kind() ActionKind { return ActionKindText }

// PayoutAction disburses treasury funds to a receiver once executed.
type PayoutAction struct {
	Receiver sdk.Address
	Amount   Amount
	Asset    sdk.Asset
}

func (PayoutAction) Kind() ActionKind { return ActionKindPayout }

// Kind lets ConfigUpdate ride through the execution pipeline as a payload.
func (ConfigUpdate) Kind() ActionKind { return ActionKindConfigUpdate }

// Action is the hot-potato handed out by ExtractAction: it provably originates
// from one proposal of one DAO and must be consumed exactly once before the
// call that extracted it completes. Dropping it unconsumed is a loud failure.
type Action struct {
	daoID      uint64
	proposalID uint64
	payload    ActionPayload
	consumed   bool
}

// DaoID reports which DAO minted the action.
func (a *Action) DaoID() uint64 { return a.daoID }

// ProposalID reports which proposal the payload was extracted from.
func (a *Action) ProposalID() uint64 { return a.proposalID }

// Consumed reports whether the payload was already taken.
func (a *Action) Consumed() bool { return a.consumed }

// Kind reports the payload variant without releasing it.
func (a *Action) Kind() ActionKind { return a.payload.Kind() }

// Consume verifies the DAO identity tag and releases the payload exactly once.
func (a *Action) Consume(daoID uint64) (ActionPayload, error) {
	if a.daoID != daoID {
		return nil, ErrDaoMismatch
	}
	if a.consumed {
		return nil, ErrActionConsumed
	}
	a.consumed = true
	return a.payload, nil
}
