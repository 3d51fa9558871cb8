package contract

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Event is a state-transition notification. Every operation that moves a DAO,
// proposal or receipt emits exactly one, carrying enough for an external
// indexer to reconstruct full proposal history without re-deriving states.
type Event interface {
	// Type is the short tag indexers key on.
	Type() string
	// Short renders the terse pipe-delimited log line.
	Short() string
}

// EventSink receives every emitted event. Passed into the engine explicitly;
// there is no ambient global emitter.
type EventSink interface {
	Emit(ev Event)
}

// NopSink swallows events, the default when the host does not care.
type NopSink struct{}

func (NopSink) Emit(Event) {}

// LogSink renders the pipe format through whatever log function the host hands in.
type LogSink struct {
	Logf func(string)
}

func (s LogSink) Emit(ev Event) {
	if s.Logf != nil {
		s.Logf(ev.Short())
	}
}

// JSONSink hands indexers a typed JSON payload per event.
type JSONSink struct {
	Write func(eventType string, payload []byte)
}

func (s JSONSink) Emit(ev Event) {
	if s.Write == nil {
		return
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	s.Write(ev.Type(), b)
}

//tinyjson:json
type DaoCreatedEvent struct {
	DaoID   uint64 `json:"dao_id"`
	Asset   string `json:"asset"`
	Creator string `json:"creator"`
	At      int64  `json:"at"`
}

func (DaoCreatedEvent) Type() string { return "dao_created" }

// Short gives explorers a neat ping without scanning full storage diffs.
func (ev DaoCreatedEvent) Short() string {
	return fmt.Sprintf("dc|id:%d|as:%s|by:%s", ev.DaoID, ev.Asset, ev.Creator)
}

//tinyjson:json
type ProposalCreatedEvent struct {
	DaoID       uint64 `json:"dao_id"`
	ProposalID  uint64 `json:"proposal_id"`
	Proposer    string `json:"proposer"`
	StartTime   int64  `json:"start_time"`
	EndTime     int64  `json:"end_time"`
	ActionDelay int64  `json:"action_delay"`
	QuorumVotes uint64 `json:"quorum_votes"`
	QuorumRate  uint64 `json:"quorum_rate"`
	Kind        string `json:"kind"`
}

func (ProposalCreatedEvent) Type() string { return "proposal_created" }

// Short keeps observers updated with a short pc line for every new motion.
func (ev ProposalCreatedEvent) Short() string {
	return fmt.Sprintf("pc|id:%d|prId:%d|by:%s|s:%d|e:%d",
		ev.DaoID, ev.ProposalID, ev.Proposer, ev.StartTime, ev.EndTime)
}

//tinyjson:json
type VoteCastEvent struct {
	DaoID      uint64 `json:"dao_id"`
	ProposalID uint64 `json:"proposal_id"`
	ReceiptID  uint64 `json:"receipt_id"`
	Voter      string `json:"voter"`
	Side       string `json:"side"`
	Amount     uint64 `json:"amount"`
	At         int64  `json:"at"`
}

func (VoteCastEvent) Type() string { return "vote_cast" }

// Short includes side plus weight so quorum math can be replayed from logs only.
func (ev VoteCastEvent) Short() string {
	return fmt.Sprintf("v|prId:%d|rId:%d|by:%s|s:%s|w:%d",
		ev.ProposalID, ev.ReceiptID, ev.Voter, ev.Side, ev.Amount)
}

//tinyjson:json
type VoteChangedEvent struct {
	DaoID      uint64 `json:"dao_id"`
	ProposalID uint64 `json:"proposal_id"`
	ReceiptID  uint64 `json:"receipt_id"`
	Voter      string `json:"voter"`
	NewSide    string `json:"new_side"`
	Amount     uint64 `json:"amount"`
	At         int64  `json:"at"`
}

func (VoteChangedEvent) Type() string { return "vote_changed" }

func (ev VoteChangedEvent) Short() string {
	return fmt.Sprintf("vc|prId:%d|rId:%d|by:%s|ns:%s|w:%d",
		ev.ProposalID, ev.ReceiptID, ev.Voter, ev.NewSide, ev.Amount)
}

//tinyjson:json
type VoteRevokedEvent struct {
	DaoID      uint64 `json:"dao_id"`
	ProposalID uint64 `json:"proposal_id"`
	ReceiptID  uint64 `json:"receipt_id"`
	Voter      string `json:"voter"`
	Returned   uint64 `json:"returned"`
	At         int64  `json:"at"`
}

func (VoteRevokedEvent) Type() string { return "vote_revoked" }

func (ev VoteRevokedEvent) Short() string {
	return fmt.Sprintf("vr|prId:%d|rId:%d|by:%s|ret:%d",
		ev.ProposalID, ev.ReceiptID, ev.Voter, ev.Returned)
}

//tinyjson:json
type VoteUnstakedEvent struct {
	DaoID      uint64 `json:"dao_id"`
	ProposalID uint64 `json:"proposal_id"`
	ReceiptID  uint64 `json:"receipt_id"`
	Voter      string `json:"voter"`
	Returned   uint64 `json:"returned"`
	At         int64  `json:"at"`
}

func (VoteUnstakedEvent) Type() string { return "vote_unstaked" }

func (ev VoteUnstakedEvent) Short() string {
	return fmt.Sprintf("vu|prId:%d|rId:%d|by:%s|ret:%d",
		ev.ProposalID, ev.ReceiptID, ev.Voter, ev.Returned)
}

//tinyjson:json
type ProposalQueuedEvent struct {
	DaoID      uint64 `json:"dao_id"`
	ProposalID uint64 `json:"proposal_id"`
	ETA        int64  `json:"eta"`
}

func (ProposalQueuedEvent) Type() string { return "proposal_queued" }

// Short logs when a passed motion becomes schedulable so runners can queue it.
func (ev ProposalQueuedEvent) Short() string {
	return fmt.Sprintf("pq|prId:%d|eta:%s", ev.ProposalID, strconv.FormatInt(ev.ETA, 10))
}

//tinyjson:json
type ProposalExecutedEvent struct {
	DaoID      uint64 `json:"dao_id"`
	ProposalID uint64 `json:"proposal_id"`
	Kind       string `json:"kind"`
	At         int64  `json:"at"`
}

func (ProposalExecutedEvent) Type() string { return "proposal_executed" }

// Short leaves a hint whether funds moved or config toggled after execution.
func (ev ProposalExecutedEvent) Short() string {
	return fmt.Sprintf("px|prId:%d|k:%s", ev.ProposalID, ev.Kind)
}

//tinyjson:json
type ConfigUpdatedEvent struct {
	DaoID          uint64 `json:"dao_id"`
	VotingDelay    int64  `json:"voting_delay"`
	VotingPeriod   int64  `json:"voting_period"`
	QuorumRate     uint64 `json:"quorum_rate"`
	MinActionDelay int64  `json:"min_action_delay"`
	MinQuorumVotes uint64 `json:"min_quorum_votes"`
	Version        uint64 `json:"version"`
}

func (ConfigUpdatedEvent) Type() string { return "config_updated" }

// Short spells out the resulting values so auditors can track sensitive flips.
func (ev ConfigUpdatedEvent) Short() string {
	return fmt.Sprintf("cu|id:%d|vd:%d|vp:%d|qr:%d|mad:%d|mqv:%d|v:%d",
		ev.DaoID, ev.VotingDelay, ev.VotingPeriod, ev.QuorumRate,
		ev.MinActionDelay, ev.MinQuorumVotes, ev.Version)
}

//tinyjson:json
type TreasuryDepositEvent struct {
	DaoID  uint64 `json:"dao_id"`
	From   string `json:"from"`
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
}

func (TreasuryDepositEvent) Type() string { return "treasury_deposit" }

// Short tells indexing bots the treasury got beefed up.
func (ev TreasuryDepositEvent) Short() string {
	return fmt.Sprintf("af|id:%d|by:%s|am:%d|as:%s", ev.DaoID, ev.From, ev.Amount, ev.Asset)
}

// emit fans the event out to the configured sink.
func (e *Engine) emit(ev Event) {
	if e.sink != nil {
		e.sink.Emit(ev)
	}
}
