package dao

import (
	"bytes"
	"encoding/binary"

	"agora_dao/sdk"

	"github.com/pkg/errors"
)

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeAmount(v Amount) {
	w.writeUint64(uint64(v))
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

func (w *binWriter) writeOptionalInt64(ptr *int64) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeInt64(*ptr)
}

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return sdk.Address(s), nil
}

func (r *binReader) readOptionalInt64() (*int64, error) {
	ok, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	val, err := r.readInt64()
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// ------------------------------------------------------------------
// Config
// ------------------------------------------------------------------

// EncodeConfig serializes a config to a compact binary form.
func EncodeConfig(cfg *Config) []byte {
	w := newWriter()
	w.writeInt64(cfg.VotingDelay)
	w.writeInt64(cfg.VotingPeriod)
	w.writeUint64(uint64(cfg.QuorumRate))
	w.writeInt64(cfg.MinActionDelay)
	w.writeAmount(cfg.MinQuorumVotes)
	w.writeUint64(cfg.Version)
	return w.bytes()
}

// DecodeConfig is the inverse of EncodeConfig.
func DecodeConfig(data []byte) (*Config, error) {
	r := newReader(data)
	var cfg Config
	var err error
	if cfg.VotingDelay, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.VotingPeriod, err = r.readInt64(); err != nil {
		return nil, err
	}
	rate, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	cfg.QuorumRate = FixedPoint(rate)
	if cfg.MinActionDelay, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.MinQuorumVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	if cfg.Version, err = r.readUint64(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ------------------------------------------------------------------
// Action payloads
// ------------------------------------------------------------------

func encodePayload(w *binWriter, payload ActionPayload) {
	if payload == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.buf.WriteByte(byte(payload.Kind()))
	switch p := payload.(type) {
	case TextAction:
		w.writeString(p.Memo)
	case PayoutAction:
		w.writeAddress(p.Receiver)
		w.writeAmount(p.Amount)
		w.writeString(p.Asset.String())
	case ConfigUpdate:
		w.writeOptionalInt64(p.VotingDelay)
		w.writeOptionalInt64(p.VotingPeriod)
		if p.QuorumRate == nil {
			w.writeBool(false)
		} else {
			w.writeBool(true)
			w.writeUint64(uint64(*p.QuorumRate))
		}
		w.writeOptionalInt64(p.MinActionDelay)
		if p.MinQuorumVotes == nil {
			w.writeBool(false)
		} else {
			w.writeBool(true)
			w.writeAmount(*p.MinQuorumVotes)
		}
	}
}

func decodePayload(r *binReader) (ActionPayload, error) {
	present, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	kind, err := r.readByte()
	if err != nil {
		return nil, err
	}
	switch ActionKind(kind) {
	case ActionKindText:
		memo, err := r.readString()
		if err != nil {
			return nil, err
		}
		return TextAction{Memo: memo}, nil
	case ActionKindPayout:
		var p PayoutAction
		if p.Receiver, err = r.readAddress(); err != nil {
			return nil, err
		}
		if p.Amount, err = r.readAmount(); err != nil {
			return nil, err
		}
		asset, err := r.readString()
		if err != nil {
			return nil, err
		}
		p.Asset = sdk.Asset(asset)
		return p, nil
	case ActionKindConfigUpdate:
		var p ConfigUpdate
		if p.VotingDelay, err = r.readOptionalInt64(); err != nil {
			return nil, err
		}
		if p.VotingPeriod, err = r.readOptionalInt64(); err != nil {
			return nil, err
		}
		ok, err := r.readBool()
		if err != nil {
			return nil, err
		}
		if ok {
			rate, err := r.readUint64()
			if err != nil {
				return nil, err
			}
			fp := FixedPoint(rate)
			p.QuorumRate = &fp
		}
		if p.MinActionDelay, err = r.readOptionalInt64(); err != nil {
			return nil, err
		}
		ok, err = r.readBool()
		if err != nil {
			return nil, err
		}
		if ok {
			amt, err := r.readAmount()
			if err != nil {
				return nil, err
			}
			p.MinQuorumVotes = &amt
		}
		return p, nil
	default:
		return nil, errors.Errorf("unknown action kind %d", kind)
	}
}

// ------------------------------------------------------------------
// Proposal
// ------------------------------------------------------------------

// EncodeProposal serializes a proposal.
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeUint64(p.DaoID)
	w.writeAddress(p.Proposer)
	w.writeInt64(p.StartTime)
	w.writeInt64(p.EndTime)
	w.writeAmount(p.ForVotes)
	w.writeAmount(p.AgainstVotes)
	w.writeInt64(p.ETA)
	w.writeInt64(p.ActionDelay)
	w.writeAmount(p.QuorumVotes)
	w.writeUint64(uint64(p.QuorumRate))
	encodePayload(w, p.Payload)
	return w.bytes()
}

// DecodeProposal is the inverse of EncodeProposal.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	var p Proposal
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.DaoID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Proposer, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.StartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.ForVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.AgainstVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.ETA, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.ActionDelay, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.QuorumVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	rate, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	p.QuorumRate = FixedPoint(rate)
	if p.Payload, err = decodePayload(r); err != nil {
		return nil, err
	}
	return &p, nil
}

// ------------------------------------------------------------------
// Vote receipt
// ------------------------------------------------------------------

// EncodeVoteReceipt serializes a receipt.
func EncodeVoteReceipt(v *VoteReceipt) []byte {
	w := newWriter()
	w.writeUint64(v.ID)
	w.writeUint64(v.DaoID)
	w.writeUint64(v.ProposalID)
	w.writeAddress(v.Voter)
	w.writeAmount(v.Staked)
	w.buf.WriteByte(byte(v.Side))
	w.writeInt64(v.EndTime)
	return w.bytes()
}

// DecodeVoteReceipt is the inverse of EncodeVoteReceipt.
func DecodeVoteReceipt(data []byte) (*VoteReceipt, error) {
	r := newReader(data)
	var v VoteReceipt
	var err error
	if v.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.DaoID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.ProposalID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.Voter, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.Staked, err = r.readAmount(); err != nil {
		return nil, err
	}
	side, err := r.readByte()
	if err != nil {
		return nil, err
	}
	v.Side = Side(side)
	if v.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &v, nil
}
