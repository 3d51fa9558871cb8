package dao

import "agora_dao/sdk"

// Instance is the immutable identity record of one DAO: which governance
// asset it belongs to, who minted it, and the spent witness that proves the
// asset family was claimed exactly once.
type Instance struct {
	ID        uint64
	Asset     sdk.Asset
	Creator   sdk.Address
	CreatedAt Timestamp
	Witness   string
}

// EncodeInstance serializes a DAO identity record.
func EncodeInstance(inst *Instance) []byte {
	w := newWriter()
	w.writeUint64(inst.ID)
	w.writeString(inst.Asset.String())
	w.writeAddress(inst.Creator)
	w.writeInt64(inst.CreatedAt)
	w.writeString(inst.Witness)
	return w.bytes()
}

// DecodeInstance is the inverse of EncodeInstance.
func DecodeInstance(data []byte) (*Instance, error) {
	r := newReader(data)
	var inst Instance
	var err error
	if inst.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	asset, err := r.readString()
	if err != nil {
		return nil, err
	}
	inst.Asset = sdk.Asset(asset)
	if inst.Creator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if inst.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if inst.Witness, err = r.readString(); err != nil {
		return nil, err
	}
	return &inst, nil
}
