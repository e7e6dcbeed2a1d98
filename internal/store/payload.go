package store

import (
	"fmt"

	"acctvault/internal/codec"
	"acctvault/internal/crypto"
	domaintypes "acctvault/internal/domain/types"
	"acctvault/internal/fault"
)

// payload is the plaintext sealed inside the account file.
type payload struct {
	secondaryKey   crypto.Key
	secondaryNonce crypto.Nonce
	records        []*domaintypes.AccountRecord // nil entries are tombstones
}

const (
	slotDeleted byte = 0
	slotPresent byte = 1
)

func encodePayload(p *payload) []byte {
	w := codec.NewWriter(crypto.KeySize + crypto.NonceSize + 8 + 128*len(p.records))
	w.PutFixed(p.secondaryKey[:])
	w.PutFixed(p.secondaryNonce[:])
	w.PutUint64(uint64(len(p.records)))
	for _, r := range p.records {
		if r == nil {
			w.PutByte(slotDeleted)
			continue
		}
		w.PutByte(slotPresent)
		encodeRecord(w, r)
	}
	return w.Bytes()
}

func encodeRecord(w *codec.Writer, r *domaintypes.AccountRecord) {
	w.PutUint64(uint64(r.ID))
	w.PutOptionalUint64(idPtr(r.Parent))
	codec.PutSet(w, r.Children)
	codec.PutSet(w, r.References)
	codec.PutSet(w, r.ReferencedBy)
	w.PutString(r.Name)
	w.PutOptionalString(r.Service)
	w.PutOptionalString(r.LoginName)
	w.PutOptionalBytes(r.Password)
	w.PutOptionalString(r.Comment)
	w.PutStringMap(r.CustomFields)
	w.PutTime(r.CreateTime)
	w.PutTime(r.ModifyTime)
}

func decodePayload(b []byte) (*payload, error) {
	r := codec.NewReader(b)
	p := &payload{}

	if err := r.ReadFixed(p.secondaryKey[:]); err != nil {
		return nil, fmt.Errorf("secondary key: %w", err)
	}
	if err := r.ReadFixed(p.secondaryNonce[:]); err != nil {
		return nil, fmt.Errorf("secondary nonce: %w", err)
	}
	n, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("account count: %w", err)
	}
	// every slot takes at least its flag byte
	if n > uint64(r.Remaining()) {
		return nil, fmt.Errorf("account count: %w: %d slots in %d bytes",
			fault.ErrTruncated, n, r.Remaining())
	}

	p.records = make([]*domaintypes.AccountRecord, n)
	for i := range p.records {
		present, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if !present {
			continue
		}
		if p.records[i], err = decodeRecord(r); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
	}
	if err := r.Done(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeRecord(r *codec.Reader) (*domaintypes.AccountRecord, error) {
	var rec domaintypes.AccountRecord
	id, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	rec.ID = domaintypes.AccountID(id)

	parent, err := r.ReadOptionalUint64()
	if err != nil {
		return nil, err
	}
	if parent != nil {
		rec.Parent = domaintypes.AccountID(*parent).Ptr()
	}

	if rec.Children, err = codec.ReadSet[domaintypes.AccountID](r); err != nil {
		return nil, err
	}
	if rec.References, err = codec.ReadSet[domaintypes.AccountID](r); err != nil {
		return nil, err
	}
	if rec.ReferencedBy, err = codec.ReadSet[domaintypes.AccountID](r); err != nil {
		return nil, err
	}
	if rec.Name, err = r.ReadString(); err != nil {
		return nil, err
	}
	if rec.Service, err = r.ReadOptionalString(); err != nil {
		return nil, err
	}
	if rec.LoginName, err = r.ReadOptionalString(); err != nil {
		return nil, err
	}
	if rec.Password, err = r.ReadOptionalBytes(); err != nil {
		return nil, err
	}
	if rec.Comment, err = r.ReadOptionalString(); err != nil {
		return nil, err
	}
	if rec.CustomFields, err = r.ReadStringMap(); err != nil {
		return nil, err
	}
	if rec.CreateTime, err = r.ReadTime(); err != nil {
		return nil, err
	}
	if rec.ModifyTime, err = r.ReadTime(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func idPtr(id *domaintypes.AccountID) *uint64 {
	if id == nil {
		return nil
	}
	v := uint64(*id)
	return &v
}
