package store

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctvault/internal/crypto"
	domaintypes "acctvault/internal/domain/types"
	"acctvault/internal/fault"
	"acctvault/internal/nonce"
)

func samplePayload() *payload {
	svc := "example.com"
	at := time.UnixMilli(1_700_000_000_000).UTC()
	p := &payload{
		records: []*domaintypes.AccountRecord{
			{
				ID:           0,
				Children:     domaintypes.IDSet{2},
				Name:         "root",
				CustomFields: map[string]string{},
				CreateTime:   at,
				ModifyTime:   at,
			},
			nil,
			{
				ID:           2,
				Parent:       domaintypes.AccountID(0).Ptr(),
				Name:         "leaf",
				Service:      &svc,
				Password:     []byte{1, 2, 3},
				CustomFields: map[string]string{"b": "2", "a": "1"},
				CreateTime:   at,
				ModifyTime:   at.Add(time.Second),
			},
		},
	}
	for i := range p.secondaryKey {
		p.secondaryKey[i] = byte(i)
	}
	for i := range p.secondaryNonce {
		p.secondaryNonce[i] = byte(100 + i)
	}
	return p
}

func TestPayload_RoundTrip(t *testing.T) {
	p := samplePayload()
	got, err := decodePayload(encodePayload(p))
	require.NoError(t, err)

	assert.Equal(t, p.secondaryKey, got.secondaryKey)
	assert.Equal(t, p.secondaryNonce, got.secondaryNonce)
	require.Len(t, got.records, 3)
	assert.Nil(t, got.records[1])
	assert.Equal(t, p.records[2].CustomFields, got.records[2].CustomFields)
	assert.Equal(t, *p.records[2].Parent, *got.records[2].Parent)
	assert.Equal(t, p.records[2].Password, got.records[2].Password)
	assert.True(t, p.records[2].ModifyTime.Equal(got.records[2].ModifyTime))
	assert.Equal(t, domaintypes.IDSet{2}, got.records[0].Children)
}

func TestPayload_Deterministic(t *testing.T) {
	a := encodePayload(samplePayload())
	b := encodePayload(samplePayload())
	assert.Equal(t, a, b)
}

func TestPayload_TombstoneIsOneByte(t *testing.T) {
	p := &payload{records: []*domaintypes.AccountRecord{nil, nil}}
	b := encodePayload(p)
	assert.Len(t, b, crypto.KeySize+crypto.NonceSize+8+2)
	assert.Equal(t, []byte{0, 0}, b[len(b)-2:])
}

func TestPayload_EveryTruncationFails(t *testing.T) {
	full := encodePayload(samplePayload())
	for cut := 0; cut < len(full); cut++ {
		_, err := decodePayload(full[:cut])
		require.Error(t, err, "cut at %d", cut)
		require.True(t, fault.IsErrFormat(err), "cut at %d: %v", cut, err)
	}
}

func TestPayload_Rejects(t *testing.T) {
	full := encodePayload(samplePayload())
	header := crypto.KeySize + crypto.NonceSize + 8

	badFlag := append([]byte{}, full...)
	badFlag[header] = 7
	_, err := decodePayload(badFlag)
	assert.ErrorIs(t, err, fault.ErrInvalidFlag)

	_, err = decodePayload(append(append([]byte{}, full...), 0))
	assert.ErrorIs(t, err, fault.ErrTrailingBytes)

	huge := append([]byte{}, full[:header-8]...)
	huge = append(huge, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f)
	_, err = decodePayload(huge)
	assert.ErrorIs(t, err, fault.ErrTruncated)
}

// sealed writes p as a correctly encrypted file so that decoding, not
// authentication, is what fails.
func sealed(t *testing.T, plain []byte) string {
	t.Helper()
	n := nonce.Bytes(1)
	ct, err := crypto.Seal(crypto.HashPassword([]byte("pw1")), crypto.Nonce(n), plain)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "db")
	require.NoError(t, os.WriteFile(path, append(n[:], ct...), 0o600))
	return path
}

func TestOpen_AuthenticatedButMalformed(t *testing.T) {
	full := encodePayload(samplePayload())

	_, err := Open(sealed(t, full[:len(full)-3]), []byte("pw1"))
	assert.ErrorIs(t, err, fault.ErrTruncated)
	assert.False(t, fault.IsErrCrypto(err))

	p := samplePayload()
	p.records[0].Children = nil // leaf still claims root as parent
	_, err = Open(sealed(t, encodePayload(p)), []byte("pw1"))
	assert.ErrorIs(t, err, fault.ErrInconsistentGraph)
}

func TestOpen_SampleFile(t *testing.T) {
	d, err := Open(sealed(t, encodePayload(samplePayload())), []byte("pw1"))
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, uint64(1), d.NonceCounter())
	assert.Equal(t, 3, d.Accounts().Len())
	assert.Equal(t, 2, d.Accounts().LiveCount())
	s, err := d.Accounts().ShortForm(2)
	require.NoError(t, err)
	assert.Equal(t, "2. leaf", s)
}

func TestSave_CounterExhausted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	d, err := Create(path, []byte("pw1"))
	require.NoError(t, err)
	defer d.Close()
	d.counter = math.MaxUint64

	err = d.Save()
	assert.ErrorIs(t, err, fault.ErrNonceOverflow)
	assert.Equal(t, uint64(math.MaxUint64), d.NonceCounter())
	assert.NoFileExists(t, path)

	d.counter = math.MaxUint64 - 1
	require.NoError(t, d.Save())
	assert.Equal(t, uint64(math.MaxUint64), d.NonceCounter())
	assert.ErrorIs(t, d.Save(), fault.ErrNonceOverflow)

	back, err := Open(path, []byte("pw1"))
	require.NoError(t, err)
	defer back.Close()
	assert.Equal(t, uint64(math.MaxUint64), back.NonceCounter())
}
