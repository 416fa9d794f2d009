package crypto

import (
	"bytes"

	"keycore-wallet/wallet-base/newbitx/misclib/encoding/base58"

	"github.com/pkg/errors"
)

// MinVersionedLen is the smallest decoded Base58Check value: one version
// byte followed by the checksum.
const MinVersionedLen = 1 + CheckSumLen

var (
	ErrTooShort         = errors.New("base58check data too short")
	ErrChecksumMismatch = errors.New("base58check checksum mismatch")
)

// VersionedBytes is a version byte plus payload, rendered as Base58Check:
//
//	base58(version || payload || checksum(version || payload))
//
// The checksum is always derived and never stored.
type VersionedBytes struct {
	version byte
	payload []byte
}

// NewVersionedBytes never fails; payload validation belongs to the callers
// giving the payload its meaning.
func NewVersionedBytes(version byte, payload []byte) *VersionedBytes {
	return &VersionedBytes{
		version: version,
		payload: append([]byte{}, payload...),
	}
}

// DecodeVersionedBytes parses a Base58Check string.
func DecodeVersionedBytes(s string) (*VersionedBytes, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, err
	}

	if len(b) < MinVersionedLen {
		return nil, errors.Wrapf(ErrTooShort, "got %d bytes, need at least %d", len(b), MinVersionedLen)
	}

	body, cksum := b[:len(b)-CheckSumLen], b[len(b)-CheckSumLen:]
	if !VerifyCheckSum(body, cksum) {
		return nil, errors.Wrapf(ErrChecksumMismatch, "got %x, want %x", cksum, CheckSum(body))
	}

	return &VersionedBytes{
		version: body[0],
		payload: append([]byte{}, body[1:]...),
	}, nil
}

func (v *VersionedBytes) Version() byte {
	return v.version
}

// Payload returns a copy of the payload.
func (v *VersionedBytes) Payload() []byte {
	return append([]byte{}, v.payload...)
}

// Len returns the payload length.
func (v *VersionedBytes) Len() int {
	return len(v.payload)
}

// Checksum returns the checksum over version and payload.
func (v *VersionedBytes) Checksum() [CheckSumLen]byte {
	return CheckSum(v.body())
}

func (v *VersionedBytes) body() []byte {
	b := make([]byte, 0, 1+len(v.payload)+CheckSumLen)
	b = append(b, v.version)
	return append(b, v.payload...)
}

// Bytes returns version || payload || checksum.
func (v *VersionedBytes) Bytes() []byte {
	b := v.body()
	cksum := CheckSum(b)
	return append(b, cksum[:]...)
}

// String returns the Base58Check encoding.
func (v *VersionedBytes) String() string {
	return base58.Encode(v.Bytes())
}

// Equal compares version and payload.
func (v *VersionedBytes) Equal(o *VersionedBytes) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.version == o.version && bytes.Equal(v.payload, o.payload)
}
