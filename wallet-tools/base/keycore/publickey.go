package keycore

import (
	"keycore-wallet/wallet-tools/base/crypto"
	"keycore-wallet/wallet-tools/base/crypto/key"

	"github.com/pkg/errors"
)

// These constants define the lengths of serialized public keys.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

const (
	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
)

// PublicKey is a serialized EC point tagged with an address version.
type PublicKey struct {
	vb         *crypto.VersionedBytes
	compressed bool
}

// NewPublicKey derives the public key of priv. A nil deriver selects
// key.DefaultDeriver.
func NewPublicKey(priv *PrivateKey, addrVersion byte, d key.Deriver) (*PublicKey, error) {
	if priv == nil {
		return nil, errors.Wrap(ErrInvalidKeyLength, "nil private key")
	}

	if d == nil {
		d = key.DefaultDeriver
	}

	pub, err := d.DerivePublicKey(priv.PrivateKeyBytes(), priv.MakesCompressedPublicKey())
	if err != nil {
		return nil, errors.WithMessage(err, "derive public key failed")
	}

	compressed, err := pointCompression(pub)
	if err != nil {
		return nil, err
	}

	if compressed != priv.MakesCompressedPublicKey() {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "deriver returned %d bytes", len(pub))
	}

	return &PublicKey{
		vb:         crypto.NewVersionedBytes(addrVersion, pub),
		compressed: compressed,
	}, nil
}

// NewPublicKeyFromBytes wraps an already serialized point.
func NewPublicKeyFromBytes(addrVersion byte, pub []byte) (*PublicKey, error) {
	compressed, err := pointCompression(pub)
	if err != nil {
		return nil, err
	}

	return &PublicKey{
		vb:         crypto.NewVersionedBytes(addrVersion, pub),
		compressed: compressed,
	}, nil
}

func pointCompression(pub []byte) (bool, error) {
	switch {
	case len(pub) == PubKeyBytesLenCompressed && pub[0]&^1 == pubkeyCompressed:
		return true, nil
	case len(pub) == PubKeyBytesLenUncompressed && pub[0] == pubkeyUncompressed:
		return false, nil
	case len(pub) == 0:
		return false, errors.Wrap(ErrInvalidPublicKey, "empty")
	default:
		return false, errors.Wrapf(ErrInvalidPublicKey, "%d bytes with prefix 0x%02x", len(pub), pub[0])
	}
}

func (p *PublicKey) Version() byte {
	return p.vb.Version()
}

// Bytes returns the serialized point.
func (p *PublicKey) Bytes() []byte {
	return p.vb.Payload()
}

func (p *PublicKey) IsCompressed() bool {
	return p.compressed
}

// PublicKeyHash returns hash160 of the serialized point, as seen in addresses.
func (p *PublicKey) PublicKeyHash() []byte {
	return crypto.Hash160(p.vb.Payload())
}

func (p *PublicKey) String() string {
	return p.vb.String()
}

func (p *PublicKey) Equal(o *PublicKey) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.vb.Equal(o.vb)
}
