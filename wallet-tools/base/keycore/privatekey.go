package keycore

import (
	"crypto/rand"
	"io"

	"keycore-wallet/wallet-tools/base/crypto"
	"keycore-wallet/wallet-tools/base/crypto/key"

	"github.com/pkg/errors"
)

// compressMagic follows the scalar in the WIF payload of a key that makes
// compressed public keys.
const compressMagic byte = 0x01

// KeyPair is an EC key pair provider.
type KeyPair interface {
	PrivateKey() []byte
	IsCompressedPublicKey() bool
}

// PrivateKey is a private key in Wallet Import Format.
type PrivateKey struct {
	vb         *crypto.VersionedBytes
	compressed bool
}

// NewPrivateKey builds a private key from a 32-byte scalar. version is the
// dump key version of the network, e.g. ProdDumpKeyVersion.
func NewPrivateKey(version byte, keyBytes []byte, compressed bool) (*PrivateKey, error) {
	if len(keyBytes) != key.PrivKeyBytesLen {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "keys are 256 bits, so you must provide %d bytes, got %d bytes", key.PrivKeyBytesLen, len(keyBytes))
	}

	payload := make([]byte, 0, key.PrivKeyBytesLen+1)
	payload = append(payload, keyBytes...)
	if compressed {
		payload = append(payload, compressMagic)
	}

	return &PrivateKey{
		vb:         crypto.NewVersionedBytes(version, payload),
		compressed: compressed,
	}, nil
}

// NewPrivateKeyFromPair takes the scalar and the compression preference from kp.
func NewPrivateKeyFromPair(version byte, kp KeyPair) (*PrivateKey, error) {
	if kp == nil {
		return nil, errors.Wrap(ErrInvalidKeyLength, "nil key pair")
	}
	return NewPrivateKey(version, kp.PrivateKey(), kp.IsCompressedPublicKey())
}

// DecodePrivateKey parses a WIF string of the network identified by version.
func DecodePrivateKey(version byte, wif string) (*PrivateKey, error) {
	vb, err := crypto.DecodeVersionedBytes(wif)
	if err != nil {
		return nil, err
	}

	if vb.Version() != version {
		return nil, versionMismatch(vb.Version(), version)
	}

	compressed, err := payloadCompression(vb.Payload())
	if err != nil {
		return nil, err
	}

	if params, ok := ParamsByDumpKeyVersion(version); ok {
		if err := checkWIFPrefix(params.WIFPrefixes, wif, compressed); err != nil {
			return nil, err
		}
	}

	return &PrivateKey{
		vb:         vb,
		compressed: compressed,
	}, nil
}

// payloadCompression is the authoritative compression signal of a WIF payload.
func payloadCompression(payload []byte) (bool, error) {
	switch len(payload) {
	case key.PrivKeyBytesLen:
		return false, nil
	case key.PrivKeyBytesLen + 1:
		if payload[key.PrivKeyBytesLen] != compressMagic {
			return false, errors.Wrapf(ErrInvalidCompressionFlag, "got 0x%02x", payload[key.PrivKeyBytesLen])
		}
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidKeyLength, "WIF payload is %d bytes", len(payload))
	}
}

func checkWIFPrefix(prefixes WIFPrefixes, wif string, compressed bool) error {
	if prefixes.Match(wif, compressed) {
		return nil
	}

	form := "uncompressed"
	if compressed {
		form = "compressed"
	}
	return errors.Wrapf(ErrCompressionMismatch, "%s payload with leading %q", form, wif[:1])
}

// CreatePrivateKey creates a private key from 32 bytes of crypto/rand.
func CreatePrivateKey(version byte, compressed bool) (*PrivateKey, error) {
	return CreatePrivateKeyFrom(rand.Reader, version, compressed)
}

// CreatePrivateKeyFrom creates a private key with randomness read from r.
// Read failures are returned as is, without retrying.
func CreatePrivateKeyFrom(r io.Reader, version byte, compressed bool) (*PrivateKey, error) {
	k := key.NewSecp256k1()
	if err := k.Random(r); err != nil {
		return nil, err
	}
	return NewPrivateKeyFromPair(version, key.NewPair(k, compressed))
}

func (k *PrivateKey) Version() byte {
	return k.vb.Version()
}

// PrivateKeyBytes returns the 32-byte scalar.
func (k *PrivateKey) PrivateKeyBytes() []byte {
	b := k.vb.Payload()
	if k.compressed && len(b) > key.PrivKeyBytesLen {
		return b[:key.PrivKeyBytesLen]
	}
	return b
}

func (k *PrivateKey) MakesCompressedPublicKey() bool {
	return k.compressed
}

// WIF returns the Wallet Import Format string.
func (k *PrivateKey) WIF() string {
	return k.vb.String()
}

func (k *PrivateKey) String() string {
	return k.WIF()
}

func (k *PrivateKey) Equal(o *PrivateKey) bool {
	if k == nil || o == nil {
		return k == o
	}
	return k.vb.Equal(o.vb)
}

// PublicKey derives the public key tagged with ProdAddressVersion.
func (k *PrivateKey) PublicKey() (*PublicKey, error) {
	return NewPublicKey(k, ProdAddressVersion, nil)
}

// PublicKeyWithVersion derives the public key tagged with addrVersion.
func (k *PrivateKey) PublicKeyWithVersion(addrVersion byte) (*PublicKey, error) {
	return NewPublicKey(k, addrVersion, nil)
}
