package key

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

const (
	Secp256k1Class Class = "secp256k1"

	// PrivKeyBytesLen is the length of a serialized secp256k1 scalar.
	PrivKeyBytesLen = 32
)

var ErrInvalidPrivateKey = errors.New("invalid secp256k1 private key")

// DefaultDeriver derives public keys on secp256k1.
var DefaultDeriver Deriver = &Secp256k1{}

type Secp256k1 struct {
	PrivKey *btcec.PrivateKey
	PubKey  *btcec.PublicKey
}

func NewSecp256k1() Key {
	return &Secp256k1{}
}

func (k *Secp256k1) Class() Class {
	return Secp256k1Class
}

func (k *Secp256k1) Random(reader io.Reader) error {
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, PrivKeyBytesLen)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return errors.Wrap(err, "read random scalar failed")
	}
	return k.SetPrivateKey(buf)
}

func (k *Secp256k1) SetPrivateKey(privKey []byte) error {
	if err := checkScalar(privKey); err != nil {
		return err
	}

	k.PrivKey, k.PubKey = btcec.PrivKeyFromBytes(privKey)
	return nil
}

func (k *Secp256k1) PrivateKey() []byte {
	if k.PrivKey == nil {
		return nil
	}

	return k.PrivKey.Serialize()
}

func (k *Secp256k1) PublicKey() []byte {
	if k.PubKey == nil {
		return nil
	}

	return k.PubKey.SerializeCompressed()
}

func (k *Secp256k1) PublicKeyUncompressed() []byte {
	if k.PubKey == nil {
		return nil
	}

	return k.PubKey.SerializeUncompressed()
}

// DerivePublicKey is stateless; it does not touch the receiver's keys.
func (k *Secp256k1) DerivePublicKey(privKey []byte, compressed bool) ([]byte, error) {
	if err := checkScalar(privKey); err != nil {
		return nil, err
	}

	_, pub := btcec.PrivKeyFromBytes(privKey)
	if compressed {
		return pub.SerializeCompressed(), nil
	}
	return pub.SerializeUncompressed(), nil
}

// checkScalar requires 32 bytes encoding a value in [1, N-1].
func checkScalar(privKey []byte) error {
	if len(privKey) != PrivKeyBytesLen {
		return errors.Wrapf(ErrInvalidPrivateKey, "need %d bytes, got %d", PrivKeyBytesLen, len(privKey))
	}

	d := new(big.Int).SetBytes(privKey)
	if d.Sign() == 0 || d.Cmp(btcec.S256().Params().N) >= 0 {
		return errors.Wrap(ErrInvalidPrivateKey, "scalar out of range")
	}
	return nil
}
