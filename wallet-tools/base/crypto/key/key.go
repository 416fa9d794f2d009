package key

import (
	"io"
)

type Class string

// Key is an elliptic curve key pair.
type Key interface {
	Class() Class

	Random(rand io.Reader) error
	SetPrivateKey(privKey []byte) error

	PrivateKey() []byte
	PublicKey() []byte
	PublicKeyUncompressed() []byte
}

// Deriver produces the serialized public point of a 32-byte scalar, in
// compressed (33 bytes) or uncompressed (65 bytes) form.
type Deriver interface {
	DerivePublicKey(privKey []byte, compressed bool) ([]byte, error)
}

// DeriverFunc adapts a function to Deriver.
type DeriverFunc func(privKey []byte, compressed bool) ([]byte, error)

func (f DeriverFunc) DerivePublicKey(privKey []byte, compressed bool) ([]byte, error) {
	return f(privKey, compressed)
}

// Pair is a Key plus the public key form it is meant to produce.
type Pair struct {
	Key
	Compressed bool
}

func NewPair(k Key, compressed bool) *Pair {
	return &Pair{
		Key:        k,
		Compressed: compressed,
	}
}

func (p *Pair) IsCompressedPublicKey() bool {
	return p.Compressed
}

// SerializedPublicKey returns the public key in the form selected by Compressed.
func (p *Pair) SerializedPublicKey() []byte {
	if p.Compressed {
		return p.PublicKey()
	}
	return p.PublicKeyUncompressed()
}
