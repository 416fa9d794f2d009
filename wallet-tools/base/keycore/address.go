package keycore

import (
	"keycore-wallet/wallet-tools/base/crypto"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

// BitcoinAddress is the Base58Check form of a 20-byte hash160 of a public
// key. The version byte makes an address specific to one network.
type BitcoinAddress struct {
	vb *crypto.VersionedBytes
}

// NewAddress builds the address of pub with pub's own version.
func NewAddress(pub *PublicKey) *BitcoinAddress {
	return NewAddressWithVersion(pub.Version(), pub)
}

// NewAddressWithVersion builds the address of pub, overriding its version.
func NewAddressWithVersion(version byte, pub *PublicKey) *BitcoinAddress {
	return &BitcoinAddress{
		vb: crypto.NewVersionedBytes(version, pub.PublicKeyHash()),
	}
}

// NewAddressFromHash160 builds an address from a raw hash160.
func NewAddressFromHash160(version byte, hash160 []byte) (*BitcoinAddress, error) {
	if len(hash160) != ripemd160.Size {
		return nil, errors.Wrapf(ErrInvalidHashLength, "addresses are 160-bit hashes, so you must provide %d bytes, got %d", ripemd160.Size, len(hash160))
	}

	return &BitcoinAddress{
		vb: crypto.NewVersionedBytes(version, hash160),
	}, nil
}

// DecodeAddress parses the human readable form of an address of the network
// identified by version.
func DecodeAddress(version byte, address string) (*BitcoinAddress, error) {
	vb, err := crypto.DecodeVersionedBytes(address)
	if err != nil {
		return nil, err
	}

	if vb.Version() != version {
		return nil, versionMismatch(vb.Version(), version)
	}

	if vb.Len() != ripemd160.Size {
		return nil, errors.Wrapf(ErrInvalidHashLength, "decoded %d bytes", vb.Len())
	}

	return &BitcoinAddress{vb: vb}, nil
}

func (a *BitcoinAddress) Version() byte {
	return a.vb.Version()
}

// Hash160 returns the 20-byte hash at the core of the address.
func (a *BitcoinAddress) Hash160() []byte {
	return a.vb.Payload()
}

// EncodedString returns the Base58Check encoded address.
func (a *BitcoinAddress) EncodedString() string {
	return a.vb.String()
}

func (a *BitcoinAddress) String() string {
	return a.EncodedString()
}

func (a *BitcoinAddress) Equal(o *BitcoinAddress) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.vb.Equal(o.vb)
}

// AddressStringFromPublicKey turns a public key into an encoded address.
func AddressStringFromPublicKey(pub *PublicKey) string {
	return NewAddress(pub).EncodedString()
}

// AddressStringFromPublicKeyWithVersion is AddressStringFromPublicKey with
// the version overridden.
func AddressStringFromPublicKeyWithVersion(version byte, pub *PublicKey) string {
	return NewAddressWithVersion(version, pub).EncodedString()
}
