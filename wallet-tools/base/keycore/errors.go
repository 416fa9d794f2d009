package keycore

import (
	"github.com/pkg/errors"
)

var (
	ErrVersionMismatch        = errors.New("mismatched version number, trying to cross networks?")
	ErrInvalidKeyLength       = errors.New("invalid private key length")
	ErrInvalidHashLength      = errors.New("invalid hash160 length")
	ErrInvalidCompressionFlag = errors.New("invalid compression flag")
	ErrCompressionMismatch    = errors.New("WIF prefix disagrees with payload compression")
	ErrInvalidPublicKey       = errors.New("invalid serialized public key")
	ErrUnknownNetwork         = errors.New("unknown network")
)

func versionMismatch(got, want byte) error {
	return errors.Wrapf(ErrVersionMismatch, "%d vs %d", got, want)
}
