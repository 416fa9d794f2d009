package crypto

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/ripemd160"
)

// Sum calculate the sum hash of hasher over buf.
func Sum(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Sha256 returns the SHA-256 digest of buf.
func Sha256(buf []byte) []byte {
	h := sha256.Sum256(buf)
	return h[:]
}

// DoubleSha256 calculates the hash sha256(sha256(b)).
func DoubleSha256(buf []byte) []byte {
	first := sha256.Sum256(buf)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return Sum(Sha256(buf), ripemd160.New())
}
