package crypto

import (
	"crypto/subtle"
)

const CheckSumLen = 4

// CheckSum returns the first CheckSumLen bytes of DoubleSha256(input).
func CheckSum(input []byte) (cksum [CheckSumLen]byte) {
	h := DoubleSha256(input)
	copy(cksum[:], h[:CheckSumLen])
	return
}

// VerifyCheckSum reports whether cksum is the checksum of input.
func VerifyCheckSum(input []byte, cksum []byte) bool {
	if len(cksum) != CheckSumLen {
		return false
	}

	expect := CheckSum(input)
	return subtle.ConstantTimeCompare(expect[:], cksum) == 1
}
