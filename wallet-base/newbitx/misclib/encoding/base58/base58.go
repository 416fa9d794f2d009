package base58

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	// AlphabetSize is the radix of the encoding.
	AlphabetSize = 58

	// BitcoinAlphabet excludes 0, O, I and l.
	BitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

var (
	ErrInvalidCharacter = errors.New("invalid base58 character")
	ErrInvalidAlphabet  = errors.New("invalid base58 alphabet")
)

// Base58 defines the basic info of base58 instance.
type Base58 struct {
	alphabet  string
	decodeMap [256]int16
}

var (
	bigRadix = big.NewInt(AlphabetSize)
	bigZero  = big.NewInt(0)

	// StdEncoding represents the origin bitcoin base58 algorithm.
	StdEncoding = mustNewEncoding(BitcoinAlphabet)
)

// NewEncoding returns a Base58 over alphabet, which must hold 58 distinct
// ASCII characters.
func NewEncoding(alphabet string) (*Base58, error) {
	if len(alphabet) != AlphabetSize {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "need %d characters, got %d", AlphabetSize, len(alphabet))
	}

	b58 := &Base58{alphabet: alphabet}
	for i := range b58.decodeMap {
		b58.decodeMap[i] = -1
	}

	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c >= 0x80 {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "non-ascii character at %d", i)
		}

		if b58.decodeMap[c] != -1 {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "duplicate character %q", c)
		}
		b58.decodeMap[c] = int16(i)
	}
	return b58, nil
}

func mustNewEncoding(alphabet string) *Base58 {
	b58, err := NewEncoding(alphabet)
	if err != nil {
		panic(err)
	}
	return b58
}

// Alphabet returns the symbols of the encoding, zero digit first.
func (b58 *Base58) Alphabet() string {
	return b58.alphabet
}

// Decode decodes a modified base58 string to a byte slice.
func (b58 *Base58) Decode(s string) ([]byte, error) {
	answer := big.NewInt(0)
	scratch := new(big.Int)
	for i := 0; i < len(s); i++ {
		digit := b58.decodeMap[s[i]]
		if digit == -1 {
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", s[i], i)
		}

		answer.Mul(answer, bigRadix)
		scratch.SetInt64(int64(digit))
		answer.Add(answer, scratch)
	}

	tmpval := answer.Bytes()

	var numZeros int
	for numZeros = 0; numZeros < len(s); numZeros++ {
		if s[numZeros] != b58.alphabet[0] {
			break
		}
	}
	flen := numZeros + len(tmpval)
	val := make([]byte, flen)
	copy(val[numZeros:], tmpval)

	return val, nil
}

// Encode encodes a byte slice to a modified base58 string.
func (b58 *Base58) Encode(b []byte) string {
	x := new(big.Int)
	x.SetBytes(b)

	answer := make([]byte, 0, len(b)*138/100+1)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, b58.alphabet[mod.Int64()])
	}

	// leading zero bytes
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, b58.alphabet[0])
	}

	// reverse
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}

// Encode encodes b with the bitcoin alphabet.
func Encode(b []byte) string {
	return StdEncoding.Encode(b)
}

// Decode decodes s with the bitcoin alphabet.
func Decode(s string) ([]byte, error) {
	return StdEncoding.Decode(s)
}
