package base58

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	oracle "github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEncodeVectors(t *testing.T) {
	for _, v := range []struct {
		hex string
		b58 string
	}{
		{"", ""},
		{"00", "1"},
		{"0000", "11"},
		{"000000000000", "111111"},
		{"61", "2g"},
		{"626262", "a3gV"},
		{"636363", "aPEr"},
		{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
		{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
		{"516b6fcd0f", "ABnLTmg"},
		{"bf4f89001e670274dd", "3SEo3LWLoPntC"},
		{"572e4794", "3EFU7m"},
		{"ecac89cad93923c02321", "EJDM8drfXA6uyA"},
		{"10c8511e", "Rt5zm"},
		{"00000000000000000000", "1111111111"},
	} {
		data, err := hex.DecodeString(v.hex)
		require.NoError(t, err)

		require.Equal(t, v.b58, Encode(data), "encode %s", v.hex)

		decoded, err := Decode(v.b58)
		require.NoError(t, err, "decode %s", v.b58)
		require.Equal(t, v.hex, hex.EncodeToString(decoded), "decode %s", v.b58)
	}
}

func TestDecodeEmpty(t *testing.T) {
	b, err := Decode("")
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Len(t, b, 0)
}

func TestDecodeInvalidCharacter(t *testing.T) {
	for _, s := range []string{"0", "O", "I", "l", "3mJr0", "abc!", " 1", "1\x00", "€"} {
		_, err := Decode(s)
		require.Error(t, err, s)
		require.True(t, errors.Is(err, ErrInvalidCharacter), "%q: %v", s, err)
	}
}

func TestRoundTripAgainstOracle(t *testing.T) {
	r := rand.New(rand.NewSource(58))
	for i := 0; i < 2000; i++ {
		n := r.Intn(80)
		data := make([]byte, n)
		r.Read(data)
		// force some leading zeros
		zeros := r.Intn(4)
		for j := 0; j < zeros && j < n; j++ {
			data[j] = 0
		}

		s := Encode(data)
		require.Equal(t, oracle.Encode(data), s)

		decoded, err := Decode(s)
		require.NoError(t, err)
		if !bytes.Equal(data, decoded) {
			t.Fatalf("round trip mismatch, %x vs %x", data, decoded)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		n := r.Intn(40)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = BitcoinAlphabet[r.Intn(AlphabetSize)]
		}

		s := string(buf)
		decoded, err := Decode(s)
		require.NoError(t, err)
		require.Equal(t, s, Encode(decoded))
	}
}

func TestNewEncoding(t *testing.T) {
	ripple, err := NewEncoding("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")
	require.NoError(t, err)
	require.Equal(t, "r", ripple.Encode([]byte{0}))

	data := []byte("ripple")
	decoded, err := ripple.Decode(ripple.Encode(data))
	require.NoError(t, err)
	require.Equal(t, data, decoded)

	_, err = NewEncoding("123")
	require.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = NewEncoding("1" + BitcoinAlphabet[:57-1] + "1")
	require.True(t, errors.Is(err, ErrInvalidAlphabet))
}
