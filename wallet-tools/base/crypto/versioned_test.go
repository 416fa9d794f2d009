package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"keycore-wallet/wallet-base/newbitx/misclib/encoding/base58"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func assert(t *testing.T, ok bool, format string, a ...interface{}) {
	if !ok {
		t.Fatalf(format, a...)
	}
}

func ones(n int) []byte {
	return bytes.Repeat([]byte{1}, n)
}

func TestHashes(t *testing.T) {
	for _, v := range []struct {
		data   string
		sha256 string
		double string
		hash   string
	}{
		{
			"",
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			"5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
			"b472a266d0bd89c13706a4132ccfb16f7c3b9fcb",
		},
		{
			"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
			"0f715baf5d4c2ed329785cef29e562f73488c8a2bb9dbc5700b361d54b9b0554",
			"",
			"751e76e8199196d454941c45d1b3a323f1433bd6",
		},
	} {
		data, _ := hex.DecodeString(v.data)
		assert(t, hex.EncodeToString(Sha256(data)) == v.sha256, "sha256 mismatch for %q", v.data)
		if v.double != "" {
			assert(t, hex.EncodeToString(DoubleSha256(data)) == v.double, "double sha256 mismatch for %q", v.data)
		}
		assert(t, hex.EncodeToString(Hash160(data)) == v.hash, "hash160 mismatch for %q", v.data)
	}
}

func TestCheckSum(t *testing.T) {
	data := []byte("hello")
	cksum := CheckSum(data)
	require.Equal(t, DoubleSha256(data)[:CheckSumLen], cksum[:])
	require.True(t, VerifyCheckSum(data, cksum[:]))
	require.False(t, VerifyCheckSum(data, cksum[:3]))

	cksum[0] ^= 1
	require.False(t, VerifyCheckSum(data, cksum[:]))
}

func TestVersionedBytesKnownWIF(t *testing.T) {
	v := NewVersionedBytes(0x80, append(ones(32), 0x01))
	require.Equal(t, "KwFfNUhSDaASSAwtG7ssQM1uVX8RgX5GHWnnLfhfiQDigjioWXHH", v.String())

	v = NewVersionedBytes(0x80, ones(32))
	require.Equal(t, "5HpjE2Hs7vjU4SN3YyPQCdhzCu92WoEeuE6PWNuiPyTu3ESGnzn", v.String())

	decoded, err := DecodeVersionedBytes(v.String())
	require.NoError(t, err)
	require.True(t, v.Equal(decoded))
	require.Equal(t, byte(0x80), decoded.Version())
	require.Equal(t, ones(32), decoded.Payload())
	require.Equal(t, v.Checksum(), decoded.Checksum())
}

func TestVersionedBytesRoundTrip(t *testing.T) {
	for version := 0; version < 256; version += 17 {
		for _, payload := range [][]byte{nil, {0}, {0, 0, 1}, ones(20), ones(65)} {
			v := NewVersionedBytes(byte(version), payload)
			decoded, err := DecodeVersionedBytes(v.String())
			require.NoError(t, err)
			require.True(t, v.Equal(decoded), "version %d payload %x", version, payload)
			require.Equal(t, len(payload), decoded.Len())
		}
	}
}

func TestVersionedBytesOwnsPayload(t *testing.T) {
	payload := ones(4)
	v := NewVersionedBytes(1, payload)
	payload[0] = 9
	require.Equal(t, ones(4), v.Payload())

	out := v.Payload()
	out[1] = 9
	require.Equal(t, ones(4), v.Payload())
}

func TestDecodeVersionedBytesTooShort(t *testing.T) {
	for _, s := range []string{"", "1", "1111", base58.Encode([]byte{1, 2, 3, 4})} {
		_, err := DecodeVersionedBytes(s)
		require.True(t, errors.Is(err, ErrTooShort), "%q: %v", s, err)
	}

	// version byte with its checksum and an empty payload is the minimum
	v := NewVersionedBytes(5, nil)
	decoded, err := DecodeVersionedBytes(v.String())
	require.NoError(t, err)
	require.Equal(t, 0, decoded.Len())
}

func TestDecodeVersionedBytesInvalidCharacter(t *testing.T) {
	_, err := DecodeVersionedBytes("KwFfNUhSDaASSAwtG7ssQM1uVX8RgX5GHWnnLfhfiQDigjioWXH0")
	require.True(t, errors.Is(err, base58.ErrInvalidCharacter), "%v", err)
}

func TestDecodeVersionedBytesBitFlips(t *testing.T) {
	v := NewVersionedBytes(0x80, append(ones(32), 0x01))
	raw := v.Bytes()
	for i := 1; i < len(raw)-CheckSumLen; i++ {
		for bit := uint(0); bit < 8; bit++ {
			tampered := append([]byte{}, raw...)
			tampered[i] ^= 1 << bit

			_, err := DecodeVersionedBytes(base58.Encode(tampered))
			assert(t, errors.Is(err, ErrChecksumMismatch), "byte %d bit %d: %v", i, bit, err)
		}
	}
}

func TestDecodeVersionedBytesCharacterTypo(t *testing.T) {
	s := "5HpjE2Hs7vjU4SN3YyPQCdhzCu92WoEeuE6PWNuiPyTu3ESGnzn"
	typo := []byte(s)
	typo[10] = 'x'
	_, err := DecodeVersionedBytes(string(typo))
	require.True(t, errors.Is(err, ErrChecksumMismatch), "%v", err)
}

func TestVersionedBytesEqual(t *testing.T) {
	a := NewVersionedBytes(0, ones(20))
	require.True(t, a.Equal(NewVersionedBytes(0, ones(20))))
	require.False(t, a.Equal(NewVersionedBytes(0x6f, ones(20))))
	require.False(t, a.Equal(NewVersionedBytes(0, ones(21))))
	require.False(t, a.Equal(nil))

	var nilBytes *VersionedBytes
	require.True(t, nilBytes.Equal(nil))
}
