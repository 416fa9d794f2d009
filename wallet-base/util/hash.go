package util

import (
	"encoding/hex"

	"keycore-wallet/wallet-tools/base/crypto"
)

// Fingerprint returns the first 8 bytes of hash160(datas...) in hex. It
// identifies a key in logs without revealing it.
func Fingerprint(datas ...[]byte) string {
	var buf []byte
	for _, data := range datas {
		buf = append(buf, data...)
	}
	return hex.EncodeToString(crypto.Hash160(buf))[:16]
}
