package keycore

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func assert(t *testing.T, ok bool, format string, a ...interface{}) {
	t.Helper()
	if !ok {
		t.Fatalf(format, a...)
	}
}

func ones(n int) []byte {
	return bytes.Repeat([]byte{1}, n)
}

func scalarOne() []byte {
	b := make([]byte, 32)
	b[31] = 1
	return b
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// keyVector holds the representations of one scalar on one network.
type keyVector struct {
	params     *Params
	scalar     []byte
	compressed bool
	wif        string
	pubKey     string
	hash160    string
	address    string
}

var keyVectors = []keyVector{
	{
		params:     MainNetParams,
		scalar:     ones(32),
		compressed: true,
		wif:        "KwFfNUhSDaASSAwtG7ssQM1uVX8RgX5GHWnnLfhfiQDigjioWXHH",
		pubKey:     "031b84c5567b126440995d3ed5aaba0565d71e1834604819ff9c17f5e9d5dd078f",
		hash160:    "79b000887626b294a914501a4cd226b58b235983",
		address:    "1C6Rc3w25VHud3dLDamutaqfKWqhrLRTaD",
	},
	{
		params:     MainNetParams,
		scalar:     ones(32),
		compressed: false,
		wif:        "5HpjE2Hs7vjU4SN3YyPQCdhzCu92WoEeuE6PWNuiPyTu3ESGnzn",
		pubKey:     "041b84c5567b126440995d3ed5aaba0565d71e1834604819ff9c17f5e9d5dd078f70beaf8f588b541507fed6a642c5ab42dfdf8120a7f639de5122d47a69a8e8d1",
		hash160:    "6ff3443c994fb2c821969dae53bd5b5052d8394f",
		address:    "1BCwRkTsYzK5aNK4sdF7Bpti3PhrkPtLc4",
	},
	{
		params:     MainNetParams,
		scalar:     scalarOne(),
		compressed: true,
		wif:        "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn",
		pubKey:     "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hash160:    "751e76e8199196d454941c45d1b3a323f1433bd6",
		address:    "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
	},
	{
		params:     MainNetParams,
		scalar:     scalarOne(),
		compressed: false,
		wif:        "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf",
		pubKey:     "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		hash160:    "91b24bf9f5288532960ac687abb035127b1d28a5",
		address:    "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm",
	},
	{
		params:     TestNetParams,
		scalar:     ones(32),
		compressed: true,
		wif:        "cMceqPhHedrhbcR9eXgzmfWy7kRqLyAxMYwFT6ABDWsiwUp9Nsq9",
		pubKey:     "031b84c5567b126440995d3ed5aaba0565d71e1834604819ff9c17f5e9d5dd078f",
		hash160:    "79b000887626b294a914501a4cd226b58b235983",
		address:    "mrcNu71ztWjAQA6ww9kHiW3zBWSQidHXTQ",
	},
	{
		params:     TestNetParams,
		scalar:     ones(32),
		compressed: false,
		wif:        "91bMom7Qi9oc2VsLBKHK5EFwrZVjfxmrFAxLb1GDjiCwpGS6u85",
		pubKey:     "041b84c5567b126440995d3ed5aaba0565d71e1834604819ff9c17f5e9d5dd078f70beaf8f588b541507fed6a642c5ab42dfdf8120a7f639de5122d47a69a8e8d1",
		hash160:    "6ff3443c994fb2c821969dae53bd5b5052d8394f",
		address:    "mqitioYrN1kLMUngbCDV1k72uPJZe5x22N",
	},
}
