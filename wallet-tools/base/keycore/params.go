package keycore

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	ProdAddressVersion byte = 0x00
	ProdDumpKeyVersion byte = 0x80
	TestAddressVersion byte = 0x6f
	TestDumpKeyVersion byte = 0xef
)

// WIFPrefixes lists the characters a WIF string of a network can start with.
type WIFPrefixes struct {
	Uncompressed string
	Compressed   string
}

// Match reports whether wif starts with a character expected for the given
// compression form. An empty set matches anything.
func (p WIFPrefixes) Match(wif string, compressed bool) bool {
	set := p.Uncompressed
	if compressed {
		set = p.Compressed
	}

	if len(set) == 0 {
		return true
	}
	return len(wif) > 0 && strings.IndexByte(set, wif[0]) >= 0
}

// Params holds the version bytes of a network.
type Params struct {
	Name           string
	DumpKeyVersion byte
	AddressVersion byte
	WIFPrefixes    WIFPrefixes
}

var (
	MainNetParams = &Params{
		Name:           "BTC",
		DumpKeyVersion: ProdDumpKeyVersion,
		AddressVersion: ProdAddressVersion,
		WIFPrefixes:    WIFPrefixes{Uncompressed: "5", Compressed: "KL"},
	}

	TestNetParams = &Params{
		Name:           "BTCtest",
		DumpKeyVersion: TestDumpKeyVersion,
		AddressVersion: TestAddressVersion,
		WIFPrefixes:    WIFPrefixes{Uncompressed: "9", Compressed: "c"},
	}
)

var (
	paramsByName    = make(map[string]*Params)
	paramsByDumpKey = make(map[byte]*Params)
)

type btcLike struct {
	addressVersion byte
	wifPrefixes    WIFPrefixes
}

func init() {
	register(MainNetParams, TestNetParams)
	registerBTCLike(map[string]btcLike{
		"LTC":  {0x30, WIFPrefixes{Uncompressed: "6", Compressed: "T"}},
		"DOGE": {0x1e, WIFPrefixes{Uncompressed: "6", Compressed: "Q"}},
		"DASH": {0x4c, WIFPrefixes{Uncompressed: "7", Compressed: "X"}},
	})
}

// registerBTCLike registers networks whose dump key version is the address
// version plus 0x80.
func registerBTCLike(nets map[string]btcLike) {
	for name, n := range nets {
		register(&Params{
			Name:           name,
			DumpKeyVersion: n.addressVersion + 0x80,
			AddressVersion: n.addressVersion,
			WIFPrefixes:    n.wifPrefixes,
		})
	}
}

func register(params ...*Params) {
	for _, p := range params {
		name := strings.ToUpper(p.Name)
		if _, ok := paramsByName[name]; ok {
			panic("keycore: duplicate network " + p.Name)
		}

		if _, ok := paramsByDumpKey[p.DumpKeyVersion]; ok {
			panic("keycore: duplicate dump key version for " + p.Name)
		}

		paramsByName[name] = p
		paramsByDumpKey[p.DumpKeyVersion] = p
	}
}

// FindParams looks a network up by case-insensitive name.
func FindParams(name string) (*Params, error) {
	p, ok := paramsByName[strings.ToUpper(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "%q, supported: %s", name, strings.Join(AllNetworks(), ","))
	}
	return p, nil
}

// ParamsByDumpKeyVersion looks a network up by its WIF version byte.
func ParamsByDumpKeyVersion(version byte) (*Params, bool) {
	p, ok := paramsByDumpKey[version]
	return p, ok
}

// AllNetworks returns the registered network names, sorted.
func AllNetworks() []string {
	names := make([]string, 0, len(paramsByName))
	for _, p := range paramsByName {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
