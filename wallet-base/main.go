package main

import (
	_ "keycore-wallet/wallet-base/cmd"
	_ "keycore-wallet/wallet-base/newbitx/misclib/encoding/base58"
	_ "keycore-wallet/wallet-base/newbitx/misclib/log"
	_ "keycore-wallet/wallet-base/util"
	_ "keycore-wallet/wallet-base/viper"
)

// Just for checking any compile error.
func main() {}
