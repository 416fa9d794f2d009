package main

import (
	"os"

	"keycore-wallet/wallet-base/newbitx/misclib/log"
	"keycore-wallet/wallet-base/util"
)

func main() {
	defer util.DeferRecover("keytool", func(error) {
		os.Exit(2)
	})()

	err := newApp().rootCommand().Execute()
	if err != nil {
		log.Errorf("keytool failed, %v", err)
		os.Exit(1)
	}
}
