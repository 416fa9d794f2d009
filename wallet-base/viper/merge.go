package viper

import (
	"bufio"

	"keycore-wallet/wallet-base/newbitx/misclib/log"
	"keycore-wallet/wallet-base/util"

	"github.com/spf13/viper"
)

const (
	extConfigsKey = "extConfigs"
)

// MergeExtIfNecessary merges external configs if necessary. A missing or
// broken external config is logged and skipped.
func MergeExtIfNecessary() error {
	exts := GetStringSlice(extConfigsKey, nil)
	for _, ext := range exts {
		if !util.FileExist(ext) {
			log.Errorf("merge config %s failed, file not exist", ext)
			continue
		}

		err := util.WithReadFile(ext, func(reader *bufio.Reader) error {
			return viper.MergeConfig(reader)
		})
		if err != nil {
			log.Errorf("merge config %s failed, %v", ext, err)
			continue
		}

		log.Infof("merged config %s", ext)
	}
	return nil
}
