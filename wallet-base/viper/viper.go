package viper

import (
	"keycore-wallet/wallet-base/util"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Load reads cfgFile when it exists, otherwise looks for name in paths, then
// merges the external configs listed under extConfigs.
func Load(cfgFile, name string, paths ...string) error {
	if cfgFile != "" && util.FileExist(cfgFile) {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(name)
		for _, p := range paths {
			viper.AddConfigPath(p)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "read config failed")
	}
	return MergeExtIfNecessary()
}

// ConfigFileUsed returns the file the config was read from.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

func IsSet(key string) bool {
	return viper.IsSet(key)
}

func Set(key string, value interface{}) {
	viper.Set(key, value)
}

func GetInt64(key string, defaultValue int64) int64 {
	if viper.IsSet(key) {
		return viper.GetInt64(key)
	}
	return defaultValue
}

func GetString(key string, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func GetStringSlice(key string, defaultValue []string) []string {
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return defaultValue
}
