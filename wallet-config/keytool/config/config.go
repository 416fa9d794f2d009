package config

import (
	bviper "keycore-wallet/wallet-base/viper"
	"keycore-wallet/wallet-tools/base/keycore"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config defines configurations of the keytool.
type Config struct {
	Network    string
	Compressed bool

	LogPath       string
	LogFile       string
	LogLevel      string
	LogMaxAgeDays uint
}

// DefaultConfig returns a default keytool Config.
func DefaultConfig() *Config {
	return &Config{
		Network:       keycore.MainNetParams.Name,
		Compressed:    true,
		LogPath:       "./log/",
		LogFile:       "keytool.log",
		LogLevel:      "info",
		LogMaxAgeDays: 7,
	}
}

// New returns a new config instance, defaults overridden by viper keys.
func New() *Config {
	cfg := DefaultConfig()

	cfg.Network = bviper.GetString("network", cfg.Network)
	cfg.Compressed = bviper.GetBool("compressed", cfg.Compressed)
	cfg.LogPath = bviper.GetString("logPath", cfg.LogPath)
	cfg.LogFile = bviper.GetString("logFile", cfg.LogFile)
	cfg.LogLevel = bviper.GetString("logLevel", cfg.LogLevel)
	cfg.LogMaxAgeDays = uint(bviper.GetInt64("logMaxAgeDays", int64(cfg.LogMaxAgeDays)))
	return cfg
}

// Validate checks the network is registered and the log level parses.
func (c *Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid logLevel")
	}

	if c.LogPath != "" && c.LogFile == "" {
		return errors.New("logFile is required when logPath is set")
	}
	return nil
}

// Params returns the network parameters selected by Network.
func (c *Config) Params() (*keycore.Params, error) {
	return keycore.FindParams(c.Network)
}
