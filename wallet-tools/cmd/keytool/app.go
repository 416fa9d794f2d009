package main

import (
	"crypto/rand"
	"io"
	"strings"

	"keycore-wallet/wallet-base/cmd"
	"keycore-wallet/wallet-base/newbitx/misclib/log"
	"keycore-wallet/wallet-base/util"
	bviper "keycore-wallet/wallet-base/viper"
	"keycore-wallet/wallet-config/keytool/config"
	"keycore-wallet/wallet-tools/base/keycore"

	"github.com/spf13/viper"
)

const configName = "keytool"

type app struct {
	cfgFile string
	cfg     *config.Config
	params  *keycore.Params

	// rand feeds key generation.
	rand io.Reader
}

func newApp() *app {
	return &app{
		cfg:  config.DefaultConfig(),
		rand: rand.Reader,
	}
}

func (a *app) rootCommand() *cmd.Command {
	root := cmd.New(
		"keytool",
		"create and inspect WIF private keys and base58check addresses.",
		"./keytool new -n BTCtest\n./keytool import KwFfNUhSDaASSAwtG7ssQM1uVX8RgX5GHWnnLfhfiQDigjioWXHH",
		nil,
	)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./config/keytool.yml)")
	flags.StringP("network", "n", a.cfg.Network, "the network: "+strings.Join(keycore.AllNetworks(), ","))
	flags.Bool("compressed", a.cfg.Compressed, "make keys that produce compressed public keys")
	flags.String("loglevel", a.cfg.LogLevel, "log level")
	flags.String("logpath", a.cfg.LogPath, "directory of the rotated log file, empty to disable")

	for key, flag := range map[string]string{
		"network":    "network",
		"compressed": "compressed",
		"logLevel":   "loglevel",
		"logPath":    "logpath",
	} {
		viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.PreRun(a.prepare)
	root.AddCommand(
		a.newCommand(),
		a.seedCommand(),
		a.hexCommand(),
		a.importCommand(),
		a.addressCommand(),
		a.checkCommand(),
	)
	return root
}

// prepare loads the config and the logger before any subcommand runs.
func (a *app) prepare(*cmd.Command) error {
	err := bviper.Load(a.cfgFile, configName, "./config", ".")
	if err != nil {
		log.Debugf("%v, run with default config", err)
	}

	a.cfg = config.New()
	err = a.cfg.Validate()
	if err != nil {
		return err
	}

	err = log.SetLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}

	if a.cfg.LogPath != "" {
		err = util.InitDaysJSONRotationLogger(a.cfg.LogPath, a.cfg.LogFile, a.cfg.LogMaxAgeDays)
		if err != nil {
			return err
		}
	}

	a.params, err = a.cfg.Params()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"network": a.params.Name,
		"config":  bviper.ConfigFileUsed(),
	}).Debug("keytool ready")
	return nil
}
