package main

import (
	"encoding/hex"

	"keycore-wallet/wallet-base/cmd"
	"keycore-wallet/wallet-base/newbitx/misclib/log"
	"keycore-wallet/wallet-base/util"
	"keycore-wallet/wallet-tools/base/crypto"
	"keycore-wallet/wallet-tools/base/keycore"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const bothFlag = "both"

func (a *app) newCommand() *cmd.Command {
	c := cmd.New("new", "create a random private key.", "./keytool new --both", func(c *cmd.Command, _ []string) error {
		pk, err := keycore.CreatePrivateKeyFrom(a.rand, a.params.DumpKeyVersion, a.cfg.Compressed)
		if err != nil {
			return err
		}
		return a.display(c, pk.PrivateKeyBytes())
	})
	c.Flags().Bool(bothFlag, false, "print the compressed and the uncompressed form")
	return c
}

// seedCommand turns a text into a key: the scalar is sha256 of its UTF-8 bytes.
func (a *app) seedCommand() *cmd.Command {
	c := cmd.New("seed", "derive a private key from sha256 of a text.", "./keytool seed --text 'correct horse'", func(c *cmd.Command, _ []string) error {
		err := c.SecretWithConfirm("text", true)
		if err != nil {
			return err
		}

		text, _ := c.Flags().GetString("text")
		if len(text) == 0 {
			return errors.New("seed text can't be empty")
		}
		return a.display(c, crypto.Sha256([]byte(text)))
	})
	c.Flags().StringP("text", "t", "", "the seed text, prompted for when empty")
	c.Flags().Bool(bothFlag, false, "print the compressed and the uncompressed form")
	return c
}

func (a *app) hexCommand() *cmd.Command {
	c := cmd.New("hex <private-key-hex>", "build a private key from 32 hex encoded bytes.", "", func(c *cmd.Command, args []string) error {
		if !govalidator.IsHexadecimal(args[0]) {
			return errors.Errorf("%q is not hexadecimal", args[0])
		}

		scalar, err := hex.DecodeString(args[0])
		if err != nil {
			return errors.Wrap(err, "decode private key failed")
		}
		return a.display(c, scalar)
	}).Args(cobra.ExactArgs(1))
	c.Flags().Bool(bothFlag, false, "print the compressed and the uncompressed form")
	return c
}

func (a *app) importCommand() *cmd.Command {
	return cmd.New("import <wif>", "decode a WIF private key and show its address.", "", func(c *cmd.Command, args []string) error {
		pk, err := keycore.DecodePrivateKey(a.params.DumpKeyVersion, args[0])
		if err != nil {
			return err
		}
		return a.printKey(c, pk)
	}).Args(cobra.ExactArgs(1))
}

func (a *app) addressCommand() *cmd.Command {
	return cmd.New("address <hash160-hex>", "encode a hash160 as an address.", "", func(c *cmd.Command, args []string) error {
		if !govalidator.IsHexadecimal(args[0]) {
			return errors.Errorf("%q is not hexadecimal", args[0])
		}

		hash, err := hex.DecodeString(args[0])
		if err != nil {
			return errors.Wrap(err, "decode hash160 failed")
		}

		addr, err := keycore.NewAddressFromHash160(a.params.AddressVersion, hash)
		if err != nil {
			return err
		}

		c.Printf("%s\n", addr)
		return nil
	}).Args(cobra.ExactArgs(1))
}

func (a *app) checkCommand() *cmd.Command {
	return cmd.New("check <address>", "validate an address of the network.", "", func(c *cmd.Command, args []string) error {
		addr, err := keycore.DecodeAddress(a.params.AddressVersion, args[0])
		if err != nil {
			return err
		}

		c.Printf("network: %s\n", a.params.Name)
		c.Printf("hash160: %x\n", addr.Hash160())
		return nil
	}).Args(cobra.ExactArgs(1))
}

// display prints the key of scalar in the configured form, or in both forms
// with --both.
func (a *app) display(c *cmd.Command, scalar []byte) error {
	forms := []bool{a.cfg.Compressed}
	if both, _ := c.Flags().GetBool(bothFlag); both {
		forms = []bool{false, true}
	}

	for i, compressed := range forms {
		if i > 0 {
			c.Printf("\n")
		}

		pk, err := keycore.NewPrivateKey(a.params.DumpKeyVersion, scalar, compressed)
		if err != nil {
			return err
		}

		err = a.printKey(c, pk)
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printKey(c *cmd.Command, pk *keycore.PrivateKey) error {
	pub, err := pk.PublicKeyWithVersion(a.params.AddressVersion)
	if err != nil {
		return err
	}

	addr := keycore.NewAddress(pub)
	log.WithFields(log.Fields{
		"network":     a.params.Name,
		"compressed":  pk.MakesCompressedPublicKey(),
		"fingerprint": util.Fingerprint(pub.Bytes()),
	}).Info("key loaded")

	c.Printf("network:    %s\n", a.params.Name)
	c.Printf("compressed: %t\n", pk.MakesCompressedPublicKey())
	c.Printf("wif:        %s\n", pk.WIF())
	c.Printf("public key: %x\n", pub.Bytes())
	c.Printf("address:    %s\n", addr)
	return nil
}
