package main

import (
	"encoding/hex"
	"fmt"

	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/spf13/cobra"
)

const defaultDerivationPath = "m/44'/234'/0'"

func keysCmd() *cobra.Command {
	keys := &cobra.Command{
		Use:   "keys",
		Short: "Key management",
	}
	derive := &cobra.Command{
		Use:   "derive <hex-seed>",
		Short: "Derive an ed25519 key from a master seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrInput, "seed is not hex encoded")
			}
			path, err := cmd.Flags().GetString("path")
			if err != nil {
				return err
			}
			hrp, err := cmd.Flags().GetString("hrp")
			if err != nil {
				return err
			}
			key, err := crypto.DeriveKey(seed, path)
			if err != nil {
				return err
			}
			pub := key.PublicKey()
			addr := pub.Address()
			b32, err := addr.Bech32(hrp)
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:       %s\n", path)
			fmt.Fprintf(out, "public key: %X\n", pub.Ed25519)
			fmt.Fprintf(out, "address:    %s\n", addr)
			fmt.Fprintf(out, "bech32:     %s\n", b32)
			return nil
		},
	}
	derive.Flags().String("path", defaultDerivationPath, "SLIP-0010 derivation path")
	derive.Flags().String("hrp", "swap", "human readable part of the bech32 address")
	keys.AddCommand(derive)
	return keys
}
