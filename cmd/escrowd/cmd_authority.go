package main

import (
	"encoding/hex"
	"fmt"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/spf13/cobra"
)

func authorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authority [escrow-id]",
		Short: "Print the escrow authority and the vault of an escrow",
		Long: `Print the escrow authority derived from the program id.

When an escrow id is given, the address and bump of its vault are printed
as well. Those are the values an initialize message must carry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := programID(cmd)
			if err != nil {
				return err
			}
			authority, err := escrow.NewAuthority(program)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "program:   %s\n", program)
			fmt.Fprintf(out, "authority: %s (bump %d)\n", authority.PublicKey(), authority.Bump())
			fmt.Fprintf(out, "owner:     %s\n", authority.Address())

			if len(args) == 0 {
				return nil
			}
			id := []byte(args[0])
			if isHex, _ := cmd.Flags().GetBool("hex"); isHex {
				if id, err = hex.DecodeString(args[0]); err != nil {
					return errors.Wrap(errors.ErrInput, "escrow id is not hex encoded")
				}
			}
			vault, bump, err := authority.FindVault(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "vault:     %s (bump %d)\n", vault, bump)
			return nil
		},
	}
	cmd.Flags().Bool("hex", false, "escrow id is hex encoded")
	return cmd
}
