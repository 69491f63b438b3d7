package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagHome     = "home"
	flagLogLevel = "log_level"
	flagProgram  = "program"
)

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootCmd builds the escrowd command tree writing to given output.
func rootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "escrowd",
		Short:         "Escrow swap ABCI application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".escrowd")
	root.PersistentFlags().String(flagHome, defaultHome, "directory to store files under")
	root.PersistentFlags().String(flagLogLevel, "info", "minimal level of logged messages (debug, info, error, none)")
	root.PersistentFlags().String(flagProgram, escrow.DefaultProgramID.String(), "program id the escrow authority is derived from")

	root.AddCommand(
		initCmd(),
		startCmd(),
		validateCmd(),
		authorityCmd(),
		keysCmd(),
		versionCmd(),
	)
	return root
}

// newLogger returns a tendermint logger writing to the command output,
// filtered by the log level flag.
func newLogger(cmd *cobra.Command) (log.Logger, error) {
	level, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	allowed, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(cmd.OutOrStdout())).
		With("module", "escrowd")
	return log.NewFilter(logger, allowed), nil
}

func programID(cmd *cobra.Command) (solana.PublicKey, error) {
	raw, err := cmd.Flags().GetString(flagProgram)
	if err != nil {
		return solana.PublicKey{}, err
	}
	id, err := solana.PublicKeyFromBase58(raw)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(errors.ErrInput, "program id %q: %s", raw, err)
	}
	return id, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the app version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), tokenswap.Version())
		},
	}
}
