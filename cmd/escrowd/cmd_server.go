package main

import (
	"github.com/iov-one/tokenswap/app"
	"github.com/iov-one/tokenswap/commands/server"
	"github.com/spf13/cobra"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [address]",
		Short: "Write a development app_state into the tendermint genesis file",
		Long: `Write a development app_state into the tendermint genesis file.

The given address receives the native coins and controls the XTK and YTK
mints. Without an address a new key is generated and its seed printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			return server.InitCmd(app.GenInitOptions(cmd.OutOrStdout()), logger, home, force, args)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "overwrite an existing app_state")
	return cmd
}

func startCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the ABCI server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}
			bind, err := cmd.Flags().GetString("bind")
			if err != nil {
				return err
			}
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			program, err := programID(cmd)
			if err != nil {
				return err
			}
			gen := func(home string, logger log.Logger, debug bool) (abci.Application, error) {
				return app.GenerateApp(home, logger, debug, program)
			}
			return server.StartCmd(gen, logger, home, bind, debug)
		},
	}
	cmd.Flags().String("bind", server.DefaultBind, "address server listens on")
	cmd.Flags().Bool("debug", false, "call stack returned on error")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis [genesis.json...]",
		Short: "Load the app_state of genesis files into a throw away store",
		Long: `Load the app_state of genesis files into a throw away store.

Without arguments the genesis file of the home directory is validated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				home, err := cmd.Flags().GetString(flagHome)
				if err != nil {
					return err
				}
				args = []string{server.GenesisPath(home)}
			}
			return server.ValidateGenesis(app.Initializers(), args)
		},
	}
}
