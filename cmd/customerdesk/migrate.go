package main

import (
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the customers table if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, application, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer application.Close()
		zlog.Info().Msg("schema ready")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
