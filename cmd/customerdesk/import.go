package main

import (
	"encoding/json"
	"fmt"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Validate and append customers from a spreadsheet",
	Long: `Reads the first sheet of an .xlsx workbook. The header row must name the columns
name, birthday, email, phone, address and preferred_contact (any order).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, application, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer application.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		rep, err := application.ImportXLSX(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		zlog.Info().Str("file", args[0]).Msg(rep.Summary())

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}
		for _, r := range rep.Rejected {
			fmt.Fprintf(cmd.OutOrStdout(), "row %d: %s\n", r.Row, r.Reason)
		}
		for _, r := range rep.Failed {
			fmt.Fprintf(cmd.OutOrStdout(), "row %d: could not save data: %s\n", r.Row, r.Reason)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("json", false, "Print the full report as JSON")
}
