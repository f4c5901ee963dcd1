package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scanconv.dev/pkg/scanconv/internal/domain"
	m "scanconv.dev/pkg/scanconv/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <scan-root-directory> <existing-scan-file>",
		Short: "Show how a fresh conversion would differ from an existing scan file",
		Long: `Convert the scan root in memory and print a unified diff against an existing
scan file. The [date] value and the sha1sum trailer are ignored. Nothing is
written.

` + layoutHelp,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return workflow.Diff(cmd.Context(), domain.DiffArgs{
				ScanRoot:   m.Path(args[0]),
				Existing:   m.Path(args[1]),
				Provenance: viper.GetString(provenanceConfigKey),
				KeepEmpty:  viper.GetBool(keepEmptyConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
