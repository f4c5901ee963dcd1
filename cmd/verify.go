package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scanconv.dev/pkg/scanconv/internal/domain"
)

var verifyParallelFlag int

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <scan-file>...",
		Short: "Check the sha1sum trailer of generated scan files",
		Long: `Recompute the digest of every given scan file and compare it with the
digest recorded in its trailer. Both the body-only and the legacy digest
input are accepted. Exits with status 1 if any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return workflow.Verify(cmd.Context(), domain.VerifyArgs{
				Paths:   parsePaths(args),
				Threads: viper.GetInt(verifyParallelConfigKey),
			})
		},
	}

	configureVerifyFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func configureVerifyFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&verifyParallelFlag, verifyParallelFlagName, "p", defaultVerifyParallel, "number of files verified concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(verifyParallelFlagName), verifyParallelConfigKey)
}
