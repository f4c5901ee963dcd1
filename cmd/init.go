package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default scanconv.yaml configuration file",
		Long: `Write scanconv.yaml to the current directory with the current defaults:
convert.provenance, convert.keep_empty, convert.strict, convert.legacy_checksum,
convert.report, verify.parallel and the log.* settings. An existing file is
never overwritten. Every key can also be set through a SCANCONV_ environment
variable, e.g. SCANCONV_CONVERT_STRICT=true.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			slog.Info("Wrote default configuration", "path", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
