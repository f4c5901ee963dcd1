// Package cmd provides the root command and CLI setup for scanconv.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"scanconv.dev/pkg/scanconv/internal/adapter"
	"scanconv.dev/pkg/scanconv/internal/codec"
	"scanconv.dev/pkg/scanconv/internal/controller"
	"scanconv.dev/pkg/scanconv/internal/domain"
	m "scanconv.dev/pkg/scanconv/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var groupBuilder domain.GroupBuilder
var workflow domain.Workflow
var ui controller.UI

var (
	reportFlag         string
	strictFlag         bool
	keepEmptyFlag      bool
	legacyChecksumFlag bool
	provenanceFlag     string
	verboseFlag        bool
	logFileFlag        string
)

const layoutHelp = `The scan root must contain one directory per technology, all of them
required: dvb-c, dvb-s, dvb-t and atsc. Every regular file inside holds one
transponder per line; '#' starts a comment.`

const rootLongDescription = `scanconv converts a tree of DVB/ATSC initial tuning files into a single
scan file: every line is parsed and re-serialized in canonical form, each file
becomes a sorted [technology/file] section and the document is sealed with a
sha1sum trailer. Nothing is written if any file fails to parse.

` + layoutHelp

// rootCmd represents the base command; it performs the conversion.
var rootCmd = newRootCmd()

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stderr))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	groupBuilder = domain.NewGroupBuilder(fsAdapter, codec.New())
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		groupBuilder,
		time.Now,
	)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scanconv <scan-root-directory> <output-file>",
		Short: "Convert DVB/ATSC initial tuning files into one checksummed scan file",
		Long:  rootLongDescription,
		Args:  cobra.ExactArgs(2),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return workflow.Convert(cmd.Context(), domain.ConvertArgs{
				ScanRoot:       m.Path(args[0]),
				Output:         m.Path(args[1]),
				Report:         m.Path(viper.GetString(reportConfigKey)),
				Provenance:     viper.GetString(provenanceConfigKey),
				KeepEmpty:      viper.GetBool(keepEmptyConfigKey),
				Strict:         viper.GetBool(strictConfigKey),
				LegacyChecksum: viper.GetBool(legacyChecksumConfigKey),
			})
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVar(&keepEmptyFlag, keepEmptyFlagName, defaultKeepEmpty, "keep files without transponders as empty sections")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(keepEmptyFlagName), keepEmptyConfigKey)

	cmd.PersistentFlags().StringVar(&provenanceFlag, provenanceFlagName, domain.DefaultProvenance, "provenance comment written at the top of the document")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(provenanceFlagName), provenanceConfigKey)

	cmd.Flags().StringVar(&reportFlag, reportFlagName, defaultReport, "write a YAML run report to this path")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)

	cmd.Flags().BoolVar(&strictFlag, strictFlagName, defaultStrict, "treat warnings as fatal")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), strictConfigKey)

	cmd.Flags().BoolVar(&legacyChecksumFlag, legacyChecksumFlagName, defaultLegacyChecksum, "include the trailer prefix in the sha1sum input")
	bindFlagToConfig(cmd.Flags().Lookup(legacyChecksumFlagName), legacyChecksumConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
