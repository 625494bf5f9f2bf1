// Package cmd provides the root command and CLI setup for reqtrace.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"reqtrace.dev/pkg/reqtrace/internal/adapter"
	"reqtrace.dev/pkg/reqtrace/internal/controller"
	"reqtrace.dev/pkg/reqtrace/internal/domain"
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var manifestStore adapter.ManifestStore
var sourceScanner adapter.SourceScanner
var workflow domain.Workflow
var ui controller.UI

// requirementsFlag is the path of the requirement manifest.
var requirementsFlag string

// rootDirFlag is the directory source paths are resolved against.
var rootDirFlag string

// excludePatterns is a root-level flag that filters scanned files.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	manifestStore = adapter.NewYAMLManifestStore(fsAdapter)
	sourceScanner = adapter.NewExtensionScanner(adapter.NewLocalGoFileAdapter())
	workflow = domain.NewWorkflow(fsAdapter, manifestStore, sourceScanner, ui)
}

const pathPatternsHelp = `Paths are resolved against the source root (--root). Without paths the
whole root is scanned:
  - reqtrace check              scan the whole source root
  - reqtrace check ./pkg ./cmd  scan only these directories`

const rootLongDescription = `Reqtrace links documented requirements to the source code implementing them.

Requirements declare relations to files, functions, classes or line ranges in
a YAML manifest; source files may carry @relation(...) markers. Reqtrace
cross-checks both sides and reports how much of every file is covered by
documented requirements.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "reqtrace",
		Short:        "Requirements-to-source traceability tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&requirementsFlag, requirementsFlagName, "r",
		viper.GetString(requirementsConfigKey),
		"requirement manifest (YAML)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(requirementsFlagName), requirementsConfigKey)

	cmd.PersistentFlags().StringVar(&rootDirFlag, rootFlagName, viper.GetString(rootConfigKey), "source root directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().IntP(parallelFlagName, "p", viper.GetInt(scanParallelConfigKey), "number of files scanned in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), scanParallelConfigKey)

	cmd.PersistentFlags().StringSlice(extensionFlagName, viper.GetStringSlice(scanExtensionsKey), "file extensions scanned for markers")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extensionFlagName), scanExtensionsKey)

	cmd.PersistentFlags().Bool(strictFlagName, viper.GetBool(strictConfigKey), "fail on bindings that match no code and on files that cannot be scanned")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(strictFlagName), strictConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (defaults to log.filename)")
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

// loadArgs assembles the load session from the resolved configuration.
func loadArgs(args []string) domain.LoadArgs {
	return domain.LoadArgs{
		Requirements: m.Path(viper.GetString(requirementsConfigKey)),
		Root:         m.Path(viper.GetString(rootConfigKey)),
		Paths:        parsePaths(args),
		Exclude:      viper.GetStringSlice(excludeConfigKey),
		Extensions:   viper.GetStringSlice(scanExtensionsKey),
		Threads:      viper.GetInt(scanParallelConfigKey),
		Strict:       viper.GetBool(strictConfigKey),
	}
}
