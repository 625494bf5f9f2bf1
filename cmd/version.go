package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const develVersion = "devel"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the reqtrace version",
		Long: `Print the reqtrace release, the VCS revision it was built from, the Go
toolchain and the reqtrace.yaml schema version it reads.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			cmd.Println(formatVersion(info))
		},
	}
}

// formatVersion renders build info as
// "reqtrace <release> (<revision>, <go>) config v<n>". Missing parts fall
// back to "devel" and "unknown".
func formatVersion(info *debug.BuildInfo) string {
	release, revision, goVersion := develVersion, "unknown", "unknown"

	if info != nil {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			release = v
		}

		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}

		for _, setting := range info.Settings {
			if setting.Key != "vcs.revision" || setting.Value == "" {
				continue
			}

			revision = setting.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		}
	}

	return fmt.Sprintf("reqtrace %s (%s, %s) config v%d", release, revision, goVersion, currentConfigVersion)
}
