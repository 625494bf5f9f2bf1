package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reqtrace.dev/pkg/reqtrace/internal/adapter"
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default reqtrace.yaml and a starter requirement manifest",
		Long: `Create a reqtrace.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually. When the configured
requirement manifest does not exist yet, a starter manifest is written too.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			manifestPath := viper.GetString(requirementsConfigKey)
			if err := writeStarterManifest(manifestPath); err != nil {
				return fmt.Errorf("failed to write requirement manifest: %w", err)
			}

			cmd.Printf("Wrote %s and %s\n", targetPath, manifestPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// starterRequirements documents the manifest format by example.
func starterRequirements() []*m.Requirement {
	return []*m.Requirement{
		{
			UID:   "REQ-1",
			Title: "Entry point",
			Relations: []m.Relation{
				{Type: "File", File: &m.FileReference{Path: "main.go", Function: "main"}},
			},
		},
	}
}

func writeStarterManifest(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	// #nosec G304 - path comes from the user's own configuration
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if err := adapter.EncodeManifest(file, starterRequirements()); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
