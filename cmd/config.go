package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ionut-t/folio/internal/config"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Set configuration values with flags, or open the config file in your editor when no flag is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			flagsSet := false

			for _, key := range []string{
				config.EditorKey,
				config.LanguageKey,
				config.DefaultZoomKey,
				config.DefaultLayoutKey,
				config.LeaderKeyKey,
				config.LogLevelKey,
				config.LogFileKey,
			} {
				if !cmd.Flags().Changed(key) {
					continue
				}

				value, _ := cmd.Flags().GetString(key)
				if err := config.Set(key, value); err != nil {
					return err
				}

				flagsSet = true
				fmt.Printf("%s set to: %q\n", key, value)
			}

			if cmd.Flags().Changed(config.DebugMenuKey) {
				value, _ := cmd.Flags().GetBool(config.DebugMenuKey)
				if err := config.Set(config.DebugMenuKey, value); err != nil {
					return err
				}

				flagsSet = true
				fmt.Printf("%s set to: %t\n", config.DebugMenuKey, value)
			}

			if cmd.Flags().Changed(config.DenyKey) {
				value, _ := cmd.Flags().GetStringSlice(config.DenyKey)
				if err := config.Set(config.DenyKey, value); err != nil {
					return err
				}

				flagsSet = true
				fmt.Printf("%s set to: %v\n", config.DenyKey, value)
			}

			if flagsSet {
				return nil
			}

			configPath, err := config.InitialiseConfigFile()
			if err != nil {
				return err
			}

			return openInEditor(configPath)
		},
	}

	cmd.Flags().StringP(config.EditorKey, "e", "", "Set the editor used to edit the config")
	cmd.Flags().StringP(config.LanguageKey, "l", "", "Set the menu language (en, de, fr)")
	cmd.Flags().StringP(config.DefaultZoomKey, "z", "", "Set the zoom new windows open with (e.g. \"fit page\", 150)")
	cmd.Flags().String(config.DefaultLayoutKey, "", "Set the layout new windows open with (single page, facing, book view, continuous)")
	cmd.Flags().StringP(config.LeaderKeyKey, "k", "", "Set the key that opens the menu bar")
	cmd.Flags().String(config.LogLevelKey, "", "Set the log level (debug, info, warn, error)")
	cmd.Flags().String(config.LogFileKey, "", "Set the log file path")
	cmd.Flags().Bool(config.DebugMenuKey, false, "Show the debug menu in release builds")
	cmd.Flags().StringSlice(config.DenyKey, nil, "Deny permissions to the viewer (disk, print, clipboard)")

	return cmd
}

func openInEditor(configPath string) error {
	editor := config.GetEditor()

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error opening editor: %w", err)
	}

	return nil
}
