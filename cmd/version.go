package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/ionut-t/folio/internal/config"
	"github.com/ionut-t/folio/internal/version"
	"github.com/ionut-t/folio/pkg/update"
	"github.com/ionut-t/folio/ui/styles"
	"github.com/spf13/cobra"
)

const logo = `
  __       _ _       
 / _| ___ | (_) ___  
| |_ / _ \| | |/ _ \ 
|  _| (_) | | | (_) |
|_|  \___/|_|_|\___/ 
`

const updateCheckInterval = 24 * time.Hour

func versionTemplate() string {
	versionTpl := styles.Primary.Margin(0, 2).Render(logo) + `
  Version        %s
  Commit         %s
  Release date   %s
`
	return fmt.Sprintf(versionTpl, version.Version(), version.Commit(), version.Date())
}

func versionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), versionTemplate())

			if !check {
				return nil
			}

			dir, err := config.GetStorage()
			if err != nil {
				return err
			}

			res, err := update.New(version.Version(), dir, updateCheckInterval).Check(cmd.Context())
			if err != nil {
				return fmt.Errorf("check for updates: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout())
			if res.HasUpdate {
				color.New(color.FgHiYellow, color.Bold).Fprintf(cmd.OutOrStdout(), "  folio %s is available: %s\n", res.Latest, res.URL)
			} else {
				color.New(color.Faint).Fprintln(cmd.OutOrStdout(), "  You are running the latest release.")
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&check, "check", "c", false, "Check GitHub for a newer release")

	return cmd
}
