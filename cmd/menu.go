package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/ionut-t/folio/internal/config"
	"github.com/ionut-t/folio/internal/i18n"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/internal/termmenu"
	"github.com/ionut-t/folio/internal/version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type dumpOptions struct {
	flavor   string
	context  string
	format   string
	language string
	loaded   bool
}

var contextHits = map[string]menu.Flags{
	"page":      menu.FlagOnPage,
	"link":      menu.FlagOnLink,
	"comment":   menu.FlagOnComment,
	"selection": menu.FlagOnSelection,
}

func menuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Inspect the menus the viewer builds",
	}

	cmd.AddCommand(menuDumpCmd(), menuIDsCmd())

	return cmd
}

func menuDumpCmd() *cobra.Command {
	opts := dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Build a menu with the current configuration and print it",
		Example: `  folio menu dump --flavor ebook
  folio menu dump --context link --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.language == "" {
				opts.language = config.GetLanguage()
			}
			return dumpMenu(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.flavor, "flavor", "f", menu.FlavorDocument.String(), "Window flavor: document or ebook")
	cmd.Flags().StringVarP(&opts.context, "context", "c", "", "Dump the context menu for a hit: page, link, comment or selection")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "tree", "Output format: tree or yaml")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "Menu language (defaults to the configured one)")
	cmd.Flags().BoolVar(&opts.loaded, "loaded", false, "Refresh item states as if a document were open")

	return cmd
}

func processFlags() menu.Flags {
	flags := config.Permissions()
	if version.ShowDebugMenu() || config.DebugMenu() {
		flags |= menu.FlagDebug
	}
	return flags
}

func dumpMenu(w io.Writer, opts dumpOptions) error {
	flavor, err := menu.ParseFlavor(opts.flavor)
	if err != nil {
		return err
	}

	menus := menu.New(menu.Options{
		Native:     termmenu.Factory{},
		Translator: i18n.New(opts.language),
		Flags:      processFlags(),
	})

	var live menu.Container
	if opts.context == "" {
		live, err = menus.BuildMenu(flavor)
	} else {
		hit, ok := contextHits[opts.context]
		if !ok {
			return fmt.Errorf("invalid context %q", opts.context)
		}
		live, err = menus.Build(menu.ContextTable(flavor), hit)
	}
	if err != nil {
		return err
	}

	state := menu.WindowState{
		Zoom:           config.GetDefaultZoom(),
		Layout:         config.GetDefaultLayout(),
		Debug:          menus.Debug(),
		ToolbarVisible: true,
	}
	if opts.loaded {
		state.DocumentLoaded = true
		state.Caps = menu.CapFacing | menu.CapCopy
		if flavor == menu.FlavorDocument {
			state.Caps |= menu.CapContinuous | menu.CapPrint | menu.CapToc
		}
		state.Page = 1
		state.PageCount = 1
	}
	menu.Sync(state, live, flavor)

	nodes := menu.Snapshot(live)

	switch opts.format {
	case "tree":
		_, err = io.WriteString(w, menu.FormatTree(nodes))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("invalid format %q", opts.format)
}

func menuIDsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ids",
		Short: "Print the zoom and layout command identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeIDs(cmd.OutOrStdout())
		},
	}
}

func writeIDs(w io.Writer) error {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Range"), bold("Value"))

	for id, z := range menu.ZoomRange.All() {
		tbl.AddRow(id, "zoom", z)
	}
	for id, l := range menu.LayoutRange.All() {
		tbl.AddRow(id, "layout", l)
	}

	if _, err := fmt.Fprintln(w, tbl); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, faint(fmt.Sprintf("\nzoom %d..%d, layout %d..%d",
		menu.ZoomRange.First(), menu.ZoomRange.Last(), menu.LayoutRange.First(), menu.LayoutRange.Last())))
	return err
}
