package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	themesCmd.AddCommand(themesSetCmd)
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available dashboard themes",
	RunE:  runThemes,
}

var themesSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Set the active theme",
	Long:  `Set the active theme by name. Unknown names fall back to the default theme.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runThemesSet,
}

func runThemes(cmd *cobra.Command, args []string) error {
	d, proj, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tACCENT\tACTIVE")
	for _, t := range proj.ThemeCatalog {
		active := ""
		if t.Name == proj.Theme.Name {
			active = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Accent(), active)
	}
	return w.Flush()
}

func runThemesSet(cmd *cobra.Command, args []string) error {
	d, _, err := loadProjection()
	if err != nil {
		return err
	}
	defer d.Close()

	resolved, err := d.SelectTheme(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Theme set to %s (accent %s)\n", resolved.Name, resolved.Accent())
	return nil
}
