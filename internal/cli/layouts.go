package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snapzone/snapzone/pkg/layoutfile"
	"github.com/snapzone/snapzone/pkg/zones"
)

// newLayoutsCmd creates the layouts command for listing available layouts.
// Without --file it lists the built-in library; with --file it lists the
// layouts defined in a TOML layout file.
func newLayoutsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List available zone layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layouts := layoutfile.Builtin()
			source := "built-in"
			if file != "" {
				f, err := layoutfile.Load(file)
				if err != nil {
					return err
				}
				layouts = f.Layouts
				source = file
			}
			printLayouts(source, layouts)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "layout file (TOML) to list instead of the built-in library")

	return cmd
}

// printLayouts renders the layout list with zone counts and gap overrides.
func printLayouts(source string, layouts []zones.Layout) {
	fmt.Println(StyleTitle.Render("Layouts") + " " + StyleDim.Render("("+source+")"))
	for _, l := range layouts {
		line := fmt.Sprintf("%s %s", StyleHighlight.Render(l.Name),
			StyleDim.Render(fmt.Sprintf("%d zones", len(l.Zones))))
		if l.Padding >= 0 {
			line += StyleDim.Render(fmt.Sprintf(" · padding %g", l.Padding))
		}
		if l.OuterGap >= 0 || (l.OuterGaps != nil && !l.OuterGaps.IsZero()) {
			line += StyleDim.Render(" · outer gap override")
		}
		if l.UseFullArea {
			line += StyleWarning.Render(" · full area")
		}
		fmt.Println("  " + line)
	}
}
