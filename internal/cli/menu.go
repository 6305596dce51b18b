package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/showcasehq/showcase/pkg/portfolio"
)

// menuCommand creates the "menu" command, printing the derived navigation
// tree the way the site sidebar would render it.
func (c *CLI) menuCommand() *cobra.Command {
	var dev bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the derived navigation menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if dev {
				cfg.Dev = true
			}
			svc, _, store, err := c.newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			for i, section := range svc.MenuItems(cmd.Context()) {
				if i > 0 {
					printNewline()
				}
				fmt.Println(StyleTitle.Render(section.Title))
				for _, item := range section.Items {
					path := item.Path
					if item.External {
						path = StyleLink.Render(path)
					} else {
						path = StyleDim.Render(path)
					}
					fmt.Printf("  %s %s  %s\n", portfolio.IconGlyph(item.Icon), StyleValue.Render(item.Label), path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dev, "dev", false, "include the development section")

	return cmd
}
