package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/bundle/internal/ui/style"
)

var nameStyle = lipgloss.NewStyle().Foreground(style.Muted)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [project-dir]",
		Short: "Validate the project and bundle options without bundling",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, result := range c.app.Validate(c.bundleOptions(args)) {
				if result.Err != nil {
					_, _ = fmt.Fprintf(out, "%s %s\n", style.Icon(style.Cross, style.Failure), result.Name)
					return result.Err
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Icon(style.Check, style.Success), nameStyle.Render(result.Name))
			}
			return nil
		},
	}
}
