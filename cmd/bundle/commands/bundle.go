package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/bundle/internal/app"
	"go.trai.ch/bundle/internal/core/domain"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle [project-dir]",
		Short: "Bundle a project with its dependencies and runtimes",
		Long: `bundle resolves the dependency graph of a project for every target platform,
writes project.lock.json and copies the project, its packages and the requested
runtimes into a self-contained output directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := c.app.Bundle(cmd.Context(), c.bundleOptions(args))
			if err != nil {
				return err
			}
			if !summary.Success() {
				return domain.ErrUnresolvedDependencies
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("out", "o", "", "Where does the bundle go (default <project>/bin/output)")
	pf.String("wwwroot", "", "Name of public folder in the project directory")
	pf.String("wwwroot-out", "", "Name of public folder in the bundle, can be used only when the '--wwwroot' option or 'webroot' in project.yaml is specified")
	c.bind(pf.Lookup("out"), pf.Lookup("wwwroot"), pf.Lookup("wwwroot-out"))

	f := cmd.Flags()
	f.StringSliceP("runtime", "r", nil, "Name or full path of the runtime folder to include, or 'active' for the current runtime (repeatable)")
	f.String("configuration", "Debug", "The configuration to bundle")
	f.Bool("overwrite", false, "Remove existing files in target folders")
	f.Bool("no-source", false, "Compiles the source files into NuGet packages")
	f.Bool("native", false, "Build and include native images. User must provide targeted CoreCLR runtime versions along with this option.")
	f.String("packages", "", "Package repository directory (default $DNX_PACKAGES or ~/.dnx/packages)")
	c.bind(f.Lookup("runtime"), f.Lookup("configuration"), f.Lookup("overwrite"),
		f.Lookup("no-source"), f.Lookup("native"), f.Lookup("packages"))

	return cmd
}

// bind exposes flags through the viper instance under their own names.
func (c *CLI) bind(flags ...*pflag.Flag) {
	for _, f := range flags {
		_ = c.config.BindPFlag(f.Name, f)
	}
}

func (c *CLI) bundleOptions(args []string) app.BundleOptions {
	opts := app.BundleOptions{
		OutputPath:    c.config.GetString("out"),
		Runtimes:      c.config.GetStringSlice("runtime"),
		WebRoot:       c.config.GetString("wwwroot"),
		WebRootOut:    c.config.GetString("wwwroot-out"),
		Configuration: c.config.GetString("configuration"),
		Overwrite:     c.config.GetBool("overwrite"),
		NoSource:      c.config.GetBool("no-source"),
		Native:        c.config.GetBool("native"),
		PackagesDir:   c.config.GetString("packages"),
	}
	if len(args) > 0 {
		opts.ProjectDir = args[0]
	}
	return opts
}
