package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newPropCmd creates the prop command.
func newPropCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prop",
		Short: "Read and edit versioned properties",
		Long: `Read and edit versioned properties on paths and URLs.

Examples:
  svnq prop get svn:mime-type logo.png
  svnq prop list src/main.c
  svnq prop set svn:eol-style native src/main.c
  svnq prop del svn:executable tools/build.sh`,
	}

	cmd.AddCommand(newPropGetCmd(app))
	cmd.AddCommand(newPropListCmd(app))
	cmd.AddCommand(newPropSetCmd(app))
	cmd.AddCommand(newPropDelCmd(app))

	return cmd
}

// newPropGetCmd creates the prop get command.
func newPropGetCmd(app *app) *cobra.Command {
	var revision string

	cmd := &cobra.Command{
		Use:   "get <name> [target]",
		Short: "Print a property value",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tgt := targetOrDot(args[1:])
			value := app.client.PropGet(cmd.Context(), args[0], tgt, &svn.PropGetOptions{
				Revision: revision,
			})
			if value == "" {
				return fmt.Errorf("no property %s on %s", args[0], tgt)
			}

			app.render.Lines(value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Read the property as of this revision")

	return cmd
}

// newPropListCmd creates the prop list command.
func newPropListCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [target]",
		Short: "List property names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := app.client.PropList(cmd.Context(), targetOrDot(args), nil)
			if len(names) == 0 {
				app.logger.Info("no properties")
				return nil
			}

			app.render.List(names)
			return nil
		},
	}

	return cmd
}

// newPropSetCmd creates the prop set command.
func newPropSetCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "set <name> <value> <target...>",
		Short: "Set a property value",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.PropSet(cmd.Context(), args[0], args[1], args[2:], &svn.PropSetOptions{
				Force: force,
			})
			return app.finish("propset", res)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip sanity checks on known property names")

	return cmd
}

// newPropDelCmd creates the prop del command.
func newPropDelCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "del <name> <target...>",
		Aliases: []string{"delete"},
		Short:   "Delete a property",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.PropDel(cmd.Context(), args[0], args[1:], nil)
			return app.finish("propdel", res)
		},
	}

	return cmd
}
