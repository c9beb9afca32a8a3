package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/usestring/tripfinder-mcp/pkg/mcpsrv"
)

func (a *app) favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite destinations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := mcpsrv.NewDeps(cmd.Context(), mcpsrv.WithConfig(a.cfg))
			if err != nil {
				return err
			}
			defer deps.Close()

			out := cmd.OutOrStdout()
			ids := deps.Favorites.IDs()
			if len(ids) == 0 {
				_, err = fmt.Fprintln(out, "no favorites yet")
				return err
			}
			for _, id := range ids {
				title := "(not in catalog)"
				if d, ok := deps.Catalog.Get(id); ok {
					title = d.Title
				}
				if _, err := fmt.Fprintf(out, "%3d  %s\n", id, title); err != nil {
					return err
				}
			}
			return nil
		},
	})

	cmd.AddCommand(a.favoriteChangeCmd("add", "Add destinations to favorites"))
	cmd.AddCommand(a.favoriteChangeCmd("remove", "Remove destinations from favorites"))

	return cmd
}

var pastTense = map[string]string{"add": "added", "remove": "removed"}

func (a *app) favoriteChangeCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("destination id must be an integer: %q", arg)
				}
				ids = append(ids, id)
			}

			ctx := cmd.Context()
			deps, err := mcpsrv.NewDeps(ctx, mcpsrv.WithConfig(a.cfg))
			if err != nil {
				return err
			}
			defer deps.Close()

			out := cmd.OutOrStdout()
			for _, id := range ids {
				var changed bool
				switch action {
				case "add":
					if !deps.Catalog.Has(id) {
						return fmt.Errorf("destination %d not found", id)
					}
					changed, err = deps.Favorites.Add(ctx, id)
				default:
					changed, err = deps.Favorites.Remove(ctx, id)
				}
				if err != nil {
					return err
				}
				status := "unchanged"
				if changed {
					status = pastTense[action]
				}
				if _, err := fmt.Fprintf(out, "%d %s\n", id, status); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
