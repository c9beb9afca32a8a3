package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/pkg/mcpsrv"
)

func (a *app) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent searches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := mcpsrv.NewDeps(cmd.Context(), mcpsrv.WithConfig(a.cfg))
			if err != nil {
				return err
			}
			defer deps.Close()

			out := cmd.OutOrStdout()
			entries := deps.Store.History()
			if len(entries) == 0 {
				_, err = fmt.Fprintln(out, "no searches yet")
				return err
			}
			for _, e := range entries {
				link := filterstate.EncodeCriteria(e.Filters)
				if _, err := fmt.Fprintf(out, "%s  %-24q ?%s\n", e.Timestamp.Local().Format(time.DateTime), e.Query, link); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
