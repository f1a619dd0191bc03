package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/match"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [NAME]",
	Short: "List option catalogs, or the entries of one catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	set := catalog.Default()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		names := set.Names()
		if jsonOutput {
			return printJSON(out, names)
		}

		rows := make([][]string, 0, len(names))
		for _, n := range names {
			c, _ := set.Get(n)
			rows = append(rows, []string{n, fmt.Sprint(len(c.Entries)), c.Description})
		}

		return printTable(out, []string{"NAME", "ENTRIES", "DESCRIPTION"}, rows)
	}

	c, ok := set.Get(args[0])
	if !ok {
		if s := catalogSuggestion(set, args[0]); s != "" {
			return fmt.Errorf("unknown catalog %q (did you mean %s?)", args[0], s)
		}

		return fmt.Errorf("unknown catalog %q", args[0])
	}

	if jsonOutput {
		return printJSON(out, c)
	}

	rows := make([][]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		rows = append(rows, []string{e.ID, e.Name, e.Description})
	}

	return printTable(out, []string{"ID", "NAME", "DESCRIPTION"}, rows)
}

func catalogSuggestion(set *catalog.Set, name string) string {
	top := match.RankCandidates(name, set.Names()).Above(match.DefaultSuggestThreshold).Top(1)
	if len(top) == 0 {
		return ""
	}

	return top[0].ID
}
