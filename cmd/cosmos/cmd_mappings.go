package main

import (
	"github.com/spf13/cobra"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/mapping"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Print the active import rules as a mapping file",
	Long: `Prints the parameter-to-planet rules the importer uses, including any
configured overrides, in the YAML format read from mappings_path.`,
	Args: cobra.NoArgs,
	RunE: runMappings,
}

func runMappings(cmd *cobra.Command, args []string) error {
	im, err := newImporter()
	if err != nil {
		return err
	}

	mf := mapping.ExportTable(im.Table())

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), mf.Rules)
	}

	data, err := mapping.Marshal(mf)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
