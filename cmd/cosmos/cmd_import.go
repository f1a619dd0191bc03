package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/mapping"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/worksheet"
)

var linkImport bool

var previewCmd = &cobra.Command{
	Use:   "preview SOURCE_ID",
	Short: "Show what importing a parameters worksheet would set",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var importCmd = &cobra.Command{
	Use:   "import SOURCE_ID DEST_ID",
	Short: "Import a parameters worksheet into a planet worksheet",
	Long: `Translates the source worksheet's speculative parameters into planet
fields and writes them over the destination worksheet. Fields the import
does not set keep their current value.

With --link the destination also records which worksheet it came from.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&linkImport, "link", false, "Record the source worksheet on the destination")
}

func warnToolType(w *worksheet.Worksheet, want string) {
	if w.ToolType != want {
		logger.Warn("unexpected worksheet tool type",
			zap.String("id", w.ID),
			zap.String("tool", w.ToolType),
			zap.String("expected", want))
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	src, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	warnToolType(src, worksheet.ToolParameters)

	im, err := newImporter()
	if err != nil {
		return err
	}

	entries := im.Preview(mapping.Source{WorksheetID: src.ID, Data: src.Data})

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to import")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Field, e.Value, e.From})
	}

	return printTable(cmd.OutOrStdout(), []string{"FIELD", "VALUE", "FROM"}, rows)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openStore(ctx)
	if err != nil {
		return err
	}

	src, err := s.Get(ctx, args[0])
	if err != nil {
		return err
	}

	dst, err := s.Get(ctx, args[1])
	if err != nil {
		return err
	}

	warnToolType(src, worksheet.ToolParameters)
	warnToolType(dst, worksheet.ToolPlanet)

	im, err := newImporter()
	if err != nil {
		return err
	}

	result := im.BuildPatch(mapping.Source{WorksheetID: src.ID, Data: src.Data}, linkImport)

	if result.Patch.IsEmpty() && result.Link == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to import")
		return nil
	}

	data, err := json.Marshal(result.Merge(dst.Object()))
	if err != nil {
		return fmt.Errorf("failed to encode worksheet %s: %w", dst.ID, err)
	}

	if err := s.Update(ctx, dst.ID, data); err != nil {
		return err
	}

	logger.Info("parameters imported",
		zap.String("source", src.ID),
		zap.String("destination", dst.ID),
		zap.Int("fields", len(result.Patch.Values())),
		zap.Bool("linked", result.Link != nil))

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), result)
	}

	for _, f := range mapping.Fields {
		if v := result.Patch.Get(f); v != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", f, v)
		}
	}

	return nil
}
