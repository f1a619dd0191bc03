package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/worksheet"
)

var (
	worldID     string
	toolType    string
	sheetTitle  string
	listWorldID string
)

var worksheetCmd = &cobra.Command{
	Use:     "worksheet",
	Aliases: []string{"ws"},
	Short:   "Manage stored worksheets",
}

var worksheetAddCmd = &cobra.Command{
	Use:   "add FILE",
	Short: "Store a worksheet from a JSON file (- for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorksheetAdd,
}

var worksheetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored worksheets",
	Args:  cobra.NoArgs,
	RunE:  runWorksheetList,
}

var worksheetShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a worksheet's data",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorksheetShow,
}

var worksheetRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a worksheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorksheetRm,
}

func init() {
	worksheetAddCmd.Flags().StringVar(&worldID, "world", "", "World the worksheet belongs to")
	worksheetAddCmd.Flags().StringVar(&toolType, "tool", "", "Tool type (speculative-parameters, planet-designer, alien-mythology)")
	worksheetAddCmd.Flags().StringVar(&sheetTitle, "title", "", "Worksheet title")
	_ = worksheetAddCmd.MarkFlagRequired("tool")

	worksheetListCmd.Flags().StringVar(&listWorldID, "world", "", "Only list worksheets of this world")

	worksheetCmd.AddCommand(worksheetAddCmd, worksheetListCmd, worksheetShowCmd, worksheetRmCmd)
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return data, nil
}

func runWorksheetAdd(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	w := &worksheet.Worksheet{
		WorldID:  worldID,
		ToolType: toolType,
		Title:    sheetTitle,
		Data:     json.RawMessage(bytes.TrimSpace(data)),
	}

	if err := s.Create(cmd.Context(), w); err != nil {
		return err
	}

	logger.Info("worksheet stored", zap.String("id", w.ID), zap.String("tool", w.ToolType))

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), w)
	}

	fmt.Fprintln(cmd.OutOrStdout(), w.ID)

	return nil
}

func runWorksheetList(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	sheets, err := s.List(cmd.Context(), listWorldID)
	if err != nil {
		return err
	}

	if jsonOutput {
		if sheets == nil {
			sheets = []*worksheet.Worksheet{}
		}

		return printJSON(cmd.OutOrStdout(), sheets)
	}

	rows := make([][]string, 0, len(sheets))
	for _, w := range sheets {
		rows = append(rows, []string{w.ID, w.WorldID, w.ToolType, w.Title, w.UpdatedAt.Format(time.RFC3339)})
	}

	return printTable(cmd.OutOrStdout(), []string{"ID", "WORLD", "TOOL", "TITLE", "UPDATED"}, rows)
}

func runWorksheetShow(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	w, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), w)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, w.Data, "", "  "); err != nil {
		out.Reset()
		out.Write(w.Data)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.String())

	return nil
}

func runWorksheetRm(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	if err := s.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	logger.Info("worksheet deleted", zap.String("id", args[0]))

	return nil
}
