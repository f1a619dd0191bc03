package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/implication"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/worksheet"
)

var archetypeName string

var implicationsCmd = &cobra.Command{
	Use:   "implications ID",
	Short: "List the implications of a mythology worksheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runImplications,
}

var applyCmd = &cobra.Command{
	Use:   "apply ID RULE_ID",
	Short: "Add an implication to the worksheet's pantheon",
	Long: `Appends a new archetype built from the implication of RULE_ID to the
worksheet's pantheon. Existing archetypes are never changed. Applying the
same rule twice adds two archetypes.`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&archetypeName, "name", "", "Name for the new archetype")
}

func runImplications(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	w, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	warnToolType(w, worksheet.ToolMythology)

	g, err := newGenerator()
	if err != nil {
		return err
	}

	imps := g.Generate(implication.Decode(w.Data))

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), imps)
	}

	if len(imps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no implications")
		return nil
	}

	for _, imp := range imps {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s (%s)\n    %s\n", imp.RuleID, imp.PerceivedConstant, imp.ArchetypeChannel, imp.Explanation)
	}

	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openStore(ctx)
	if err != nil {
		return err
	}

	w, err := s.Get(ctx, args[0])
	if err != nil {
		return err
	}

	g, err := newGenerator()
	if err != nil {
		return err
	}

	snap := implication.Decode(w.Data)

	imp, err := findImplication(g, snap, args[1])
	if err != nil {
		return err
	}

	patch := g.Apply(snap, imp)
	patch.Append[0].Name = archetypeName

	data, err := json.Marshal(patch.Merge(w.Object()))
	if err != nil {
		return fmt.Errorf("failed to encode worksheet %s: %w", w.ID, err)
	}

	if err := s.Update(ctx, w.ID, data); err != nil {
		return err
	}

	added := patch.Append[0]
	logger.Info("archetype added", zap.String("worksheet", w.ID), zap.String("archetype", added.ID), zap.String("rule", imp.RuleID))

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), added)
	}

	fmt.Fprintln(cmd.OutOrStdout(), added.ID)

	return nil
}

// findImplication returns the implication of ruleID for snap. A known rule
// that does not currently fire can still be applied.
func findImplication(g *implication.Generator, snap implication.Snapshot, ruleID string) (implication.Implication, error) {
	for _, imp := range g.Generate(snap) {
		if imp.RuleID == ruleID {
			return imp, nil
		}
	}

	r, ok := g.Rule(ruleID)
	if !ok {
		return implication.Implication{}, fmt.Errorf("unknown implication rule %q", ruleID)
	}

	logger.Warn("applying a rule that does not fire for this worksheet", zap.String("rule", ruleID))

	return r.Implication(), nil
}
