package implication

import (
	"errors"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gopkg.in/yaml.v3"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/diagnostic"
)

// RuleFile is the root of a custom rules YAML document.
type RuleFile struct {
	Rules []RuleDef `yaml:"rules"`
}

// RuleDef is a rule as written in YAML. When is an expr-lang boolean
// expression over the snapshot.
type RuleDef struct {
	ID                     string `yaml:"id"`
	When                   string `yaml:"when"`
	PerceivedConstant      string `yaml:"perceivedConstant"`
	ArchetypeChannel       string `yaml:"archetypeChannel"`
	Explanation            string `yaml:"explanation"`
	SuggestedArchetypeForm string `yaml:"suggestedArchetypeForm,omitempty"`
}

// LoadRulesFile loads custom rules from path. Ids in reserved must not be
// redefined.
func LoadRulesFile(path string, reserved []Rule) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	return ParseRules(data, reserved)
}

// ParseRules parses and compiles custom rules. Every problem is reported;
// no rules are returned if any rule is invalid.
func ParseRules(data []byte, reserved []Rule) ([]Rule, error) {
	var rf RuleFile

	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	var diags diagnostic.Diagnostics

	seen := make(map[string]bool, len(reserved)+len(rf.Rules))
	for _, r := range reserved {
		seen[r.ID] = true
	}

	rules := make([]Rule, 0, len(rf.Rules))

	for i, def := range rf.Rules {
		switch {
		case def.ID == "":
			diags.AddError("missing_id", fmt.Sprintf("rule %d has no id", i), "", "")
			continue
		case seen[def.ID]:
			diags.AddError("duplicate_id", "rule id already defined", def.ID, "")
			continue
		}

		seen[def.ID] = true

		if def.PerceivedConstant == "" || def.ArchetypeChannel == "" {
			diags.AddError("incomplete_rule", "perceivedConstant and archetypeChannel are required", def.ID, "")
			continue
		}

		program, err := compile(def.When)
		if err != nil {
			diags.AddError("invalid_predicate", err.Error(), def.ID, "when")
			continue
		}

		rules = append(rules, Rule{
			ID:                     def.ID,
			Predicate:              exprPredicate(program),
			PerceivedConstant:      def.PerceivedConstant,
			ArchetypeChannel:       def.ArchetypeChannel,
			Explanation:            def.Explanation,
			SuggestedArchetypeForm: def.SuggestedArchetypeForm,
		})
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	return rules, nil
}

func compile(when string) (*vm.Program, error) {
	if when == "" {
		return nil, errors.New("empty predicate")
	}

	return expr.Compile(when, expr.Env(Snapshot{}), expr.AsBool())
}

// exprPredicate wraps a compiled program. Runtime failures count as false.
func exprPredicate(program *vm.Program) Predicate {
	return func(s Snapshot) bool {
		out, err := expr.Run(program, s)
		if err != nil {
			return false
		}

		b, _ := out.(bool)

		return b
	}
}
