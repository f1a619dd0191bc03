package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/catalog"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/implication"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/mapping"
)

// now is the clock stamped on import links.
var now = time.Now

// newImporter builds the importer, overlaying the configured mapping file
// on the default table.
func newImporter() (*mapping.Importer, error) {
	set := catalog.Default()
	registry := mapping.DefaultTransforms(set)
	table := mapping.DefaultTable(registry)

	if cfg.MappingsPath != "" {
		mf, err := mapping.LoadFile(cfg.MappingsPath)
		if err != nil {
			return nil, err
		}

		rules, diags := mapping.BuildRules(mf, registry, set)
		diags.Log(logger)

		if err := diags.Error(); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.MappingsPath, err)
		}

		table = table.With(rules...)
		logger.Debug("mapping overrides loaded",
			zap.String("path", cfg.MappingsPath),
			zap.Int("rules", len(rules)))
	}

	return mapping.NewImporter(
		mapping.WithCatalogs(set),
		mapping.WithTable(table),
		mapping.WithClock(now),
		mapping.WithLogger(logger.Named("import")),
	), nil
}

// newGenerator builds the implication generator with the configured custom
// rules appended.
func newGenerator() (*implication.Generator, error) {
	opts := []implication.Option{implication.WithLogger(logger.Named("implication"))}

	if cfg.RulesPath != "" {
		rules, err := implication.LoadRulesFile(cfg.RulesPath, implication.DefaultRules())
		if err != nil {
			return nil, err
		}

		logger.Debug("custom rules loaded", zap.String("path", cfg.RulesPath), zap.Int("rules", len(rules)))
		opts = append(opts, implication.WithExtraRules(rules...))
	}

	return implication.NewGenerator(opts...), nil
}
