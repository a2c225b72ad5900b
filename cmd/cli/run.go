package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sun-to-sort/internal/analysis"
	"sun-to-sort/internal/config"
	"sun-to-sort/internal/data"
	"sun-to-sort/internal/estimate"

	"github.com/rs/zerolog/log"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

func runEstimate(w io.Writer, cfgPath, format, outPath string) error {
	switch format {
	case formatText, formatJSON, formatCSV:
	default:
		return fmt.Errorf("unsupported format %q (want text, json or csv)", format)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	params := cfg.ToParams()
	res := estimate.New().Compute(params)
	log.Debug().
		Str("config", cfgPath).
		Str("mode", string(res.Mode)).
		Float64("demand_kwh_day", res.EnergyUsedPerDayKWh).
		Msg("estimate computed")

	render := func(out io.Writer) error {
		switch format {
		case formatJSON:
			return writeJSON(out, res)
		case formatCSV:
			return estimate.WriteCSV(out, res)
		default:
			printSummary(out, cfg.Name, params, res)
			return nil
		}
	}

	if outPath == "" {
		return render(w)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if format == formatCSV {
		err = estimate.WriteCSVFile(outPath, res)
	} else {
		err = writeFile(outPath, render)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s output to %s\n", format, outPath)
	return nil
}

// writeFile creates path, renders into it and reports the close error.
func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type namedScenario struct {
	name string
	cfg  config.Config
}

func runCompare(w io.Writer, cfgPath, catalogPath string, variants []string) error {
	base, err := config.LoadUnchecked(cfgPath)
	if err != nil {
		return err
	}
	catalog, err := data.LoadCatalogOrDefault(catalogPath)
	if err != nil {
		return err
	}

	baseName := base.Name
	if baseName == "" {
		baseName = "base"
	}
	scenarios := []namedScenario{{baseName, config.MergeScenario(*base, config.Config{})}}

	for _, v := range variants {
		name, path, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(path) == "" {
			return fmt.Errorf("variant %q: want name=path.yaml", v)
		}
		override, err := config.LoadUnchecked(path)
		if err != nil {
			return fmt.Errorf("variant %s: %w", name, err)
		}
		scenarios = append(scenarios, namedScenario{strings.TrimSpace(name), config.MergeScenario(*base, *override)})
	}

	variations := make([]analysis.Variation, 0, len(scenarios))
	for _, s := range scenarios {
		cfg := s.cfg
		cfg.ApplyDefaults(catalog)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("variant %s: %w", s.name, err)
		}
		variations = append(variations, analysis.Variation{Name: s.name, Params: cfg.ToParams()})
	}

	ranked := analysis.RankByPayback(analysis.Compare(estimate.New(), variations))
	printComparison(w, ranked)
	return nil
}

func runSweep(w io.Writer, cfgPath string, from, to, step int) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	points, err := analysis.SweepPanels(estimate.New(), cfg.ToParams(), from, to, step)
	if err != nil {
		return err
	}
	printSweep(w, points)
	return nil
}

func runCategories(w io.Writer, catalogPath string) error {
	catalog, err := data.LoadCatalogOrDefault(catalogPath)
	if err != nil {
		return err
	}
	printCategories(w, catalog)
	return nil
}
