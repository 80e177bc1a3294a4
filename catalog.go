package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/olgasafonova/mikrotik-mcp-server/evals"
	"github.com/olgasafonova/mikrotik-mcp-server/tools"
)

// catalogEntry is one tool as printed by the tools subcommand.
type catalogEntry struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Preset   string `yaml:"preset"`
	Summary  string `yaml:"summary"`
}

// catalogGroup lists the tools of one category.
type catalogGroup struct {
	Category string         `yaml:"category"`
	Tools    []catalogEntry `yaml:"tools"`
}

// buildCatalog groups the tool specs by category, optionally keeping only
// one category.
func buildCatalog(only string) ([]catalogGroup, error) {
	var groups []catalogGroup
	for _, category := range tools.Categories() {
		if only != "" && category != only {
			continue
		}
		group := catalogGroup{Category: category}
		for _, spec := range tools.ToolsByCategory(category) {
			group.Tools = append(group.Tools, catalogEntry{
				Name:     spec.Name,
				Title:    spec.Title,
				Category: spec.Category,
				Preset:   spec.Preset.String(),
				Summary:  summary(spec.Description),
			})
		}
		groups = append(groups, group)
	}
	if only != "" && len(groups) == 0 {
		return nil, fmt.Errorf("unknown category %q", only)
	}
	return groups, nil
}

// summary is the first line of a tool description.
func summary(description string) string {
	first, _, _ := strings.Cut(description, "\n")
	return first
}

// writeCatalog prints the catalog as YAML.
func writeCatalog(w io.Writer, only string) error {
	groups, err := buildCatalog(only)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(groups); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

// knownTools is the set of catalog tool names.
func knownTools() map[string]bool {
	known := make(map[string]bool, len(tools.AllTools))
	for _, spec := range tools.AllTools {
		known[spec.Name] = true
	}
	return known
}

// writeEvalReport summarizes the embedded eval suites and checks that every
// tool they name is in the catalog.
func writeEvalReport(w io.Writer, suite string, verbose bool) error {
	if suite != "all" && suite != "tool_selection" && suite != "confusion_pairs" {
		return fmt.Errorf("unknown suite %q", suite)
	}

	var problems []string
	if suite == "all" || suite == "tool_selection" {
		s, err := evals.LoadToolSelectionSuite()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Tool Selection Suite: %s (v%s)\n", s.Name, s.Version)
		fmt.Fprintf(w, "Total Tests: %d\n", len(s.Tests))
		if verbose {
			for _, test := range s.Tests {
				fmt.Fprintf(w, "  [%s] %s\n    -> %s\n", test.ID, test.Input, test.ExpectedTool)
			}
		}
		fmt.Fprintln(w)
		problems = append(problems, s.Validate(knownTools())...)
	}

	if suite == "all" || suite == "confusion_pairs" {
		s, err := evals.LoadConfusionPairSuite()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Confusion Pairs Suite: %s (v%s)\n", s.Name, s.Version)
		for _, pair := range s.Pairs {
			fmt.Fprintf(w, "  %s: %v, %d tests\n", pair.ID, pair.Tools, len(pair.Tests))
			if verbose {
				fmt.Fprintf(w, "    Rule: %s\n", pair.Disambiguation)
			}
		}
		fmt.Fprintln(w)
		problems = append(problems, s.Validate(knownTools())...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("suites reference tools outside the catalog:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
