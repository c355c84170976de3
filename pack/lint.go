package pack

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"craftpack/resource"
	"craftpack/schemas/worldgen"
)

// Severity grades a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one finding from a lint pass over a pack.
type Diagnostic struct {
	Path       string   `json:"path"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// knownBiomeFields is the set of top-level keys the biome schema understands.
// Unknown keys parse fine (forward-compatible ignore policy) but are worth a
// warning, usually pointing at a typo.
var knownBiomeFields = map[string]bool{
	"has_precipitation":          true,
	"temperature":                true,
	"temperature_modifier":       true,
	"downfall":                   true,
	"effects":                    true,
	"carvers":                    true,
	"features":                   true,
	"creature_spawn_probability": true,
	"spawners":                   true,
}

// Lint parses every worldgen biome document in the pack and reports parse
// failures as errors plus structural oddities as warnings. The returned
// error covers only I/O-level failures; document problems land in the
// diagnostics.
func (p *Pack) Lint() ([]Diagnostic, error) {
	namespaces, err := p.Namespaces(resource.CategoryData)
	if err != nil {
		return nil, err
	}

	var diags []Diagnostic
	for _, namespace := range namespaces {
		names, err := p.Resources(resource.KindWorldGenBiome, namespace)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			pth := ResourcePath(resource.KindWorldGenBiome, namespace, name)
			data, err := p.Load(resource.KindWorldGenBiome, namespace, name)
			if err != nil {
				diags = append(diags, Diagnostic{Path: pth, Severity: SeverityError, Message: err.Error()})
				continue
			}
			diags = append(diags, lintBiomeDocument(pth, data)...)
		}
	}
	return diags, nil
}

func lintBiomeDocument(pth string, data []byte) []Diagnostic {
	biome, err := worldgen.ParseCustomBiome(data)
	if err != nil {
		return []Diagnostic{{Path: pth, Severity: SeverityError, Message: err.Error()}}
	}

	var diags []Diagnostic
	for _, key := range unknownTopLevelKeys(data) {
		diag := Diagnostic{
			Path:     pth,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("unknown field %q", key),
		}
		if nearest, ok := nearestBiomeField(key); ok {
			diag.Suggestion = nearest
		}
		diags = append(diags, diag)
	}

	if music := biome.Effects.Music; music != nil && music.MinDelay > music.MaxDelay {
		diags = append(diags, Diagnostic{
			Path:     pth,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("music min_delay %d exceeds max_delay %d", music.MinDelay, music.MaxDelay),
		})
	}

	return diags
}

func unknownTopLevelKeys(data []byte) []string {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	var unknown []string
	for key := range doc {
		if !knownBiomeFields[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// nearestBiomeField returns the known field closest to key, when one lies
// within a length-scaled edit-distance budget.
func nearestBiomeField(key string) (string, bool) {
	best := ""
	bestDist := -1
	for field := range knownBiomeFields {
		dist := levenshtein.ComputeDistance(key, field)
		if dist > levenshteinLimit(len(field)) {
			continue
		}
		if bestDist == -1 || dist < bestDist || (dist == bestDist && field < best) {
			best = field
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
