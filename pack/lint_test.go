package pack

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLintCleanPack(t *testing.T) {
	diags, err := New(fixturePack()).Lint()
	if err != nil {
		t.Fatalf("Lint failed: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestLintReportsParseErrors(t *testing.T) {
	fsys := fixturePack()
	fsys["data/minecraft/worldgen/biome/broken.json"] = &fstest.MapFile{Data: []byte(`{"has_precipitation": true}`)}
	fsys["data/minecraft/worldgen/biome/garbled.json"] = &fstest.MapFile{Data: []byte(`{not json`)}

	diags, err := New(fsys).Lint()
	if err != nil {
		t.Fatalf("Lint failed: %v", err)
	}
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", len(diags), diags)
	}
	for _, diag := range diags {
		if diag.Severity != SeverityError {
			t.Fatalf("expected error severity, got %q", diag.Severity)
		}
		if !strings.HasPrefix(diag.Path, "data/minecraft/worldgen/biome/") {
			t.Fatalf("unexpected diagnostic path %q", diag.Path)
		}
	}
}

func TestLintSuggestsNearestField(t *testing.T) {
	doc := strings.Replace(validBiomeDocument, `"spawners": {}`, `"creature_spawn_probabilty": 0.2, "spawners": {}`, 1)
	fsys := fixturePack()
	fsys["data/minecraft/worldgen/biome/typo.json"] = &fstest.MapFile{Data: []byte(doc)}

	diags, err := New(fsys).Lint()
	if err != nil {
		t.Fatalf("Lint failed: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	diag := diags[0]
	if diag.Severity != SeverityWarning {
		t.Fatalf("expected warning severity, got %q", diag.Severity)
	}
	if !strings.Contains(diag.Message, "creature_spawn_probabilty") {
		t.Fatalf("unexpected message %q", diag.Message)
	}
	if diag.Suggestion != "creature_spawn_probability" {
		t.Fatalf("expected suggestion creature_spawn_probability, got %q", diag.Suggestion)
	}
}

func TestLintUnknownFieldWithoutNearMatch(t *testing.T) {
	doc := strings.Replace(validBiomeDocument, `"spawners": {}`, `"zzzzzzzz": 1, "spawners": {}`, 1)
	fsys := fixturePack()
	fsys["data/minecraft/worldgen/biome/odd.json"] = &fstest.MapFile{Data: []byte(doc)}

	diags, err := New(fsys).Lint()
	if err != nil {
		t.Fatalf("Lint failed: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Suggestion != "" {
		t.Fatalf("expected no suggestion, got %q", diags[0].Suggestion)
	}
}

func TestLintFlagsInvertedMusicDelays(t *testing.T) {
	doc := strings.Replace(validBiomeDocument, `"water_fog_color": 329011`,
		`"water_fog_color": 329011, "music": {"sound": "minecraft:music.overworld.plains", "min_delay": 24000, "max_delay": 12000, "replace_current_music": false}`, 1)
	fsys := fixturePack()
	fsys["data/minecraft/worldgen/biome/inverted.json"] = &fstest.MapFile{Data: []byte(doc)}

	diags, err := New(fsys).Lint()
	if err != nil {
		t.Fatalf("Lint failed: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	diag := diags[0]
	if diag.Severity != SeverityWarning {
		t.Fatalf("expected warning severity, got %q", diag.Severity)
	}
	if !strings.Contains(diag.Message, "min_delay 24000 exceeds max_delay 12000") {
		t.Fatalf("unexpected message %q", diag.Message)
	}
}
