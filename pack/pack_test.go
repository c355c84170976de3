package pack

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"

	"craftpack/resource"
	"craftpack/schemas/worldgen"
)

const validBiomeDocument = `{
	"has_precipitation": true,
	"temperature": 0.8,
	"downfall": 0.4,
	"effects": {
		"fog_color": 12638463,
		"sky_color": 7907327,
		"water_color": 4159204,
		"water_fog_color": 329011
	},
	"carvers": {},
	"features": [],
	"spawners": {}
}`

func fixturePack() fstest.MapFS {
	doc := []byte(validBiomeDocument)
	return fstest.MapFS{
		"assets/minecraft/blockstates/stone.json":          &fstest.MapFile{Data: []byte(`{}`)},
		"assets/minecraft/models/block/stone.json":         &fstest.MapFile{Data: []byte(`{}`)},
		"assets/minecraft/models/item/stick.json":          &fstest.MapFile{Data: []byte(`{}`)},
		"assets/minecraft/textures/block/stone.png":        &fstest.MapFile{Data: []byte{0x89}},
		"assets/minecraft/textures/block/water.png":        &fstest.MapFile{Data: []byte{0x89}},
		"assets/minecraft/textures/block/water.png.mcmeta": &fstest.MapFile{Data: []byte(`{}`)},
		"assets/minecraft/textures/readme.txt":             &fstest.MapFile{Data: []byte("not a texture")},
		"data/minecraft/worldgen/biome/plains.json":        &fstest.MapFile{Data: doc},
		"data/minecraft/worldgen/biome/cave/lush.json":     &fstest.MapFile{Data: doc},
		"data/otherpack/worldgen/biome/bog.json":           &fstest.MapFile{Data: doc},
	}
}

func TestNamespaces(t *testing.T) {
	p := New(fixturePack())

	assets, err := p.Namespaces(resource.CategoryAssets)
	if err != nil {
		t.Fatalf("Namespaces(assets) failed: %v", err)
	}
	if !reflect.DeepEqual(assets, []string{"minecraft"}) {
		t.Fatalf("unexpected asset namespaces: %v", assets)
	}

	data, err := p.Namespaces(resource.CategoryData)
	if err != nil {
		t.Fatalf("Namespaces(data) failed: %v", err)
	}
	if !reflect.DeepEqual(data, []string{"minecraft", "otherpack"}) {
		t.Fatalf("unexpected data namespaces: %v", data)
	}
}

func TestNamespacesMissingRoot(t *testing.T) {
	p := New(fstest.MapFS{"data/minecraft/worldgen/biome/plains.json": &fstest.MapFile{Data: []byte(validBiomeDocument)}})
	assets, err := p.Namespaces(resource.CategoryAssets)
	if err != nil {
		t.Fatalf("Namespaces failed: %v", err)
	}
	if len(assets) != 0 {
		t.Fatalf("expected no asset namespaces, got %v", assets)
	}
}

func TestResources(t *testing.T) {
	p := New(fixturePack())

	cases := []struct {
		kind      resource.Kind
		namespace string
		want      []string
	}{
		{resource.KindBlockStates, "minecraft", []string{"stone"}},
		{resource.KindBlockModel, "minecraft", []string{"stone"}},
		{resource.KindItemModel, "minecraft", []string{"stick"}},
		{resource.KindTexture, "minecraft", []string{"block/stone", "block/water"}},
		{resource.KindTextureMeta, "minecraft", []string{"block/water"}},
		{resource.KindWorldGenBiome, "minecraft", []string{"cave/lush", "plains"}},
		{resource.KindWorldGenBiome, "otherpack", []string{"bog"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind)+"/"+tc.namespace, func(t *testing.T) {
			got, err := p.Resources(tc.kind, tc.namespace)
			if err != nil {
				t.Fatalf("Resources failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestResourcesMissingDirectory(t *testing.T) {
	p := New(fixturePack())
	got, err := p.Resources(resource.KindWorldGenBiome, "nosuch")
	if err != nil {
		t.Fatalf("Resources failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no resources, got %v", got)
	}
}

func TestResourcePath(t *testing.T) {
	got := ResourcePath(resource.KindWorldGenBiome, "minecraft", "plains")
	if got != "data/minecraft/worldgen/biome/plains.json" {
		t.Fatalf("unexpected path %q", got)
	}
	got = ResourcePath(resource.KindTextureMeta, "minecraft", "block/water")
	if got != "assets/minecraft/textures/block/water.png.mcmeta" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestLoadAndBiome(t *testing.T) {
	p := New(fixturePack())

	data, err := p.Load(resource.KindBlockStates, "minecraft", "stone")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `{}` {
		t.Fatalf("unexpected blockstate payload: %s", data)
	}

	biome, err := p.Biome("minecraft", "plains")
	if err != nil {
		t.Fatalf("Biome failed: %v", err)
	}
	if biome.Temperature != 0.8 {
		t.Fatalf("expected temperature 0.8, got %v", biome.Temperature)
	}
}

func TestBiomeKeepsTypedParseError(t *testing.T) {
	fsys := fixturePack()
	fsys["data/minecraft/worldgen/biome/broken.json"] = &fstest.MapFile{Data: []byte(`{"temperature": 0.5}`)}
	p := New(fsys)

	_, err := p.Biome("minecraft", "broken")
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	var parseErr *worldgen.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected wrapped *worldgen.ParseError, got %T: %v", err, err)
	}
	if parseErr.Kind != worldgen.ErrMissingField {
		t.Fatalf("expected missing-field kind, got %q", parseErr.Kind)
	}
}

func TestLoadMissingResource(t *testing.T) {
	p := New(fixturePack())
	if _, err := p.Load(resource.KindTexture, "minecraft", "block/lava"); err == nil {
		t.Fatalf("expected missing texture to fail")
	}
}
