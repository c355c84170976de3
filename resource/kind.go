// Package resource enumerates the closed taxonomy of resource kinds a
// structured asset/data pack can contain, together with the file-system
// conventions derived from each kind. The package is a pure lookup table:
// no I/O, no state, no error paths.
package resource

// Category identifies which pack root a resource kind lives under. The
// string value is the on-disk folder name.
type Category string

const (
	CategoryAssets Category = "assets"
	CategoryData   Category = "data"
)

// Kind identifies one member of the closed set of resource types.
type Kind string

const (
	// KindBlockStates are `.json` documents in `assets/<namespace>/blockstates/`.
	KindBlockStates Kind = "block_states"

	// KindBlockModel are `.json` documents in `assets/<namespace>/models/block/`.
	KindBlockModel Kind = "block_model"

	// KindItemModel are `.json` documents in `assets/<namespace>/models/item/`.
	KindItemModel Kind = "item_model"

	// KindTexture are `.png` files in `assets/<namespace>/textures/`.
	KindTexture Kind = "texture"

	// KindTextureMeta are `.png.mcmeta` documents in `assets/<namespace>/textures/`.
	KindTextureMeta Kind = "texture_meta"

	// KindWorldGenBiome are `.json` documents in `data/<namespace>/worldgen/biome/`.
	KindWorldGenBiome Kind = "worldgen_biome"
)

var kinds = []Kind{
	KindBlockStates,
	KindBlockModel,
	KindItemModel,
	KindTexture,
	KindTextureMeta,
	KindWorldGenBiome,
}

// Kinds returns every resource kind in declaration order. New kinds must be
// appended here as well as to the three mapping methods; the totality test
// iterates this slice to catch an unmapped variant at test time.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// Valid reports whether k is a member of the closed set.
func (k Kind) Valid() bool {
	switch k {
	case KindBlockStates, KindBlockModel, KindItemModel, KindTexture, KindTextureMeta, KindWorldGenBiome:
		return true
	}
	return false
}

// Category returns whether resources of this kind live under the assets or
// data root.
func (k Kind) Category() Category {
	switch k {
	case KindBlockStates, KindBlockModel, KindItemModel, KindTexture, KindTextureMeta:
		return CategoryAssets
	case KindWorldGenBiome:
		return CategoryData
	}
	return ""
}

// Extension returns the file extension used for this kind's files, without
// the leading dot.
func (k Kind) Extension() string {
	switch k {
	case KindBlockStates, KindBlockModel, KindItemModel, KindWorldGenBiome:
		return "json"
	case KindTexture:
		return "png"
	case KindTextureMeta:
		return "png.mcmeta"
	}
	return ""
}

// Directory returns the path segment, relative to `assets/<namespace>/` or
// `data/<namespace>/`, in which resources of this kind reside.
func (k Kind) Directory() string {
	switch k {
	case KindBlockStates:
		return "blockstates"
	case KindBlockModel:
		return "models/block"
	case KindItemModel:
		return "models/item"
	case KindTexture, KindTextureMeta:
		return "textures"
	case KindWorldGenBiome:
		return "worldgen/biome"
	}
	return ""
}
