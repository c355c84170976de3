// Package worldgen models the JSON documents stored under
// `data/<namespace>/worldgen/` in a resource pack. Records are plain values:
// parsing builds a fresh graph per document, serialization reads it back out,
// and nothing here performs I/O or holds state, so every operation is safe
// under unlimited parallel use.
package worldgen

// TemperatureModifier adjusts a biome's temperature before the
// height-adjusted temperature is calculated.
type TemperatureModifier string

const (
	TemperatureModifierNone TemperatureModifier = "none"

	// TemperatureModifierFrozen raises some places' temperature high enough
	// to rain (0.2).
	TemperatureModifierFrozen TemperatureModifier = "frozen"
)

var validTemperatureModifiers = map[TemperatureModifier]struct{}{
	TemperatureModifierNone:   {},
	TemperatureModifierFrozen: {},
}

// Valid reports whether the modifier is a member of the closed set.
func (m TemperatureModifier) Valid() bool {
	_, ok := validTemperatureModifiers[m]
	return ok
}

// GrassColorModifier adjusts the grass color after it has been resolved.
type GrassColorModifier string

const (
	GrassColorModifierNone       GrassColorModifier = "none"
	GrassColorModifierDarkForest GrassColorModifier = "dark_forest"
	GrassColorModifierSwamp      GrassColorModifier = "swamp"
)

var validGrassColorModifiers = map[GrassColorModifier]struct{}{
	GrassColorModifierNone:       {},
	GrassColorModifierDarkForest: {},
	GrassColorModifierSwamp:      {},
}

// Valid reports whether the modifier is a member of the closed set.
func (m GrassColorModifier) Valid() bool {
	_, ok := validGrassColorModifiers[m]
	return ok
}

// CustomBiome is the typed form of one
// `data/<namespace>/worldgen/biome/*.json` document.
//
// Optional fields are pointers so that "absent" stays distinguishable from
// "present with the zero value"; an absent foliage color means "derive from
// downfall and temperature", not zero.
type CustomBiome struct {
	// HasPrecipitation determines whether the biome has precipitation.
	HasPrecipitation bool `json:"has_precipitation"`

	// Temperature controls gameplay features like grass and foliage color,
	// and the height-adjusted temperature.
	Temperature float32 `json:"temperature"`

	// TemperatureModifier defaults to none when the document omits it.
	TemperatureModifier TemperatureModifier `json:"temperature_modifier,omitempty"`

	// Downfall controls grass and foliage color.
	Downfall float32 `json:"downfall"`

	Effects Effects `json:"effects"`

	Carvers Carvers `json:"carvers"`

	// Features holds placed-feature identifiers per generation step; the full
	// game schema uses 11 steps but the count is not enforced here. Within a
	// step, identifiers apply in order, and identifiers shared between biomes
	// must keep a consistent relative order across biomes. That cross-biome
	// constraint is documentation only; this layer never checks it.
	Features [][]string `json:"features"`

	// CreatureSpawnProbability, when set, must lie in [0.0, 0.9999999];
	// parsing rejects values outside that range.
	CreatureSpawnProbability *float32 `json:"creature_spawn_probability,omitempty"`

	Spawners Spawners `json:"spawners"`
}

// Effects describes the ambient effects of a biome. Colors are packed RGB
// integers; converting from textual hex is the caller's concern.
type Effects struct {
	FogColor      uint32 `json:"fog_color"`
	SkyColor      uint32 `json:"sky_color"`
	WaterColor    uint32 `json:"water_color"`
	WaterFogColor uint32 `json:"water_fog_color"`

	// FoliageColor, when nil, is derived downstream from downfall and
	// temperature.
	FoliageColor *uint32 `json:"foliage_color,omitempty"`

	// GrassColor, when nil, is derived downstream from downfall and
	// temperature.
	GrassColor *uint32 `json:"grass_color,omitempty"`

	// GrassColorModifier defaults to none when the document omits it.
	GrassColorModifier GrassColorModifier `json:"grass_color_modifier,omitempty"`

	Particle *Particle `json:"particle,omitempty"`

	// AmbientSound is the namespaced ID of the ambient sound event.
	AmbientSound *string `json:"ambient_sound,omitempty"`

	MoodSound      *MoodSound      `json:"mood_sound,omitempty"`
	AdditionsSound *AdditionsSound `json:"additions_sound,omitempty"`
	Music          *Music          `json:"music,omitempty"`

	// Spawners and SpawnCosts are distinct from the biome's top-level
	// spawners; the duplication mirrors the documented document structure.
	Spawners   Spawners   `json:"spawners,omitempty"`
	SpawnCosts SpawnCosts `json:"spawn_costs,omitempty"`
}

// MoodSound configures the biome's mood sound. All fields are required.
type MoodSound struct {
	// Sound is the namespaced ID of the sound event.
	Sound string `json:"sound"`

	// TickDelay is the minimum delay between two plays.
	TickDelay uint32 `json:"tick_delay"`

	// BlockSearchExtent bounds the cubic range searched for a place to play
	// the sound; the edge length is 2*BlockSearchExtent around the player.
	BlockSearchExtent uint32 `json:"block_search_extent"`

	// Offset moves the sound source further from the player as it grows.
	Offset float64 `json:"offset"`
}

// AdditionsSound configures the biome's additions sound.
type AdditionsSound struct {
	// Sound is the namespaced ID of the sound event.
	Sound string `json:"sound"`

	// TickChance is the per-tick probability to start playing the sound. The
	// game clamps values above 1 to 1 and below 0 to 0 at use; parsing stores
	// the value as given.
	TickChance float64 `json:"tick_chance"`
}

// Music configures biome-specific music. The schema does not require
// MinDelay <= MaxDelay; the lint layer flags inverted ranges instead.
type Music struct {
	// Sound is the namespaced ID of the sound event.
	Sound string `json:"sound"`

	MinDelay uint32 `json:"min_delay"`
	MaxDelay uint32 `json:"max_delay"`

	// ReplaceCurrentMusic replaces music that is already playing.
	ReplaceCurrentMusic bool `json:"replace_current_music"`
}

// Carvers is a placeholder for the carver sub-schema, which is not modeled
// yet. Content found inside the object is dropped on parse and not emitted
// on serialize.
type Carvers struct{}

// Spawners is a placeholder for entity spawning settings, semantically a map
// from mob category to spawn entries. Content is dropped on parse and not
// emitted on serialize.
type Spawners struct{}

// SpawnCosts is a placeholder for spawn cost settings. Content is dropped on
// parse and not emitted on serialize.
type SpawnCosts struct{}

// Particle is a placeholder for the particle sub-schema. Content is dropped
// on parse and not emitted on serialize.
type Particle struct{}
