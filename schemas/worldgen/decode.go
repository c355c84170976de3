package worldgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// ErrorKind classifies why a document failed to parse.
type ErrorKind string

const (
	// ErrMalformedSyntax marks input that is not valid JSON.
	ErrMalformedSyntax ErrorKind = "malformed_syntax"

	// ErrMissingField marks a required field absent from the document.
	ErrMissingField ErrorKind = "missing_field"

	// ErrTypeMismatch marks a field whose JSON shape does not match the
	// expected scalar or record shape.
	ErrTypeMismatch ErrorKind = "type_mismatch"

	// ErrOutOfRange marks a bounded scalar outside its documented range.
	ErrOutOfRange ErrorKind = "out_of_range"
)

// MaxCreatureSpawnProbability is the inclusive upper bound for
// creature_spawn_probability; the lower bound is 0.
const MaxCreatureSpawnProbability float32 = 0.9999999

// ParseError reports why a document could not be decoded. Callers match it
// with errors.As and switch on Kind.
type ParseError struct {
	Kind ErrorKind

	// Field is the snake_case path of the offending field, when known.
	Field string

	// Expected and Actual describe the JSON shapes involved in a type
	// mismatch.
	Expected string
	Actual   string

	// Value is the offending value for range violations.
	Value float64

	err error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrMalformedSyntax:
		return fmt.Sprintf("worldgen: malformed document: %v", e.err)
	case ErrMissingField:
		return fmt.Sprintf("worldgen: missing required field %q", e.Field)
	case ErrTypeMismatch:
		return fmt.Sprintf("worldgen: field %q expects %s, got %s", e.Field, e.Expected, e.Actual)
	case ErrOutOfRange:
		return fmt.Sprintf("worldgen: field %q value %g outside [0, %g]", e.Field, e.Value, MaxCreatureSpawnProbability)
	}
	return "worldgen: parse error"
}

func (e *ParseError) Unwrap() error { return e.err }

func missingField(field string) *ParseError {
	return &ParseError{Kind: ErrMissingField, Field: field}
}

func typeMismatch(field, expected, actual string) *ParseError {
	return &ParseError{Kind: ErrTypeMismatch, Field: field, Expected: expected, Actual: actual}
}

// Wire documents mirror the on-disk layout with pointer fields so that a
// required key absent from the input is detectable after decoding. Unknown
// keys are ignored by encoding/json, which gives the forward-compatible
// ignore policy for free.
type biomeDocument struct {
	HasPrecipitation         *bool                `json:"has_precipitation"`
	Temperature              *float32             `json:"temperature"`
	TemperatureModifier      *TemperatureModifier `json:"temperature_modifier,omitempty"`
	Downfall                 *float32             `json:"downfall"`
	Effects                  *effectsDocument     `json:"effects"`
	Carvers                  *Carvers             `json:"carvers"`
	Features                 [][]string           `json:"features"`
	CreatureSpawnProbability *float32             `json:"creature_spawn_probability,omitempty"`
	Spawners                 *Spawners            `json:"spawners"`
}

type effectsDocument struct {
	FogColor           *uint32                 `json:"fog_color"`
	SkyColor           *uint32                 `json:"sky_color"`
	WaterColor         *uint32                 `json:"water_color"`
	WaterFogColor      *uint32                 `json:"water_fog_color"`
	FoliageColor       *uint32                 `json:"foliage_color,omitempty"`
	GrassColor         *uint32                 `json:"grass_color,omitempty"`
	GrassColorModifier *GrassColorModifier     `json:"grass_color_modifier,omitempty"`
	Particle           *Particle               `json:"particle,omitempty"`
	AmbientSound       *string                 `json:"ambient_sound,omitempty"`
	MoodSound          *moodSoundDocument      `json:"mood_sound,omitempty"`
	AdditionsSound     *additionsSoundDocument `json:"additions_sound,omitempty"`
	Music              *musicDocument          `json:"music,omitempty"`
	Spawners           *Spawners               `json:"spawners,omitempty"`
	SpawnCosts         *SpawnCosts             `json:"spawn_costs,omitempty"`
}

type moodSoundDocument struct {
	Sound             *string  `json:"sound"`
	TickDelay         *uint32  `json:"tick_delay"`
	BlockSearchExtent *uint32  `json:"block_search_extent"`
	Offset            *float64 `json:"offset"`
}

type additionsSoundDocument struct {
	Sound      *string  `json:"sound"`
	TickChance *float64 `json:"tick_chance"`
}

type musicDocument struct {
	Sound               *string `json:"sound"`
	MinDelay            *uint32 `json:"min_delay"`
	MaxDelay            *uint32 `json:"max_delay"`
	ReplaceCurrentMusic *bool   `json:"replace_current_music"`
}

// ParseCustomBiome decodes one biome document into its typed record. All
// failures are *ParseError values: ErrMalformedSyntax for invalid JSON,
// ErrMissingField for absent required fields, ErrTypeMismatch for wrong JSON
// shapes (including invalid enum variants), and ErrOutOfRange when
// creature_spawn_probability leaves [0, 0.9999999]. Unknown keys are ignored.
func ParseCustomBiome(data []byte) (*CustomBiome, error) {
	var doc biomeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, classifyDecodeError(err)
	}
	return doc.build()
}

// SerializeCustomBiome encodes the record as a compact UTF-8 JSON document.
// Required fields are always emitted; optional fields that are absent, and
// enum fields holding their none default, are omitted.
func SerializeCustomBiome(b *CustomBiome) ([]byte, error) {
	data, err := json.Marshal(b.document())
	if err != nil {
		return nil, fmt.Errorf("worldgen: serialize biome: %w", err)
	}
	return data, nil
}

func classifyDecodeError(err error) *ParseError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ParseError{
			Kind:     ErrTypeMismatch,
			Field:    typeErr.Field,
			Expected: jsonShape(typeErr.Type),
			Actual:   typeErr.Value,
			err:      err,
		}
	}
	return &ParseError{Kind: ErrMalformedSyntax, err: err}
}

// jsonShape names the JSON shape a Go type decodes from.
func jsonShape(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

func (d *biomeDocument) build() (*CustomBiome, error) {
	switch {
	case d.HasPrecipitation == nil:
		return nil, missingField("has_precipitation")
	case d.Temperature == nil:
		return nil, missingField("temperature")
	case d.Downfall == nil:
		return nil, missingField("downfall")
	case d.Effects == nil:
		return nil, missingField("effects")
	case d.Carvers == nil:
		return nil, missingField("carvers")
	case d.Features == nil:
		return nil, missingField("features")
	case d.Spawners == nil:
		return nil, missingField("spawners")
	}

	biome := &CustomBiome{
		HasPrecipitation:    *d.HasPrecipitation,
		Temperature:         *d.Temperature,
		TemperatureModifier: TemperatureModifierNone,
		Downfall:            *d.Downfall,
		Features:            d.Features,
	}

	if d.TemperatureModifier != nil {
		if !d.TemperatureModifier.Valid() {
			return nil, typeMismatch("temperature_modifier", `"none" or "frozen"`, fmt.Sprintf("%q", *d.TemperatureModifier))
		}
		biome.TemperatureModifier = *d.TemperatureModifier
	}

	if d.CreatureSpawnProbability != nil {
		p := *d.CreatureSpawnProbability
		if p < 0 || p > MaxCreatureSpawnProbability {
			return nil, &ParseError{Kind: ErrOutOfRange, Field: "creature_spawn_probability", Value: float64(p)}
		}
		biome.CreatureSpawnProbability = d.CreatureSpawnProbability
	}

	effects, err := d.Effects.build()
	if err != nil {
		return nil, err
	}
	biome.Effects = *effects

	return biome, nil
}

func (d *effectsDocument) build() (*Effects, error) {
	switch {
	case d.FogColor == nil:
		return nil, missingField("effects.fog_color")
	case d.SkyColor == nil:
		return nil, missingField("effects.sky_color")
	case d.WaterColor == nil:
		return nil, missingField("effects.water_color")
	case d.WaterFogColor == nil:
		return nil, missingField("effects.water_fog_color")
	}

	effects := &Effects{
		FogColor:           *d.FogColor,
		SkyColor:           *d.SkyColor,
		WaterColor:         *d.WaterColor,
		WaterFogColor:      *d.WaterFogColor,
		FoliageColor:       d.FoliageColor,
		GrassColor:         d.GrassColor,
		GrassColorModifier: GrassColorModifierNone,
		Particle:           d.Particle,
		AmbientSound:       d.AmbientSound,
	}

	if d.GrassColorModifier != nil {
		if !d.GrassColorModifier.Valid() {
			return nil, typeMismatch("effects.grass_color_modifier", `"none", "dark_forest" or "swamp"`, fmt.Sprintf("%q", *d.GrassColorModifier))
		}
		effects.GrassColorModifier = *d.GrassColorModifier
	}

	if d.MoodSound != nil {
		mood, err := d.MoodSound.build()
		if err != nil {
			return nil, err
		}
		effects.MoodSound = mood
	}
	if d.AdditionsSound != nil {
		additions, err := d.AdditionsSound.build()
		if err != nil {
			return nil, err
		}
		effects.AdditionsSound = additions
	}
	if d.Music != nil {
		music, err := d.Music.build()
		if err != nil {
			return nil, err
		}
		effects.Music = music
	}

	return effects, nil
}

func (d *moodSoundDocument) build() (*MoodSound, error) {
	switch {
	case d.Sound == nil:
		return nil, missingField("effects.mood_sound.sound")
	case d.TickDelay == nil:
		return nil, missingField("effects.mood_sound.tick_delay")
	case d.BlockSearchExtent == nil:
		return nil, missingField("effects.mood_sound.block_search_extent")
	case d.Offset == nil:
		return nil, missingField("effects.mood_sound.offset")
	}
	return &MoodSound{
		Sound:             *d.Sound,
		TickDelay:         *d.TickDelay,
		BlockSearchExtent: *d.BlockSearchExtent,
		Offset:            *d.Offset,
	}, nil
}

func (d *additionsSoundDocument) build() (*AdditionsSound, error) {
	switch {
	case d.Sound == nil:
		return nil, missingField("effects.additions_sound.sound")
	case d.TickChance == nil:
		return nil, missingField("effects.additions_sound.tick_chance")
	}
	return &AdditionsSound{Sound: *d.Sound, TickChance: *d.TickChance}, nil
}

func (d *musicDocument) build() (*Music, error) {
	switch {
	case d.Sound == nil:
		return nil, missingField("effects.music.sound")
	case d.MinDelay == nil:
		return nil, missingField("effects.music.min_delay")
	case d.MaxDelay == nil:
		return nil, missingField("effects.music.max_delay")
	case d.ReplaceCurrentMusic == nil:
		return nil, missingField("effects.music.replace_current_music")
	}
	return &Music{
		Sound:               *d.Sound,
		MinDelay:            *d.MinDelay,
		MaxDelay:            *d.MaxDelay,
		ReplaceCurrentMusic: *d.ReplaceCurrentMusic,
	}, nil
}

func (b *CustomBiome) document() *biomeDocument {
	features := b.Features
	if features == nil {
		features = [][]string{}
	}
	doc := &biomeDocument{
		HasPrecipitation:         &b.HasPrecipitation,
		Temperature:              &b.Temperature,
		Downfall:                 &b.Downfall,
		Effects:                  b.Effects.document(),
		Carvers:                  &b.Carvers,
		Features:                 features,
		CreatureSpawnProbability: b.CreatureSpawnProbability,
		Spawners:                 &b.Spawners,
	}
	if b.TemperatureModifier != "" && b.TemperatureModifier != TemperatureModifierNone {
		doc.TemperatureModifier = &b.TemperatureModifier
	}
	return doc
}

func (e *Effects) document() *effectsDocument {
	doc := &effectsDocument{
		FogColor:      &e.FogColor,
		SkyColor:      &e.SkyColor,
		WaterColor:    &e.WaterColor,
		WaterFogColor: &e.WaterFogColor,
		FoliageColor:  e.FoliageColor,
		GrassColor:    e.GrassColor,
		Particle:      e.Particle,
		AmbientSound:  e.AmbientSound,
	}
	if e.GrassColorModifier != "" && e.GrassColorModifier != GrassColorModifierNone {
		doc.GrassColorModifier = &e.GrassColorModifier
	}
	if e.MoodSound != nil {
		m := e.MoodSound
		doc.MoodSound = &moodSoundDocument{
			Sound:             &m.Sound,
			TickDelay:         &m.TickDelay,
			BlockSearchExtent: &m.BlockSearchExtent,
			Offset:            &m.Offset,
		}
	}
	if e.AdditionsSound != nil {
		a := e.AdditionsSound
		doc.AdditionsSound = &additionsSoundDocument{Sound: &a.Sound, TickChance: &a.TickChance}
	}
	if e.Music != nil {
		m := e.Music
		doc.Music = &musicDocument{
			Sound:               &m.Sound,
			MinDelay:            &m.MinDelay,
			MaxDelay:            &m.MaxDelay,
			ReplaceCurrentMusic: &m.ReplaceCurrentMusic,
		}
	}
	return doc
}
