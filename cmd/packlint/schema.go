package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"craftpack/schemas/worldgen"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON Schema for worldgen biome documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSchemaOut == "" {
			return fmt.Errorf("--out is required")
		}
		if err := writeSchema(flagSchemaOut, buildBiomeSchema()); err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
		logger.Info("schema written", "path", flagSchemaOut)
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "path to write the JSON schema")
}

func buildBiomeSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(worldgen.CustomBiome))
	schema.Title = "Worldgen Biome"
	schema.Description = "Validates data/<namespace>/worldgen/biome/*.json documents"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
