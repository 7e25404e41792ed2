package gen

import (
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/types"
)

// Config defines the configuration for the generator.
type Config struct {
	Output string             `mapstructure:"output"` // Output root directory
	Mode   types.OutputMode   `mapstructure:"mode"`   // all | dto | entity
	Case   types.FileNameCase `mapstructure:"fileNameCase"`

	// DtoDir and EntityDir place the DTO and entity files of a model into
	// sub-directories of the model directory, matching the NestJS resource
	// layout ("dto", "entities"). Empty keeps the model directory flat.
	DtoDir    string `mapstructure:"dtoDir"`
	EntityDir string `mapstructure:"entityDir"`

	GenerateSchemas   bool `mapstructure:"generateSchemas"`   // Emit validation schema files
	ShowDefaultValues bool `mapstructure:"showDefaultValues"` // Surface defaulted fields in create as optional
	// ExhaustiveRelationCheck makes the requiredness of an explicitly included
	// foreign-key scalar consider every relation field backed by it, instead
	// of only the first one.
	ExhaustiveRelationCheck bool `mapstructure:"exhaustiveRelationCheck"`

	// Naming configuration per representation kind.
	CreatePrefix  string `mapstructure:"createPrefix"`
	UpdatePrefix  string `mapstructure:"updatePrefix"`
	ConnectPrefix string `mapstructure:"connectPrefix"`
	DtoSuffix     string `mapstructure:"dtoSuffix"`
	EntitySuffix  string `mapstructure:"entitySuffix"`
	SchemaSuffix  string `mapstructure:"schemaSuffix"`

	// EnumImportPath is the import-path template for enum-origin references.
	// The {name} placeholder is replaced with the enum's file name.
	EnumImportPath string `mapstructure:"enumImportPath"`
}

// ResolveDefaults fills in the defaults for unset options.
func (c *Config) ResolveDefaults() {
	if c.Output == "" {
		c.Output = "generated"
	}
	if c.Mode == "" {
		c.Mode = types.ModeAll
	}
	if c.Case == "" {
		c.Case = types.CaseKebab
	}
	if c.CreatePrefix == "" {
		c.CreatePrefix = "Create"
	}
	if c.UpdatePrefix == "" {
		c.UpdatePrefix = "Update"
	}
	if c.ConnectPrefix == "" {
		c.ConnectPrefix = "Connect"
	}
	if c.DtoSuffix == "" {
		c.DtoSuffix = "Dto"
	}
	if c.SchemaSuffix == "" {
		c.SchemaSuffix = "Schema"
	}
	if c.EnumImportPath == "" {
		c.EnumImportPath = "../enums/{name}"
	}
}
