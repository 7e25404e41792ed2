package nestjsdto

import (
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/gen"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/types"
)

// Exported types & consts
type Config = gen.Config
type FileSpec = gen.FileSpec
type OutputMode = types.OutputMode
type FileNameCase = types.FileNameCase

const (
	// --- Output modes ---
	ModeAll    = types.ModeAll
	ModeDto    = types.ModeDto
	ModeEntity = types.ModeEntity

	// --- File name cases ---
	CaseCamel = types.CaseCamel
	CaseKebab = types.CaseKebab
	CaseSnake = types.CaseSnake
)
