package nestjsdto

import "github.com/sohibe-xyz/prisma-generator-nestjs/internal/annotations"

// Tag is a documentation marker recognized on model fields.
type Tag = annotations.Tag

const (
	// --- Visibility tags ---
	TagHideCreate = annotations.HideCreate
	TagHideUpdate = annotations.HideUpdate
	TagHideEntity = annotations.HideEntity

	// --- Requiredness tags ---
	TagOptionalCreate   = annotations.OptionalCreate
	TagRequiredCreate   = annotations.RequiredCreate
	TagRequiredUpdate   = annotations.RequiredUpdate
	TagRequiredRelation = annotations.RequiredRelation

	// --- Relation and type tags ---
	TagIncludeRelationId = annotations.IncludeRelationId
	TagCustomType        = annotations.CustomType
)
