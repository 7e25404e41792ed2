package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
)

func TestIsRelation(t *testing.T) {
	reg := testRegistry(t)
	post := lookup(t, reg, "Post")

	byName := make(map[string]*GenField)
	for _, f := range post.Fields {
		byName[f.Name] = f
	}

	assert.True(t, isRelation(reg, byName["author"]))
	assert.False(t, isRelation(reg, byName["meta"]), "composite fields are not relations")
	assert.False(t, isRelation(reg, byName["title"]))

	unresolved := &GenField{Field: &dmmf.Field{Name: "ghost", Kind: dmmf.KindObject, Type: "Ghost"}}
	assert.True(t, isRelation(reg, unresolved), "unresolved targets classify as relations")

	assert.True(t, isEmbeddedType(reg, byName["meta"]))
	assert.False(t, isEmbeddedType(reg, byName["author"]))
	assert.False(t, isEmbeddedType(reg, unresolved))
}

func TestDefaultClassifiers(t *testing.T) {
	idAuto := &GenField{Field: &dmmf.Field{
		Name: "id", IsId: true, IsRequired: true,
		HasDefaultValue: true, Default: &dmmf.Default{Name: "autoincrement"},
	}}
	assert.True(t, isIdWithDefault(idAuto))
	assert.False(t, isRequiredWithDefault(idAuto), "ids are never required-with-default")

	plainID := &GenField{Field: &dmmf.Field{Name: "id", IsId: true, IsRequired: true}}
	assert.False(t, isIdWithDefault(plainID))

	defaulted := &GenField{Field: &dmmf.Field{
		Name: "role", IsRequired: true,
		HasDefaultValue: true, Default: &dmmf.Default{Value: "MEMBER"},
	}}
	assert.True(t, isRequiredWithDefault(defaulted))

	optional := &GenField{Field: &dmmf.Field{
		Name: "nick", HasDefaultValue: true, Default: &dmmf.Default{Value: "anon"},
	}}
	assert.False(t, isRequiredWithDefault(optional))
}

func TestGeneratorClassifiers(t *testing.T) {
	uuid := &GenField{Field: &dmmf.Field{
		Name: "id", HasDefaultValue: true, Default: &dmmf.Default{Name: "uuid"},
	}}
	assert.True(t, isUUIDDefault(uuid))
	assert.False(t, isNowDefault(uuid))

	now := &GenField{Field: &dmmf.Field{
		Name: "createdAt", HasDefaultValue: true, Default: &dmmf.Default{Name: "now"},
	}}
	assert.True(t, isNowDefault(now))

	// Unknown generators and literal defaults classify as no generator.
	cuid := &GenField{Field: &dmmf.Field{
		Name: "id", HasDefaultValue: true, Default: &dmmf.Default{Name: "cuid"},
	}}
	assert.False(t, isUUIDDefault(cuid))

	none := &GenField{Field: &dmmf.Field{Name: "title"}}
	assert.False(t, isUUIDDefault(none))
	assert.False(t, isNowDefault(none))
}
