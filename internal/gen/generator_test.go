package gen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/dmmf"
	"github.com/sohibe-xyz/prisma-generator-nestjs/internal/types"
)

func generate(t *testing.T, doc *dmmf.Document, cfg Config) map[string]string {
	t.Helper()
	files, err := Generate(doc, cfg, nil)
	require.NoError(t, err)
	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Path] = string(f.Content)
	}
	return out
}

func TestGenerateProducesAllRepresentations(t *testing.T) {
	out := generate(t, testDocument(), testConfig())

	for _, path := range []string{
		"generated/user/user.dto.ts",
		"generated/user/create-user.dto.ts",
		"generated/user/update-user.dto.ts",
		"generated/user/connect-user.dto.ts",
		"generated/user/user.entity.ts",
		"generated/post/post.entity.ts",
		"generated/enums/role.enum.ts",
	} {
		assert.Contains(t, out, path)
	}

	// Composite types produce no connect or entity file.
	assert.Contains(t, out, "generated/meta/meta.dto.ts")
	assert.NotContains(t, out, "generated/meta/connect-meta.dto.ts")
	assert.NotContains(t, out, "generated/meta/meta.entity.ts")
}

func TestGenerateIndexFiles(t *testing.T) {
	cfg := testConfig()
	cfg.GenerateSchemas = true
	out := generate(t, testDocument(), cfg)

	index := out["generated/user/index.ts"]
	require.NotEmpty(t, index)
	assert.Contains(t, index, "export * from './user.dto';")
	assert.Contains(t, index, "export * from './create-user.dto';")
	assert.Contains(t, index, "export * from './user.entity';")
	assert.Contains(t, index, "export * from './user.entity.schema';")

	meta := out["generated/meta/index.ts"]
	assert.NotContains(t, meta, "entity")
}

func TestGenerateResourceLayout(t *testing.T) {
	cfg := testConfig()
	cfg.DtoDir = "dto"
	cfg.EntityDir = "entities"
	out := generate(t, testDocument(), cfg)

	assert.Contains(t, out, "generated/user/dto/create-user.dto.ts")
	assert.Contains(t, out, "generated/user/entities/user.entity.ts")
	assert.NotContains(t, out, "generated/user/user.entity.ts")

	entity := out["generated/post/entities/post.entity.ts"]
	assert.Contains(t, entity, "import { User } from '../../user/entities/user.entity';")
	assert.Contains(t, entity, "import { MetaDto } from '../../meta/dto/meta.dto';")

	userEntity := out["generated/user/entities/user.entity.ts"]
	assert.Contains(t, userEntity, "import { Role } from '../../enums/role.enum';")

	index := out["generated/user/index.ts"]
	assert.Contains(t, index, "export * from './dto/create-user.dto';")
	assert.Contains(t, index, "export * from './entities/user.entity';")
}

func TestGenerateDtoMode(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = types.ModeDto
	out := generate(t, testDocument(), cfg)

	assert.Contains(t, out, "generated/user/user.dto.ts")
	assert.NotContains(t, out, "generated/user/user.entity.ts")
}

func TestGenerateEntityMode(t *testing.T) {
	doc := testDocument()
	doc.Types = nil
	// Drop the composite field along with its type.
	doc.Models[1].Fields = doc.Models[1].Fields[:4]

	cfg := testConfig()
	cfg.Mode = types.ModeEntity
	out := generate(t, doc, cfg)

	assert.Contains(t, out, "generated/user/user.entity.ts")
	assert.NotContains(t, out, "generated/user/user.dto.ts")
}

func TestGenerateFatalPaths(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		cfg := testConfig()
		cfg.Mode = "proto"
		_, err := Generate(testDocument(), cfg, nil)
		assert.ErrorContains(t, err, "unknown output mode")
	})

	t.Run("unknown file-name case", func(t *testing.T) {
		cfg := testConfig()
		cfg.Case = "screaming"
		_, err := Generate(testDocument(), cfg, nil)
		assert.ErrorContains(t, err, "unknown file-name case")
	})

	t.Run("entity mode with composite types", func(t *testing.T) {
		cfg := testConfig()
		cfg.Mode = types.ModeEntity
		_, err := Generate(testDocument(), cfg, nil)
		assert.ErrorContains(t, err, "embedded types")
	})
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(testDocument(), testConfig(), nil)
	require.NoError(t, err)
	second, err := Generate(testDocument(), testConfig(), nil)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("output differs between runs (-first +second):\n%s", diff)
	}
}

func TestGenerateEntityContent(t *testing.T) {
	out := generate(t, testDocument(), testConfig())
	entity := out["generated/post/post.entity.ts"]

	assert.Contains(t, entity, "// Generated by prisma-generator-nestjs. DO NOT EDIT.")
	assert.Contains(t, entity, "export class Post {")
	assert.Contains(t, entity, "import { User } from '../user/user.entity';")
	assert.Contains(t, entity, "import { MetaDto } from '../meta/meta.dto';")
	assert.Contains(t, entity, "readonly authorId: number;")
	assert.Contains(t, entity, "author?: User | null;")
}

func TestGenerateCreateContent(t *testing.T) {
	out := generate(t, testDocument(), testConfig())
	create := out["generated/user/create-user.dto.ts"]

	assert.Contains(t, create, "export class CreateUserDto {")
	assert.Contains(t, create, "email: string;")
	assert.Contains(t, create, "name?: string | null;")
	assert.NotContains(t, create, "id")
	assert.NotContains(t, create, "updatedAt")
}

func TestGenerateEnumContent(t *testing.T) {
	out := generate(t, testDocument(), testConfig())
	enum := out["generated/enums/role.enum.ts"]

	assert.Contains(t, enum, "export enum Role {")
	assert.Contains(t, enum, "ADMIN = 'ADMIN',")
	assert.Contains(t, enum, "MEMBER = 'MEMBER',")
}

func TestGenerateEnumImport(t *testing.T) {
	out := generate(t, testDocument(), testConfig())
	entity := out["generated/user/user.entity.ts"]
	assert.Contains(t, entity, "import { Role } from '../enums/role.enum';")
}

func TestGenerateSchemas(t *testing.T) {
	cfg := testConfig()
	cfg.GenerateSchemas = true
	out := generate(t, testDocument(), cfg)

	schema := out["generated/user/user.entity.schema.ts"]
	require.NotEmpty(t, schema)
	assert.Contains(t, schema, "import { z } from 'zod';")
	assert.Contains(t, schema, "export const UserSchema = z.object({")
	assert.Contains(t, schema, "email: z.string(),")
	assert.Contains(t, schema, "name: z.string().nullish(),")
	assert.Contains(t, schema, "role: z.nativeEnum(Role),")
	assert.Contains(t, schema, "posts: z.array(z.lazy(() => PostSchema)).nullish(),")
	assert.Contains(t, schema, "import { PostSchema } from '../post/post.entity.schema';")

	update := out["generated/user/update-user.schema.ts"]
	require.NotEmpty(t, update)
	assert.Contains(t, update, "export const UpdateUserDtoSchema = z.object({")
	assert.Contains(t, update, "name: z.string().nullish(),")
	assert.NotContains(t, update, "secret")
}

func TestGenerateSchemaUUIDAndTimestamp(t *testing.T) {
	cfg := testConfig()
	cfg.GenerateSchemas = true
	out := generate(t, testDocument(), cfg)

	post := out["generated/post/post.entity.schema.ts"]
	assert.Contains(t, post, "id: z.string().uuid(),")

	user := out["generated/user/user.entity.schema.ts"]
	assert.Contains(t, user, "createdAt: z.string().datetime().transform((v) => new Date(v)),")
	assert.Contains(t, user, "updatedAt: z.string().datetime().transform((v) => new Date(v)),")
}

func TestGenerateSchemaSelfReference(t *testing.T) {
	doc := testDocument()
	doc.Models[0].Fields = append(doc.Models[0].Fields,
		&dmmf.Field{Name: "manager", Kind: dmmf.KindObject, Type: "User", RelationName: "Reports"})

	cfg := testConfig()
	cfg.GenerateSchemas = true
	out := generate(t, doc, cfg)

	schema := out["generated/user/user.entity.schema.ts"]
	assert.Contains(t, schema, "manager: z.lazy(() => UserSchema).nullish(),")
	assert.NotContains(t, schema, "import { UserSchema }", "self references never import themselves")
}

func TestGenerateFileNameCases(t *testing.T) {
	doc := &dmmf.Document{Models: []*dmmf.Model{{
		Name: "UserProfile",
		Fields: []*dmmf.Field{
			{Name: "id", Kind: dmmf.KindScalar, Type: "Int", IsRequired: true, IsId: true},
		},
	}}}

	cfg := testConfig()
	cfg.Case = types.CaseSnake
	out := generate(t, doc, cfg)
	assert.Contains(t, out, "generated/user_profile/user_profile.entity.ts")

	cfg.Case = types.CaseCamel
	out = generate(t, doc, cfg)
	assert.Contains(t, out, "generated/userProfile/userProfile.entity.ts")
}

func TestGenerateBannerEverywhere(t *testing.T) {
	cfg := testConfig()
	cfg.GenerateSchemas = true
	out := generate(t, testDocument(), cfg)
	for path, content := range out {
		assert.True(t, strings.HasPrefix(content, "// Generated by prisma-generator-nestjs. DO NOT EDIT."),
			"missing banner in %s", path)
	}
}
