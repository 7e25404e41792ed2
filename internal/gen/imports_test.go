package gen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMergeImports(t *testing.T) {
	in := []ImportRequirement{
		{Path: "../user/user.entity", Named: []string{"User"}},
		{Path: "../post/post.entity", Named: []string{"Post"}},
		{Path: "../user/user.entity", Named: []string{"User"}},
		{Path: "../user/user.entity", Named: []string{"UserSchema"}},
	}
	want := []ImportRequirement{
		{Path: "../user/user.entity", Named: []string{"User", "UserSchema"}},
		{Path: "../post/post.entity", Named: []string{"Post"}},
	}
	got := mergeImports(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merged imports mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeImportsExactPathEquality(t *testing.T) {
	// Near-identical paths never merge; equality is byte-exact.
	in := []ImportRequirement{
		{Path: "../user/user.entity", Named: []string{"User"}},
		{Path: "../User/user.entity", Named: []string{"User"}},
	}
	assert.Len(t, mergeImports(in), 2)
}

func TestMergeImportsIdempotent(t *testing.T) {
	in := []ImportRequirement{
		{Path: "a", Named: []string{"X", "Y"}},
		{Path: "b", Named: []string{"Z"}},
		{Path: "a", Named: []string{"Y"}},
	}
	once := mergeImports(in)
	twice := mergeImports(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("merge is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestMergeImportsEmpty(t *testing.T) {
	assert.Empty(t, mergeImports(nil))
}
