package jsonmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rolesFixture() Value {
	return ObjectOf(Field{"user", ObjectOf(
		Field{"roles", ArrayOf(String("x"), String("y"))},
	)})
}

func TestPathRendering(t *testing.T) {
	assert.Equal(t, "", RootPath().String())
	assert.Equal(t, "user", RootPath().Field("user").String())
	assert.Equal(t, "user.roles[2]", RootPath().Field("user").Field("roles").Index(2).String())
	assert.Equal(t, "[0].name", RootPath().Index(0).Field("name").String())
}

func TestPathExtendDoesNotAlias(t *testing.T) {
	base := RootPath().Field("user")
	a := base.Field("a")
	b := base.Field("b")
	assert.Equal(t, "user.a", a.String())
	assert.Equal(t, "user.b", b.String())
}

func TestResolvePath(t *testing.T) {
	v := rolesFixture()

	got, err := ResolvePath(v, RootPath().Field("user").Field("roles").Index(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(String("y")))

	got, err = ResolvePath(v, RootPath())
	require.NoError(t, err)
	assert.True(t, got.Equal(v))
}

func TestResolvePathFailures(t *testing.T) {
	v := rolesFixture()
	tests := []struct {
		name string
		path Path
	}{
		{"missing field", RootPath().Field("nope")},
		{"index out of range", RootPath().Field("user").Field("roles").Index(5)},
		{"field descent into array", RootPath().Field("user").Field("roles").Field("x")},
		{"index descent into object", RootPath().Index(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePath(v, tt.path)
			require.ErrorIs(t, err, ErrPathNotFound)
		})
	}
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("user.roles.1")
	require.NoError(t, err)
	require.Len(t, p.Segments(), 3)
	assert.Equal(t, "user.roles[1]", p.String())

	p, err = ParsePath(`user\.name`)
	require.NoError(t, err)
	require.Len(t, p.Segments(), 1)
	assert.Equal(t, "user.name", p.Segments()[0].FieldName())

	p, err = ParsePath(`user\\name`)
	require.NoError(t, err)
	assert.Equal(t, `user\name`, p.Segments()[0].FieldName())
}

func TestParsePathErrors(t *testing.T) {
	_, err := ParsePath("foo..bar")
	require.ErrorIs(t, err, ErrInvalidPath)
	assert.Contains(t, err.Error(), "empty segment")

	_, err = ParsePath(`user\`)
	require.ErrorIs(t, err, ErrInvalidPath)
	assert.Contains(t, err.Error(), "trailing escape")

	_, err = ParsePath("")
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestDottedRoundTrip(t *testing.T) {
	p := NewPath(FieldSeg("user.name"), IndexSeg(0))
	assert.Equal(t, `user\.name.0`, p.Dotted())

	back, err := ParsePath(p.Dotted())
	require.NoError(t, err)
	assert.Equal(t, p.Dotted(), back.Dotted())

	assert.Equal(t, `user\\name`, NewPath(FieldSeg(`user\name`)).Dotted())
}

func TestCollectPaths(t *testing.T) {
	v := ObjectOf(
		Field{"user", ObjectOf(Field{"id", Int(1)})},
		Field{"list", ArrayOf(ObjectOf(Field{"a", Int(1)}))},
	)
	var dotted []string
	for _, p := range CollectPaths(v) {
		dotted = append(dotted, p.Dotted())
	}
	assert.Equal(t, []string{"user", "user.id", "list", "list.0", "list.0.a"}, dotted)
}
