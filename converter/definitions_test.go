package converter

import (
	"testing"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBlockDefinitions_ObjectRoot(t *testing.T) {
	reg := NewRegistry(nil)
	top := buildBlockDefinitions(reg, []apidoc.Field{
		{Field: "user", Type: "Object"},
		{Field: "user.name", Type: "String", Optional: false},
	}, "PostUser")

	assert.Equal(t, TopLevel{Ref: "user", Type: "object"}, top)
	require.True(t, reg.Has("user"))
	assert.False(t, reg.Has("PostUser"))

	def := reg.Definitions()["user"]
	assert.Equal(t, &swagger.Property{Type: "string", Description: ""}, def.Properties["name"])
	assert.Equal(t, []string{"name"}, def.Required)
	assert.NotContains(t, def.Properties, "user", "the root row declares no property")
}

func TestBuildBlockDefinitions_ArraySuffixUnderDefaultName(t *testing.T) {
	reg := NewRegistry(nil)
	top := buildBlockDefinitions(reg, []apidoc.Field{
		{Field: "tags", Type: "String[]", Optional: true},
	}, "Item")

	assert.Equal(t, TopLevel{Ref: "Item", Type: "String[]"}, top)
	def := reg.Definitions()["Item"]
	require.NotNil(t, def)
	assert.Equal(t, &swagger.Property{Type: "array", Items: &swagger.Items{Type: "String"}}, def.Properties["tags"])
	assert.NotContains(t, def.Required, "tags")
}

func TestBuildBlockDefinitions_ArrayRoot(t *testing.T) {
	reg := NewRegistry(nil)
	top := buildBlockDefinitions(reg, []apidoc.Field{
		{Field: "data", Type: "Array", Group: "Feature"},
		{Field: "data.id", Type: "Number"},
	}, "GetFeatures")

	assert.Equal(t, TopLevel{Ref: "data", Type: "array"}, top)
	assert.Contains(t, reg.Definitions()["data"].Properties, "id")
}

func TestBuildBlockDefinitions_RootRowAloneRegisters(t *testing.T) {
	reg := NewRegistry(nil)
	top := buildBlockDefinitions(reg, []apidoc.Field{{Field: "empty", Type: "Object"}}, "E")
	assert.Equal(t, TopLevel{Ref: "empty", Type: "object"}, top)
	require.True(t, reg.Has("empty"))
	assert.Empty(t, reg.Definitions()["empty"].Properties)
}

func TestBuildBlockDefinitions_DottedScalarFirstRow(t *testing.T) {
	reg := NewRegistry(nil)
	top := buildBlockDefinitions(reg, []apidoc.Field{
		{Field: "page.size", Type: "Number"},
		{Field: "q", Type: "String", Optional: true},
	}, "Search")

	assert.Equal(t, TopLevel{Ref: "page", Type: "Number"}, top)
	assert.Contains(t, reg.Definitions()["page"].Properties, "size")
	assert.Contains(t, reg.Definitions()["Search"].Properties, "q")
}

func TestBuildBlockDefinitions_Empty(t *testing.T) {
	reg := NewRegistry(nil)
	top := buildBlockDefinitions(reg, nil, "Nothing")
	assert.Equal(t, TopLevel{Ref: "Nothing"}, top)
	assert.Equal(t, 0, reg.Len())
}

func TestBuildBlockDefinitions_NestedObjects(t *testing.T) {
	reg := NewRegistry(nil)
	buildBlockDefinitions(reg, []apidoc.Field{
		{Field: "user", Type: "Object"},
		{Field: "user.address", Type: "Object"},
		{Field: "user.address.city", Type: "String"},
		{Field: "user.address.zip", Type: "String", Optional: true},
	}, "PostUser")

	defs := reg.Definitions()
	require.Contains(t, defs, "user")
	require.Contains(t, defs, "user.address")
	assert.Equal(t, "#/definitions/user.address", defs["user"].Properties["address"].Ref)
	assert.Equal(t, []string{"address"}, defs["user"].Required)
	assert.Equal(t, []string{"city"}, defs["user.address"].Required)
	assert.Len(t, defs["user.address"].Properties, 2)
}

func TestBuildBlockDefinitions_MergesAcrossBlocks(t *testing.T) {
	reg := NewRegistry(nil)
	buildBlockDefinitions(reg, []apidoc.Field{
		{Field: "user", Type: "Object"},
		{Field: "user.name", Type: "String"},
	}, "PostUser")
	buildBlockDefinitions(reg, []apidoc.Field{
		{Field: "user", Type: "Object"},
		{Field: "user.name", Type: "String", Optional: true},
		{Field: "user.email", Type: "String", Optional: true},
	}, "PatchUser")

	def := reg.Definitions()["user"]
	assert.Len(t, def.Properties, 2)
	assert.Equal(t, []string{"name"}, def.Required)

	shared := reg.shared()
	require.Len(t, shared, 1)
	assert.Equal(t, []string{"PostUser", "PatchUser"}, shared[0].owners)
}
