package converter

import (
	"testing"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/swagger"
	"github.com/stretchr/testify/assert"
)

func TestPathParameters(t *testing.T) {
	params := pathParameters([]apidoc.Field{
		{Field: "id", Type: "Number", Description: "<p>The id.</p>"},
		{Field: "avatar", Type: "file", Optional: true},
		{Field: "user.name", Type: "String"},
	})

	assert.Equal(t, []*swagger.Parameter{
		{Name: "id", In: swagger.InPath, Required: true, Type: "number", Description: "The id."},
		{Name: "avatar", In: swagger.InFormData, Required: false, Type: "file"},
		{Name: "user.name", In: swagger.InPath, Required: true, Type: "string"},
	}, params)

	assert.Empty(t, pathParameters(nil))
}

func TestFilterPathParameters(t *testing.T) {
	params := pathParameters([]apidoc.Field{
		{Field: "id", Type: "Number"},
		{Field: "foo.bar", Type: "String"},
		{Field: "upload", Type: "file"},
		{Field: "slug", Type: "String"},
	})

	kept, dropped := filterPathParameters(params, []string{"id", "slug"})
	names := make([]string, 0, len(kept))
	for _, p := range kept {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"id", "upload", "slug"}, names)
	assert.Equal(t, []string{"foo.bar"}, dropped)

	kept, dropped = filterPathParameters(params, nil)
	assert.Len(t, kept, 1)
	assert.Equal(t, "upload", kept[0].Name)
	assert.Len(t, dropped, 3)
}
