package swagger

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type definition struct {
	Type       string                     `json:"type"`
	Properties map[string]json.RawMessage `json:"properties"`
}

type securityScheme struct {
	Type string `json:"type"`
	In   string `json:"in"`
	Name string `json:"name"`
}

type document struct {
	Paths               map[string]map[string]json.RawMessage `json:"paths"`
	Definitions         map[string]definition                 `json:"definitions"`
	SecurityDefinitions map[string]securityScheme             `json:"securityDefinitions"`
}

func readDoc(t *testing.T) (document, string) {
	t.Helper()
	raw := SwaggerInfo.ReadDoc()
	var doc document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc, raw
}

func TestDoc_DefinitionsAreComplete(t *testing.T) {
	doc, raw := readDoc(t)

	for name, def := range doc.Definitions {
		assert.Equal(t, "object", def.Type, name)
		assert.NotEmpty(t, def.Properties, "%s has no properties", name)
	}
	assert.Contains(t, doc.Definitions["model.Order"].Properties, "departmentId")
	assert.Contains(t, doc.Definitions["service.LoginRequest"].Properties, "password")
	assert.NotContains(t, doc.Definitions["model.User"].Properties, "password")

	for _, m := range regexp.MustCompile(`#/definitions/([\w.]+)`).FindAllStringSubmatch(raw, -1) {
		_, ok := doc.Definitions[m[1]]
		assert.True(t, ok, "dangling reference to %s", m[1])
	}
}

func TestDoc_SessionCookieSecurity(t *testing.T) {
	doc, _ := readDoc(t)

	scheme, ok := doc.SecurityDefinitions["SessionCookie"]
	require.True(t, ok)
	assert.Equal(t, "apiKey", scheme.Type)
	assert.Equal(t, "header", scheme.In)
	assert.Equal(t, "Cookie", scheme.Name)

	public := map[string]bool{"post /api/login": true, "get /api/settings": true, "post /api/contact": true}
	for path, ops := range doc.Paths {
		for method, op := range ops {
			secured := strings.Contains(string(op), `"SessionCookie"`)
			assert.Equal(t, !public[method+" "+path], secured, "%s %s", method, path)
		}
	}
}
