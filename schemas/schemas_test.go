package schemas_test

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/jonathan/resume-editor/internal/schemas"
	"github.com/jonathan/resume-editor/internal/types"
	embedded "github.com/jonathan/resume-editor/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	files, err := fs.Glob(embedded.FS, "*.schema.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, schemaFile := range files {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := embedded.FS.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare $schema and type")
		})
	}
}

func TestResumeDocumentSchema_AcceptsDefaultDocument(t *testing.T) {
	data, err := json.Marshal(types.NewDocument())
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(embedded.ResumeDocument(), string(data)))
}

func TestResumeDocumentSchema_AcceptsFilledDocument(t *testing.T) {
	doc := types.NewDocument()
	doc.Contact.FullName = "Ada Lovelace"
	doc.Contact.ShowCountry = true
	doc.Experiences = []types.Experience{{Company: "Analytical Engines", Position: "Engineer", Description: "<b>Built</b> things"}}
	doc.Education = []types.Education{{School: "Home", Degree: "BSc"}}
	doc.Skills = []string{"Go"}
	doc.Courses = []string{"Compilers"}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(embedded.ResumeDocument(), string(data)))
}
