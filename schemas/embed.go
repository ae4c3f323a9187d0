// Package schemas embeds the JSON schemas shipped with the editor.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// ResumeDocumentFile is the schema of the persisted document and of import files.
const ResumeDocumentFile = "resume_document.schema.json"

// ResumeDocument returns the document schema.
func ResumeDocument() string {
	data, err := FS.ReadFile(ResumeDocumentFile)
	if err != nil {
		panic(err)
	}
	return string(data)
}
