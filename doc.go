// Package apidocswagger converts apiDoc endpoint descriptions into Swagger 2.0
// (OpenAPI 2.0) documents.
//
// apiDoc emits an api_data.json array describing every annotated endpoint:
// its verb, URL, name, title, and grouped parameter and success field
// declarations. apidocswagger turns that array into a single Swagger document
// with one path item per URL, one operation per endpoint, and a definitions
// section built from the declared fields.
//
// # Overview
//
// The module consists of these packages:
//
//   - apidoc: decode api_data.json and api_project.json (JSON or YAML)
//   - converter: build the Swagger document and report conversion issues
//   - swagger: the Swagger 2.0 document model and its JSON/YAML marshalling
//   - validator: check a built document for structural problems
//   - oaserrors: typed errors shared by all packages
//
// # Quick Start
//
// Convert an apiDoc output directory:
//
//	import "github.com/erraggy/apidocswagger/converter"
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("doc/api_data.json"),
//		converter.WithProjectFile("doc/api_project.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := swagger.Marshal(result.Document, swagger.FormatJSON)
//
// Nested field names such as "user.address.city" become properties of
// nested definitions. A field whose type ends in "[]" becomes an array of
// the item type. Path parameters are derived from ":name" and "{name}"
// placeholders in the URL.
//
// # Command Line
//
// The apidocswagger command exposes the same conversion:
//
//	apidocswagger convert -o swagger.json doc/api_data.json
//	apidocswagger validate swagger.json
//	apidocswagger serve -addr :8080
//	apidocswagger mcp
package apidocswagger
