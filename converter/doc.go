// Package converter builds Swagger 2.0 documents from apiDoc endpoint data.
//
// apiDoc describes request and response payloads as flat, dot-qualified
// field lists ("user", "user.name", "user.address.city"). The converter
// rebuilds the implied objects as named definitions, references them with
// $ref, and assembles one operation per endpoint, grouped by URL in the
// order the URLs first appear.
//
// # Quick Start
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("doc/api_data.json"),
//		converter.WithProjectFile("doc/api_project.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := swagger.Marshal(result.Document, swagger.FormatJSON)
//
// Or use a reusable Converter instance:
//
//	c := converter.New()
//	c.OperationIDs = true
//	result, err := c.ConvertEndpoints(endpoints)
//
// # Definitions
//
// The first field of a parameter or "Success 200" block decides the block's
// root. An Object or Array row names the root definition itself; any other
// row is a property of a definition named after the endpoint. Every dotted
// field lands in the definition named by everything before its last dot.
// Definitions with the same name merge, across endpoints too: properties
// are replaced by later declarations while required names accumulate.
//
// Types map as follows:
//
//	Object     -> {type: object, $ref: #/definitions/<field>}
//	T[]        -> {type: array, items: {type: T}}
//	anything   -> {type: lowercase(anything)}
//
// # Parameters
//
// GET, DELETE, HEAD and OPTIONS emit every declared parameter as a path
// parameter ("file" fields become formData). POST, PUT and PATCH keep only
// the declared parameters that are URL placeholders and add a body
// parameter referencing the parameter block's root definition.
//
// # Errors and Issues
//
// A field declaration without a name or type aborts the build with an
// *oaserrors.ValidationError. Everything else is reported as a
// ConversionIssue: a body referencing a definition nothing declared,
// parameters dropped from body verbs, URL placeholders without a declared
// parameter, unknown verbs, an invalid contact email, and definitions
// shared between endpoints.
package converter
