// Package apidoc decodes the output of the apiDoc annotation parser.
//
// apiDoc writes two files: api_data.json, a flat array of documented
// endpoints, and api_project.json, the project metadata. This package reads
// both (JSON or YAML) into [Endpoint] and [Project] values, the input
// contract of the converter package. It does not scan source files.
//
// # Quick Start
//
//	result, err := apidoc.ParseWithOptions(apidoc.WithFilePath("doc/api_data.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ep := range result.Endpoints {
//		fmt.Println(ep.Method(), ep.URL, ep.Name)
//	}
//
// # Field Declarations
//
// Each endpoint carries sections (parameter, success, error) whose fields
// are grouped by apiDoc group name. A field name is dot-qualified to express
// nesting: "user.address.city" is the city property of the user.address
// object. The converter reads the "Parameter" and "Success 200" groups.
//
// # Logging
//
// [Logger] is the structured logging contract shared by apidocswagger
// packages. Use [NewSlogAdapter] to plug in log/slog; the default is
// [NopLogger].
package apidoc
