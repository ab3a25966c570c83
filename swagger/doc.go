// Package swagger is the Swagger 2.0 output model of apidocswagger.
//
// The model is deliberately narrow: it carries exactly the shapes the
// converter produces (operations with path, formData and body parameters,
// one 200 response, and flat definitions whose properties reference each
// other through $ref). Paths keep the order in which URLs were first added,
// both in JSON and YAML output, while definitions are emitted in sorted key
// order so that two builds of the same input are byte-identical.
//
// # Encoding
//
//	data, err := swagger.Marshal(doc, swagger.FormatYAML)
package swagger
