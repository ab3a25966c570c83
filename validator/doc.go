// Package validator checks generated Swagger 2.0 documents.
//
// The document is loaded into kin-openapi's openapi2 model, up-converted
// with openapi2conv and validated with the openapi3 rules. Unresolvable
// $ref targets surface during the up-conversion; everything else (missing
// info fields, path parameters that do not appear in the URL template,
// unsupported schema types, operations without responses) surfaces during
// validation. Findings are reported per document part:
//
//	result, err := validator.Validate(ctx, doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//
// Validation never changes the document.
package validator
