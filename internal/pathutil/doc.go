// Package pathutil provides path and reference helpers used while building
// Swagger documents from apiDoc endpoints.
//
// # Field Paths
//
// [FieldPath] locates a field declaration for error reporting, such as
// "endpoints[3].parameter.Parameter[1]". The string is only built when an
// error is reported:
//
//	block := pathutil.EndpointPath(i).Block("parameter", "Parameter")
//	for j, f := range fields {
//	    if f.Type == "" {
//	        return fmt.Errorf("missing type at %s", block.At(j))
//	    }
//	}
//
// # URL Templates
//
// apiDoc URLs use either express-style ":id" or Swagger-style "{id}"
// placeholders. [PathKeys] extracts both; [NormalizeTemplate] rewrites the
// former as the latter.
//
// # References
//
//	ref := pathutil.DefinitionRef("user")  // "#/definitions/user"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for security.
// It rejects symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
