// Package naming provides the case conversion used for Swagger type names.
//
// apiDoc declarations spell types the way authors write them ("String",
// "Number", "Boolean"); Swagger 2.0 expects lowercase primitive names.
package naming
