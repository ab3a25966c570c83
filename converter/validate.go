package converter

import (
	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/internal/pathutil"
	"github.com/erraggy/apidocswagger/oaserrors"
)

// validateEndpoints rejects endpoints and field declarations that lack the
// attributes the build depends on. It stops at the first problem.
//
// Only the blocks the converter reads are checked. apiDoc error fields often
// carry no type and are left alone.
func validateEndpoints(endpoints []apidoc.Endpoint) error {
	for i, e := range endpoints {
		path := pathutil.EndpointPath(i)

		switch {
		case e.Type == "":
			return &oaserrors.ValidationError{Path: path.String(), Field: "type", Message: "endpoint has no HTTP verb"}
		case e.URL == "":
			return &oaserrors.ValidationError{Path: path.String(), Field: "url", Message: "endpoint has no URL"}
		}

		if err := validateBlock(path.Block("parameter", apidoc.GroupParameter), e.ParameterFields()); err != nil {
			return err
		}
		if err := validateBlock(path.Block("success", apidoc.GroupSuccess200), e.SuccessFields()); err != nil {
			return err
		}
	}
	return nil
}

func validateBlock(block pathutil.FieldPath, fields []apidoc.Field) error {
	for j, f := range fields {
		switch {
		case f.Field == "":
			return &oaserrors.ValidationError{Path: block.At(j).String(), Field: "field", Value: f.Type, Message: "field declaration has no name"}
		case f.Type == "":
			return &oaserrors.ValidationError{Path: block.At(j).String(), Field: "type", Value: f.Field, Message: "field declaration has no type"}
		}
	}
	return nil
}
