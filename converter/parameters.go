package converter

import (
	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/internal/naming"
	"github.com/erraggy/apidocswagger/internal/stringutil"
	"github.com/erraggy/apidocswagger/swagger"
)

// pathParameters emits one flat parameter per declared field, ignoring any
// dot qualification. "file" fields become formData, everything else path.
func pathParameters(fields []apidoc.Field) []*swagger.Parameter {
	params := make([]*swagger.Parameter, 0, len(fields))
	for _, f := range fields {
		in := swagger.InPath
		if f.Type == typeFile {
			in = swagger.InFormData
		}
		params = append(params, &swagger.Parameter{
			Name:        f.Field,
			In:          in,
			Required:    !f.Optional,
			Type:        naming.LowerType(f.Type),
			Description: stringutil.StripTags(f.Description),
		})
	}
	return params
}

// filterPathParameters drops "in: path" parameters that are not placeholders
// of the URL. It returns the kept parameters and the names it dropped.
func filterPathParameters(params []*swagger.Parameter, keys []string) (kept []*swagger.Parameter, dropped []string) {
	placeholders := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		placeholders[k] = struct{}{}
	}
	kept = make([]*swagger.Parameter, 0, len(params))
	for _, p := range params {
		if p.In == swagger.InPath {
			if _, ok := placeholders[p.Name]; !ok {
				dropped = append(dropped, p.Name)
				continue
			}
		}
		kept = append(kept, p)
	}
	return kept, dropped
}
