package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/converter"
	"github.com/erraggy/apidocswagger/oaserrors"
	"github.com/erraggy/apidocswagger/swagger"
	"github.com/erraggy/apidocswagger/validator"
	"go.yaml.in/yaml/v4"
)

// Response headers summarizing a conversion.
const (
	HeaderWarnings         = "X-Apidocswagger-Warnings"
	HeaderInfos            = "X-Apidocswagger-Infos"
	HeaderValid            = "X-Apidocswagger-Valid"
	HeaderValidationErrors = "X-Apidocswagger-Validation-Errors"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type issueBody struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
}

type statsBody struct {
	Paths       int `json:"paths"`
	Operations  int `json:"operations"`
	Definitions int `json:"definitions"`
	Properties  int `json:"properties"`
}

type reportBody struct {
	Error    string          `json:"error,omitempty"`
	Success  bool            `json:"success"`
	Valid    *bool           `json:"valid,omitempty"`
	Stats    statsBody       `json:"stats"`
	Issues   []issueBody     `json:"issues"`
	Document json.RawMessage `json:"document"`
}

type validateBody struct {
	Valid      bool        `json:"valid"`
	ErrorCount int         `json:"error_count"`
	Errors     []issueBody `json:"errors"`
}

// convertQuery is the parsed query string of POST /v1/convert.
type convertQuery struct {
	format   swagger.Format
	validate bool
	report   bool
	opts     []converter.Option
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// handleConvert accepts the api_data.json array, or an object carrying it
// under "api" with optional "project" metadata.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q, err := parseConvertQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	project, err := projectFromBody(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	logger := apidoc.NewSlogAdapter(s.logger.With("request_id", RequestID(r.Context())))
	opts := append([]converter.Option{
		converter.WithBytes(body),
		converter.WithLogger(logger),
	}, q.opts...)
	if project != nil {
		opts = append(opts, converter.WithProject(*project))
	}

	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		s.metrics.RecordConversion("failed", 0)
		// Strict mode keeps the result so the caller can see what failed.
		if q.report && result != nil {
			rep, rerr := newReport(result, nil)
			if rerr != nil {
				s.writeError(w, r, rerr)
				return
			}
			rep.Error = err.Error()
			w.Header().Set(HeaderWarnings, strconv.Itoa(result.WarningCount))
			w.Header().Set(HeaderInfos, strconv.Itoa(result.InfoCount))
			s.writeJSON(w, statusFor(err), rep)
			return
		}
		s.writeError(w, r, err)
		return
	}

	outcome := "success"
	if result.HasWarnings() {
		outcome = "warnings"
	}
	s.metrics.RecordConversion(outcome, result.Stats.Definitions)
	s.metrics.RecordIssues("warning", result.WarningCount)
	s.metrics.RecordIssues("info", result.InfoCount)

	w.Header().Set(HeaderWarnings, strconv.Itoa(result.WarningCount))
	w.Header().Set(HeaderInfos, strconv.Itoa(result.InfoCount))

	var vr *validator.Result
	if q.validate {
		vr, err = validator.Validate(r.Context(), result.Document)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.metrics.RecordValidationErrors(vr.ErrorCount)
		w.Header().Set(HeaderValid, strconv.FormatBool(vr.Valid))
		w.Header().Set(HeaderValidationErrors, strconv.Itoa(vr.ErrorCount))
	}

	if q.report {
		rep, err := newReport(result, vr)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeJSON(w, http.StatusOK, rep)
		return
	}

	data, err := swagger.Marshal(result.Document, q.format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	contentType := "application/json"
	if q.format == swagger.FormatYAML {
		contentType = "application/yaml"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// newReport builds the report=true envelope. vr may be nil.
func newReport(result *converter.ConversionResult, vr *validator.Result) (reportBody, error) {
	doc, err := swagger.MarshalJSONIndent(result.Document)
	if err != nil {
		return reportBody{}, err
	}
	rep := reportBody{
		Success: result.Success,
		Stats: statsBody{
			Paths:       result.Stats.Paths,
			Operations:  result.Stats.Operations,
			Definitions: result.Stats.Definitions,
			Properties:  result.Stats.Properties,
		},
		Issues:   make([]issueBody, 0, len(result.Issues)),
		Document: doc,
	}
	for _, issue := range result.Issues {
		rep.Issues = append(rep.Issues, toIssueBody(issue))
	}
	if vr != nil {
		rep.Valid = &vr.Valid
		for _, issue := range vr.Issues {
			rep.Issues = append(rep.Issues, toIssueBody(issue))
		}
	}
	return rep, nil
}

// handleValidate checks a Swagger 2.0 document given as JSON or YAML.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result, err := validator.ValidateBytes(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.RecordValidationErrors(result.ErrorCount)

	out := validateBody{
		Valid:      result.Valid,
		ErrorCount: result.ErrorCount,
		Errors:     make([]issueBody, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		out.Errors = append(out.Errors, toIssueBody(issue))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &oaserrors.ResourceLimitError{
				ResourceType: "body_size",
				Limit:        tooLarge.Limit,
				Message:      "request body too large",
			}
		}
		return nil, &oaserrors.ParseError{Path: "request", Message: "reading request body", Cause: err}
	}
	if len(body) == 0 {
		return nil, &oaserrors.ParseError{Path: "request", Message: "empty request body"}
	}
	return body, nil
}

func parseConvertQuery(v url.Values) (*convertQuery, error) {
	q := &convertQuery{}
	var err error
	if q.format, err = swagger.ParseFormat(v.Get("format")); err != nil {
		return nil, err
	}

	flags := map[string]*bool{"validate": &q.validate, "report": &q.report}
	var operationIDs, normalize, strict bool
	flags["operation_ids"] = &operationIDs
	flags["normalize_paths"] = &normalize
	flags["strict"] = &strict
	for name, dst := range flags {
		raw := v.Get(name)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: name, Value: raw, Message: "must be a boolean"}
		}
		*dst = b
	}

	q.opts = []converter.Option{
		converter.WithOperationIDs(operationIDs),
		converter.WithNormalizePathTemplates(normalize),
		converter.WithStrictMode(strict),
		converter.WithHost(v.Get("host")),
		converter.WithBasePath(v.Get("base_path")),
	}
	if raw := v.Get("schemes"); raw != "" {
		q.opts = append(q.opts, converter.WithSchemes(strings.Split(raw, ",")...))
	}
	return q, nil
}

// projectFromBody extracts "project" from an object body. Decoding problems
// of the endpoint list itself are left to the converter.
func projectFromBody(body []byte) (*apidoc.Project, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(body, &root); err != nil || len(root.Content) == 0 {
		return nil, nil
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return nil, nil
	}
	var envelope struct {
		Project *apidoc.Project `yaml:"project"`
	}
	if err := root.Content[0].Decode(&envelope); err != nil {
		return nil, &oaserrors.ParseError{Path: "project", Message: "decoding project metadata", Cause: err}
	}
	return envelope.Project, nil
}

func toIssueBody(issue converter.ConversionIssue) issueBody {
	return issueBody{
		Severity: issue.Severity.String(),
		Path:     issue.Path,
		Message:  issue.Message,
		Context:  issue.Context,
	}
}

// statusFor maps an error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, oaserrors.ErrResourceLimit):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, oaserrors.ErrParse), errors.Is(err, oaserrors.ErrConfig):
		return http.StatusBadRequest
	case errors.Is(err, oaserrors.ErrValidation), errors.Is(err, oaserrors.ErrConversion):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	id := RequestID(r.Context())
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", id)
	}
	s.writeJSON(w, status, errorBody{Error: err.Error(), RequestID: id})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Warn("writing response", "error", err)
	}
}
