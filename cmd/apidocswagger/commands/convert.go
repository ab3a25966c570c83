package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/converter"
	"github.com/erraggy/apidocswagger/internal/cliutil"
	"github.com/erraggy/apidocswagger/swagger"
	"github.com/erraggy/apidocswagger/validator"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output         string
	Format         string
	Project        string
	NoProject      bool
	OperationIDs   bool
	NormalizePaths bool
	Host           string
	BasePath       string
	Schemes        string
	Strict         bool
	NoInfo         bool
	Validate       bool
	Quiet          bool
	Verbose        bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Project, "p", "", "api_project.json path (default: next to the input file)")
	fs.StringVar(&flags.Project, "project", "", "api_project.json path (default: next to the input file)")
	fs.BoolVar(&flags.NoProject, "no-project", false, "do not look for api_project.json")
	fs.BoolVar(&flags.OperationIDs, "operation-ids", false, "emit endpoint names as operationId")
	fs.BoolVar(&flags.NormalizePaths, "normalize-paths", false, "rewrite :name placeholders as {name} in path keys")
	fs.StringVar(&flags.Host, "host", "", "document host")
	fs.StringVar(&flags.BasePath, "base-path", "", "document basePath (must start with /)")
	fs.StringVar(&flags.Schemes, "schemes", "", "comma-separated document schemes (http, https, ws, wss)")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any conversion warning")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress info messages")
	fs.BoolVar(&flags.Validate, "validate", false, "validate the produced document")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log conversion details to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidocswagger convert [flags] <api_data.json|->\n\n")
		cliutil.Writef(fs.Output(), "Convert apiDoc endpoint data into a Swagger 2.0 document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidocswagger convert doc/api_data.json -o swagger.json\n")
		cliutil.Writef(fs.Output(), "  apidocswagger convert -f yaml --validate doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  apidocswagger convert --normalize-paths --operation-ids doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  cat api_data.json | apidocswagger convert -q - > swagger.json\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Warnings flag best-effort choices, such as a dropped path parameter\n")
		cliutil.Writef(fs.Output(), "  - Info messages note definitions shared by several endpoints\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Conversion failed, warnings in --strict mode, or --validate found errors\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(args, os.Stdin, os.Stdout, os.Stderr)
}

func runConvert(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path or '-' for stdin")
	}
	inputPath := fs.Arg(0)

	format, err := swagger.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	projectPath := flags.Project
	if projectPath == "" && !flags.NoProject {
		projectPath = DiscoverProjectFile(inputPath)
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{inputPath, projectPath}); err != nil {
			return err
		}
	}

	logger := NewLogger(stderr, flags.Verbose)
	opts := []converter.Option{
		converter.WithLogger(apidoc.NewSlogAdapter(logger)),
		converter.WithOperationIDs(flags.OperationIDs),
		converter.WithNormalizePathTemplates(flags.NormalizePaths),
		converter.WithHost(flags.Host),
		converter.WithBasePath(flags.BasePath),
		converter.WithStrictMode(flags.Strict),
		converter.WithIncludeInfo(!flags.NoInfo),
	}
	if flags.Schemes != "" {
		opts = append(opts, converter.WithSchemes(strings.Split(flags.Schemes, ",")...))
	}
	if projectPath != "" {
		opts = append(opts, converter.WithProjectFile(projectPath))
	}
	if inputPath == StdinFilePath {
		opts = append(opts, converter.WithReader(stdin))
	} else {
		opts = append(opts, converter.WithFilePath(inputPath))
	}

	startTime := time.Now()
	result, err := converter.ConvertWithOptions(opts...)
	totalTime := time.Since(startTime)
	if result != nil && !flags.Quiet {
		printConvertReport(stderr, inputPath, projectPath, result, totalTime)
	}
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatSpecPath(inputPath), err)
	}

	var validation *validator.Result
	if flags.Validate {
		validation, err = validator.Validate(context.Background(), result.Document)
		if err != nil {
			return fmt.Errorf("validating document: %w", err)
		}
		if !flags.Quiet {
			printValidationReport(stderr, validation)
		}
	}

	data, err := swagger.Marshal(result.Document, format)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	written, err := WriteOutput(flags.Output, data, stdout)
	if err != nil {
		return err
	}
	if written != "" && !flags.Quiet {
		cliutil.Writef(stderr, "\nOutput written to: %s\n", written)
	}

	if validation != nil && !validation.Valid {
		return fmt.Errorf("document failed validation with %d error(s)", validation.ErrorCount)
	}
	return nil
}

func printConvertReport(w io.Writer, inputPath, projectPath string, result *converter.ConversionResult, totalTime time.Duration) {
	OutputHeader(w, "apiDoc to Swagger Converter", inputPath)
	if projectPath != "" {
		cliutil.Writef(w, "Project: %s\n", projectPath)
	}
	cliutil.Writef(w, "Paths: %d\n", result.Stats.Paths)
	cliutil.Writef(w, "Operations: %d\n", result.Stats.Operations)
	cliutil.Writef(w, "Definitions: %d\n", result.Stats.Definitions)
	cliutil.Writef(w, "Properties: %d\n", result.Stats.Properties)
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)

	cliutil.WriteIssues(w, "Conversion Issues", result.Issues)

	if result.Success {
		cliutil.Writef(w, "✓ Conversion successful")
		if result.InfoCount > 0 {
			cliutil.Writef(w, " (%d info)", result.InfoCount)
		}
		cliutil.Writef(w, "\n")
	} else {
		cliutil.Writef(w, "⚠ Conversion completed with %d warning(s)\n", result.WarningCount)
	}
}

func printValidationReport(w io.Writer, result *validator.Result) {
	cliutil.Writef(w, "\n")
	cliutil.WriteIssues(w, "Validation Errors", result.Issues)
	if result.Valid {
		cliutil.Writef(w, "✓ Document is valid\n")
	} else {
		cliutil.Writef(w, "✗ Document has %d validation error(s)\n", result.ErrorCount)
	}
}
