package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/internal/cliutil"
	"github.com/erraggy/apidocswagger/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Format string
	Quiet  bool
}

// ValidateReport is the structured output of the validate command.
type ValidateReport struct {
	Input      string        `json:"input" yaml:"input"`
	Valid      bool          `json:"valid" yaml:"valid"`
	ErrorCount int           `json:"errorCount" yaml:"errorCount"`
	Errors     []ReportIssue `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ReportIssue is one finding in a structured report.
type ReportIssue struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "report format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only set the exit code")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only set the exit code")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidocswagger validate [flags] <swagger.json|->\n\n")
		cliutil.Writef(fs.Output(), "Validate a Swagger 2.0 document (JSON or YAML).\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidocswagger validate swagger.json\n")
		cliutil.Writef(fs.Output(), "  apidocswagger validate --format json swagger.yaml\n")
		cliutil.Writef(fs.Output(), "  apidocswagger convert -q doc/api_data.json | apidocswagger validate -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document is valid\n")
		cliutil.Writef(fs.Output(), "  1    Document is invalid or could not be read\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	return runValidate(args, os.Stdin, os.Stdout, os.Stderr)
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupValidateFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}
	inputPath := fs.Arg(0)

	var data []byte
	var err error
	if inputPath == StdinFilePath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", FormatSpecPath(inputPath), err)
	}

	result, err := validator.ValidateBytes(context.Background(), data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", FormatSpecPath(inputPath), err)
	}

	if !flags.Quiet {
		switch flags.Format {
		case FormatText:
			OutputHeader(stdout, "Swagger 2.0 Validator", inputPath)
			cliutil.Writef(stdout, "Source Size: %s\n\n", apidoc.FormatBytes(int64(len(data))))
			printValidationReport(stdout, result)
		default:
			report := ValidateReport{
				Input:      FormatSpecPath(inputPath),
				Valid:      result.Valid,
				ErrorCount: result.ErrorCount,
			}
			for _, issue := range result.Issues {
				report.Errors = append(report.Errors, ReportIssue{Path: issue.Path, Message: issue.Message})
			}
			if err := OutputStructured(stdout, report, flags.Format); err != nil {
				return err
			}
		}
	}

	if !result.Valid {
		return fmt.Errorf("document failed validation with %d error(s)", result.ErrorCount)
	}
	return nil
}
