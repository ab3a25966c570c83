package main

import (
	"fmt"
	"os"

	"github.com/erraggy/apidocswagger"
	"github.com/erraggy/apidocswagger/cmd/apidocswagger/commands"
)

var commandNames = []string{"convert", "validate", "serve", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("apidocswagger %s\n", apidocswagger.Version())
		if len(args) > 0 && (args[0] == "-l" || args[0] == "--long") {
			fmt.Println(apidocswagger.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		err = commands.HandleConvert(args)
	case "validate":
		err = commands.HandleValidate(args)
	case "serve":
		err = commands.HandleServe(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`apidocswagger - apiDoc to Swagger 2.0 converter

Usage:
  apidocswagger <command> [options]

Commands:
  convert     Convert apiDoc api_data.json into a Swagger 2.0 document
  validate    Validate a Swagger 2.0 document
  serve       Serve conversions over HTTP
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  apidocswagger convert doc/api_data.json -o swagger.json
  apidocswagger convert --format yaml --validate doc/api_data.json
  cat api_data.json | apidocswagger convert -q - > swagger.json
  apidocswagger validate swagger.json
  apidocswagger serve -addr :8080

Run 'apidocswagger <command> --help' for more information on a command.`)
}
