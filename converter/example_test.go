package converter_test

import (
	"fmt"
	"log"
	"os"

	"github.com/erraggy/apidocswagger/apidoc"
	"github.com/erraggy/apidocswagger/converter"
	"github.com/erraggy/apidocswagger/swagger"
)

// Example demonstrates converting decoded endpoints with functional options
func Example() {
	endpoints := []apidoc.Endpoint{{
		Type:  "post",
		URL:   "/user",
		Name:  "PostUser",
		Group: "User",
		Parameter: &apidoc.Section{Fields: map[string][]apidoc.Field{
			apidoc.GroupParameter: {
				{Field: "user", Type: "Object"},
				{Field: "user.name", Type: "String"},
				{Field: "user.tags", Type: "String[]", Optional: true},
			},
		}},
	}}

	result, err := converter.ConvertWithOptions(
		converter.WithEndpoints(endpoints),
		converter.WithIncludeInfo(false),
	)
	if err != nil {
		log.Fatal(err)
	}

	item, _ := result.Document.Paths.Get("/user")
	fmt.Println("body:", item["post"].BodyParameter().Schema.Ref)

	user := result.Document.Definitions["user"]
	fmt.Println("required:", user.Required)
	fmt.Println("tags:", user.Properties["tags"].Type, user.Properties["tags"].Items.Type)
	fmt.Println("warnings:", result.WarningCount)
	// Output:
	// body: #/definitions/user
	// required: [name]
	// tags: array String
	// warnings: 3
}

// Example_marshal demonstrates writing the generated document as JSON
func Example_marshal() {
	result, err := converter.ConvertWithOptions(
		converter.WithEndpoints([]apidoc.Endpoint{{
			Type:        "get",
			URL:         "/ping",
			Name:        "GetPing",
			Group:       "Health",
			Description: "<p>Liveness probe</p>",
		}}),
		converter.WithProject(apidoc.Project{Name: "Ping", Version: "1.0.0"}),
	)
	if err != nil {
		log.Fatal(err)
	}

	data, err := swagger.Marshal(result.Document, swagger.FormatJSON)
	if err != nil {
		log.Fatal(err)
	}
	_, _ = os.Stdout.Write(data)
	// Output:
	// {
	//   "swagger": "2.0",
	//   "info": {
	//     "title": "Ping",
	//     "version": "1.0.0"
	//   },
	//   "paths": {
	//     "/ping": {
	//       "get": {
	//         "tags": [
	//           "Health"
	//         ],
	//         "summary": "Liveness probe",
	//         "consumes": [
	//           "application/json"
	//         ],
	//         "produces": [
	//           "application/json"
	//         ],
	//         "parameters": []
	//       }
	//     }
	//   },
	//   "definitions": {}
	// }
}

// Example_handleConversionIssues demonstrates processing conversion issues
func Example_handleConversionIssues() {
	result, err := converter.ConvertWithOptions(
		converter.WithFilePath("testdata/api_data.json"),
		converter.WithProjectFile("testdata/api_project.json"),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case converter.SeverityWarning:
			fmt.Printf("WARNING [%s]: %s\n", issue.Path, issue.Message)
		case converter.SeverityInfo:
			fmt.Printf("INFO [%s]: %s\n", issue.Path, issue.Message)
		}
	}
	fmt.Printf("Summary: %d warnings, %d info\n", result.WarningCount, result.InfoCount)
	// Output:
	// WARNING [paths./features/{id}.put.parameters]: parameter "foo" is not a URL placeholder and is only described by the body schema
	// WARNING [paths./features/{id}.put.parameters]: parameter "foo.bar" is not a URL placeholder and is only described by the body schema
	// INFO [definitions.data]: definition is shared by 2 endpoints
	// Summary: 2 warnings, 1 info
}
