package profile

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component schema names.
const (
	SchemaBrandProfile  = "BrandProfile"
	SchemaBrandIdentity = "BrandIdentity"
	SchemaCustomization = "Customization"
)

//go:embed schema/brandkit.yaml
var schemaDocument []byte

var (
	schemaOnce sync.Once
	schemaDoc  *openapi3.T
	schemaErr  error
)

// Issue is a single schema violation. Path is the dotted location of the
// offending value; it is empty for document-level problems.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Schema returns the parsed OpenAPI document holding the profile components.
func Schema() (*openapi3.T, error) {
	schemaOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(schemaDocument)
		if err != nil {
			schemaErr = fmt.Errorf("profile: load schema: %w", err)
			return
		}
		if err := doc.Validate(context.Background()); err != nil {
			schemaErr = fmt.Errorf("profile: invalid schema: %w", err)
			return
		}
		schemaDoc = doc
	})
	return schemaDoc, schemaErr
}

// Validate checks a JSON-decoded value against the named component schema
// and returns every violation, sorted by path.
func Validate(component string, value any) ([]Issue, error) {
	doc, err := Schema()
	if err != nil {
		return nil, err
	}
	if doc.Components == nil {
		return nil, errors.New("profile: schema has no components")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("profile: unknown schema component %q", component)
	}

	verr := ref.Value.VisitJSON(value, openapi3.MultiErrors())
	if verr == nil {
		return nil, nil
	}

	var issues []Issue
	collectIssues(verr, &issues)
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Path != issues[j].Path {
			return issues[i].Path < issues[j].Path
		}
		return issues[i].Message < issues[j].Message
	})
	return issues, nil
}

func collectIssues(err error, out *[]Issue) {
	switch e := err.(type) {
	case openapi3.MultiError:
		for _, inner := range e {
			collectIssues(inner, out)
		}
	case *openapi3.SchemaError:
		message := e.Reason
		if message == "" {
			message = e.Error()
		}
		*out = append(*out, Issue{
			Path:    strings.Join(e.JSONPointer(), "."),
			Message: message,
		})
	default:
		*out = append(*out, Issue{Message: err.Error()})
	}
}
