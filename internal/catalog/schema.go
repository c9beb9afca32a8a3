package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

const schemaURL = "catalog.json"

// document is the on-disk shape of a catalog file.
type document struct {
	Destinations []types.Destination `json:"destinations"`
}

// DocumentSchema returns the JSON Schema catalog files are validated against.
func DocumentSchema() *invopop.Schema {
	r := &invopop.Reflector{DoNotReference: true, Anonymous: true}
	s := r.Reflect(&document{})

	dests, ok := s.Properties.Get("destinations")
	if !ok || dests.Items == nil {
		return s
	}
	item := dests.Items

	minZero := func(name string) {
		if p, ok := item.Properties.Get(name); ok {
			p.Minimum = json.Number("0")
		}
	}
	minZero("id")
	minZero("price")
	minZero("review_count")

	if p, ok := item.Properties.Get("rating"); ok {
		p.Minimum = json.Number("0")
		p.Maximum = json.Number("5")
	}
	if p, ok := item.Properties.Get("title"); ok {
		one := uint64(1)
		p.MinLength = &one
	}
	if p, ok := item.Properties.Get("date"); ok {
		p.Pattern = `^\d{4}-\d{2}-\d{2}$`
	}
	if p, ok := item.Properties.Get("trip_type"); ok {
		p.Enum = []any{"domestic", "international", "nacional", "internacional"}
	}
	if p, ok := item.Properties.Get("category"); ok {
		p.Enum = []any{"stay", "offer", "offers", "trip"}
	}
	// search_score is computed, never loaded.
	item.Properties.Delete("search_score")
	item.Required = slices.DeleteFunc(item.Required, func(name string) bool { return name == "search_score" })

	return s
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(DocumentSchema())
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding catalog schema resource: %w", err)
	}

	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling catalog schema: %w", err)
	}
	return compiled, nil
})

// validate checks a decoded JSON value against the catalog schema and
// returns one message per failing location.
func validate(value any) ([]string, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	err = schema.Validate(value)
	if err == nil {
		return nil, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []string{err.Error()}, nil
	}

	byPath := make(map[string][]string)
	collectErrors(validationErr, byPath)

	var out []string
	for path, msgs := range byPath {
		seen := make(map[string]bool)
		for _, msg := range msgs {
			if seen[msg] {
				continue
			}
			seen[msg] = true
			if path != "" {
				out = append(out, fmt.Sprintf("%s: %s", path, msg))
			} else {
				out = append(out, msg)
			}
		}
	}
	slices.Sort(out)
	return out, nil
}

var printer = message.NewPrinter(language.English)

// collectErrors gathers leaf errors keyed by instance location.
func collectErrors(err *jsonschema.ValidationError, byPath map[string][]string) {
	path := ""
	if len(err.InstanceLocation) > 0 {
		path = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			byPath[path] = append(byPath[path], msg)
		}
	}

	for _, cause := range err.Causes {
		collectErrors(cause, byPath)
	}
}
