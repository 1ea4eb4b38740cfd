package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMalformedDocument is returned when stored board data cannot be decoded.
var ErrMalformedDocument = errors.New("malformed document")

//go:embed document.schema.json
var documentSchemaSource string

var documentSchema = jsonschema.MustCompileString("document.schema.json", documentSchemaSource)

// Record is one stored task.
type Record struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Group is the ordered list of records of one column.
type Group struct {
	Column  string
	Records []Record
}

// EncodeDocument serializes groups as an array of single-key objects,
// e.g. [{"todo":[...]},{"done":[...]},{"pendent":[...]}].
func EncodeDocument(groups []Group) (string, error) {
	doc := make([]map[string][]Record, 0, len(groups))
	for _, g := range groups {
		records := g.Records
		if records == nil {
			records = []Record{}
		}
		doc = append(doc, map[string][]Record{g.Column: records})
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(data), nil
}

// DecodeDocument parses and validates a document written by EncodeDocument.
func DecodeDocument(data string) ([]Group, error) {
	var raw any
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := documentSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, describeSchemaError(err))
	}

	var doc []map[string][]Record
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	groups := make([]Group, 0, len(doc))
	for _, obj := range doc {
		for column, records := range obj {
			groups = append(groups, Group{Column: column, Records: records})
		}
	}
	return groups, nil
}

// describeSchemaError returns the first leaf cause of a validation error.
func describeSchemaError(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := strings.TrimPrefix(ve.InstanceLocation, "/")
	if location == "" {
		return ve.Message
	}
	return location + ": " + ve.Message
}
