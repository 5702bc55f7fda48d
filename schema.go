package catalog2js

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the generated JSON Schema.
const SchemaID = "https://github.com/alnah/go-catalog2js/dataset.schema.json"

// Schema returns the JSON Schema of the generated array: every Dataset
// field required, no additional properties, indented with two spaces.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  false,
	}
	item := r.Reflect(&Dataset{})
	item.Version = ""
	item.Title = "Dataset"
	item.Description = "One entry of the dataset catalog"

	list := &jsonschema.Schema{
		Version: jsonschema.Version,
		ID:      SchemaID,
		Title:   "Datasets",
		Type:    "array",
		Items:   item,
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return data, nil
}
