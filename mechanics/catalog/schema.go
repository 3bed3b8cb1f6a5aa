package catalog

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// EntryDocument represents a single catalog entry as it appears on disk. The
// struct is exported so tooling (e.g. the schema generator command) can
// reflect over the configuration contract shared with designers.
type EntryDocument struct {
	ID       string         `json:"id" jsonschema:"title=Catalog Entry ID,description=Designer-facing identifier resolved by builders and modifier strategies.,pattern=^[a-z0-9-]+$,minLength=1,required"`
	Kind     string         `json:"kind" jsonschema:"title=Kind,description=Payload or mechanic kind this entry configures.,pattern=^[a-z-]+$,minLength=1,required"`
	Settings map[string]any `json:"settings,omitempty" jsonschema:"title=Settings,description=Loosely typed key/value configuration; unknown keys are ignored and malformed values normalize to defaults."`
}

// BuildSchema reflects the designer-facing JSON schema for catalog documents.
func BuildSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	entrySchema := reflector.ReflectFromType(reflect.TypeOf(EntryDocument{}))
	if entrySchema == nil {
		return nil, fmt.Errorf("failed to reflect entry schema")
	}
	entrySchema.Version = ""
	entrySchema.Title = "Item Settings Catalog Entry"
	entrySchema.Description = "Designer-authored settings document consumed by the item generator."
	return entrySchema, nil
}
