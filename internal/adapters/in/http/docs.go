package http

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// RegisterDocs publishes doc to swag so that echo-swagger serves it.
func RegisterDocs(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to render OpenAPI document: %w", err)
	}
	swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	return nil
}
