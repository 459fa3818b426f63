package schema

import (
	"github.com/goccy/go-json"
)

type jsonSchema struct {
	PCID        uint32      `json:"pcid"`
	SRID        uint32      `json:"srid"`
	Compression string      `json:"compression"`
	Size        int         `json:"size"`
	Dimensions  []Dimension `json:"dims"`
}

// ToJSON renders the schema as a deterministic JSON document: metadata first,
// then the descriptor list in position order. It is a pure reporting
// transform with no side effects.
func (s *Schema) ToJSON() ([]byte, error) {
	return json.Marshal(jsonSchema{
		PCID:        s.pcid,
		SRID:        s.srid,
		Compression: s.compression.String(),
		Size:        s.size,
		Dimensions:  s.dims,
	})
}
