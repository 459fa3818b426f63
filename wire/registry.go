package wire

import (
	"fmt"

	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/schema"
)

// SchemaRegistry resolves a wire schema identifier to its Schema during
// decode. The mapping (typically a database table of schema documents) is
// owned by the embedding application, not by this codec.
type SchemaRegistry interface {
	// Resolve returns the schema registered under pcid, or an error wrapping
	// errs.ErrSchemaNotRegistered.
	Resolve(pcid uint32) (*schema.Schema, error)
}

// StaticRegistry is a map-backed SchemaRegistry for standalone and test use.
type StaticRegistry map[uint32]*schema.Schema

var _ SchemaRegistry = StaticRegistry(nil)

// NewStaticRegistry builds a StaticRegistry keyed by each schema's PCID.
func NewStaticRegistry(schemas ...*schema.Schema) StaticRegistry {
	reg := make(StaticRegistry, len(schemas))
	for _, s := range schemas {
		reg[s.PCID()] = s
	}

	return reg
}

// Resolve implements SchemaRegistry.
func (r StaticRegistry) Resolve(pcid uint32) (*schema.Schema, error) {
	s, ok := r[pcid]
	if !ok {
		return nil, fmt.Errorf("%w: pcid %d", errs.ErrSchemaNotRegistered, pcid)
	}

	return s, nil
}
