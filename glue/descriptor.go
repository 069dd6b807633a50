// Package glue binds C function descriptors to storage cells and drives the
// native call around the scalar codec.
package glue

import (
	"bytes"
	"fmt"
	"io"

	"github.com/quickwritereader/CobolGlue/typetags"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Param describes one parameter of a C function declaration.
type Param struct {
	VarName      string `yaml:"var_name" json:"var_name"`
	TypeName     string `yaml:"type_name" json:"type_name"`
	PointerDepth int    `yaml:"pointer_depth" json:"pointer_depth"`
	TypeSize     int    `yaml:"type_size" json:"type_size"`
}

// Kind is the native kind the parameter is passed as.
func (p Param) Kind() typetags.Kind {
	return typetags.FromCType(p.TypeName)
}

// IsOut reports whether the routine may write the parameter back through a pointer.
func (p Param) IsOut() bool {
	return p.PointerDepth > 0
}

// Function describes a C function declaration.
type Function struct {
	Name       string  `yaml:"func_name" json:"func_name"`
	ReturnType string  `yaml:"return_type" json:"return_type"`
	Params     []Param `yaml:"parameters" json:"parameters"`
}

// Kinds returns the native kind of every parameter in order.
func (f Function) Kinds() []typetags.Kind {
	kinds := make([]typetags.Kind, len(f.Params))
	for i, p := range f.Params {
		kinds[i] = p.Kind()
	}
	return kinds
}

func (f Function) validate(index int) error {
	if f.Name == "" {
		return fmt.Errorf("%w: function %d has no func_name", ErrInvalidDescriptor, index)
	}
	for i, p := range f.Params {
		if p.TypeName == "" {
			return fmt.Errorf("%w: %s param %d has no type_name", ErrInvalidDescriptor, f.Name, i)
		}
		if p.PointerDepth < 0 {
			return fmt.Errorf("%w: %s param %q has negative pointer_depth", ErrInvalidDescriptor, f.Name, p.VarName)
		}
	}
	return nil
}

type document struct {
	Functions []Function `yaml:"functions" json:"functions"`
}

func (d document) functions() ([]Function, error) {
	for i, f := range d.Functions {
		if err := f.validate(i); err != nil {
			return nil, err
		}
	}
	if d.Functions == nil {
		return []Function{}, nil
	}
	return d.Functions, nil
}

// LoadYAML reads a descriptor document of the form
//
//	functions:
//	  - func_name: add
//	    return_type: int
//	    parameters:
//	      - var_name: a
//	        type_name: int
//	        pointer_depth: 0
//	        type_size: 4
func LoadYAML(r io.Reader) ([]Function, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidDescriptor, err)
	}
	return doc.functions()
}

// LoadJSON reads the JSON form of the descriptor document, with the same field names as LoadYAML.
func LoadJSON(r io.Reader) ([]Function, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrInvalidDescriptor, err)
	}
	return doc.functions()
}

// ParseDescriptor decodes data as JSON when it starts with '{' and as YAML otherwise.
func ParseDescriptor(data []byte) ([]Function, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return LoadJSON(bytes.NewReader(trimmed))
	}
	return LoadYAML(bytes.NewReader(data))
}
