package tonic

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScaleDocument is the serialized form of a Scale. Named scales are stored by
// name, custom scales by their steps. When both are present, the name wins.
type ScaleDocument struct {
	Root  string `yaml:"root" json:"root"`
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Steps []int  `yaml:"steps,flow,omitempty" json:"steps,omitempty"`
}

// Document returns the serializable form of the scale.
func (s Scale) Document() ScaleDocument {
	doc := ScaleDocument{Root: s.root.Name()}
	if name, err := s.Name(); err == nil {
		doc.Name = name
	} else {
		doc.Steps = s.Intervals()
	}
	return doc
}

// Scale constructs the scale the document describes.
func (d ScaleDocument) Scale() (Scale, error) {
	root, err := ParseNote(d.Root)
	if err != nil {
		return Scale{}, fmt.Errorf("invalid root: %w", err)
	}
	switch {
	case d.Name != "":
		return NewScale(root, Named(d.Name))
	case len(d.Steps) > 0:
		return NewScale(root, Steps(d.Steps...))
	}
	return Scale{}, fmt.Errorf("%w: document has neither a name nor steps", ErrUnsupportedSpecifier)
}

// ParseScale parses a scale document, given in either JSON or YAML.
func ParseScale(data []byte) (Scale, error) {
	var doc ScaleDocument
	if errJSON := json.Unmarshal(data, &doc); errJSON != nil {
		doc = ScaleDocument{}
		if errYaml := yaml.Unmarshal(data, &doc); errYaml != nil {
			return Scale{}, fmt.Errorf("the scale could not be parsed as .json (%v) or .yml (%v)", errJSON, errYaml)
		}
	}
	return doc.Scale()
}

// MarshalYAML implements yaml.Marshaler so that scales serialize as their
// document.
func (s Scale) MarshalYAML() (interface{}, error) {
	return s.Document(), nil
}

// MarshalJSON implements json.Marshaler.
func (s Scale) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Document())
}
