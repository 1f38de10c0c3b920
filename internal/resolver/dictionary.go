package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/diesi/aienum/internal/errors"
)

// Dictionary maps labels to identifiers.
type Dictionary map[string]string

// dictionaryFile is the structured layout:
//
//	name: colors
//	items:
//	  - label: 红色
//	    identifier: Red
type dictionaryFile struct {
	Name  string           `json:"name" yaml:"name" toml:"name"`
	Items []dictionaryItem `json:"items" yaml:"items" toml:"items"`
}

type dictionaryItem struct {
	Label      string `json:"label" yaml:"label" toml:"label"`
	Identifier string `json:"identifier" yaml:"identifier" toml:"identifier"`
}

// Lookup implements enumdesc.NameFunc. Unknown labels resolve to "".
func (d Dictionary) Lookup(_ context.Context, label string) (string, error) {
	return d[strings.TrimSpace(label)], nil
}

// LoadDictionary reads a dictionary file, picking the decoder by extension
// (.yaml/.yml, .toml, .json).
func LoadDictionary(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read dictionary")
	}
	d, err := ParseDictionary(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "dictionary %s", path)
	}
	return d, nil
}

// ParseDictionary decodes either an items list or a flat label: identifier map.
func ParseDictionary(data []byte, ext string) (Dictionary, error) {
	var unmarshal func([]byte, any) error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		unmarshal = yaml.Unmarshal
	case "toml":
		unmarshal = toml.Unmarshal
	case "json":
		unmarshal = json.Unmarshal
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported dictionary extension %q", ext),
			"use .yaml, .yml, .toml or .json")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Dictionary{}, nil
	}

	var file dictionaryFile
	if err := unmarshal(data, &file); err == nil && len(file.Items) > 0 {
		d := make(Dictionary, len(file.Items))
		for i, it := range file.Items {
			label := strings.TrimSpace(it.Label)
			if label == "" || strings.TrimSpace(it.Identifier) == "" {
				return nil, errors.Newf("item %d: label and identifier are required", i+1)
			}
			d[label] = strings.TrimSpace(it.Identifier)
		}
		return d, nil
	}

	flat := map[string]string{}
	if err := unmarshal(data, &flat); err != nil {
		return nil, errors.Wrap(err, "decode dictionary")
	}
	d := make(Dictionary, len(flat))
	for label, id := range flat {
		d[strings.TrimSpace(label)] = strings.TrimSpace(id)
	}
	return d, nil
}
