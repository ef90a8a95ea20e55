package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration document syntax
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the document format from a file extension
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parser returns the koanf parser for the format
func (f Format) Parser() koanf.Parser {
	if f == FormatYAML {
		return YAMLParser{}
	}
	return TOMLParser{}
}

// TOMLParser is a koanf.Parser backed by go-toml/v2
type TOMLParser struct{}

// Unmarshal decodes a TOML document, reporting the position of syntax errors
func (TOMLParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(b, &out); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return nil, err
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	return out, nil
}

// Marshal encodes a map as TOML
func (TOMLParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return toml.Marshal(m)
}

// YAMLParser is a koanf.Parser backed by yaml.v3
type YAMLParser struct{}

// Unmarshal decodes a YAML document whose top level must be a mapping
func (YAMLParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	return out, nil
}

// Marshal encodes a map as YAML
func (YAMLParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(m)
}
