package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/modmenu/internal/core/domain"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// codec converts a flat option document to and from bytes.
type codec interface {
	format() string
	marshal(doc map[string]any) ([]byte, error)
	unmarshal(data []byte) (map[string]any, error)
}

var errNotObject = errors.New("top-level value is not an object")

type jsonCodec struct{}

func (jsonCodec) format() string { return FormatJSON }

func (jsonCodec) marshal(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (jsonCodec) unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	// "null" decodes without error but is not an object
	if doc == nil {
		return nil, errNotObject
	}
	return doc, nil
}

type tomlCodec struct{}

func (tomlCodec) format() string { return FormatTOML }

func (tomlCodec) marshal(doc map[string]any) ([]byte, error) {
	return toml.Marshal(doc)
}

func (tomlCodec) unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

type yamlCodec struct{}

func (yamlCodec) format() string { return FormatYAML }

func (yamlCodec) marshal(doc map[string]any) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (yamlCodec) unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

// codecForFormat returns the codec for a format name.
func codecForFormat(format string) (codec, error) {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return jsonCodec{}, nil
	case FormatTOML:
		return tomlCodec{}, nil
	case FormatYAML, "yml":
		return yamlCodec{}, nil
	default:
		return nil, domain.ErrUnsupportedFormat
	}
}

// codecForPath returns the codec matching the file extension.
func codecForPath(path string) (codec, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, domain.ErrUnsupportedFormat
	}
	return codecForFormat(ext)
}

// Extension returns the file extension used for format, without the dot.
func Extension(format string) (string, error) {
	c, err := codecForFormat(format)
	if err != nil {
		return "", err
	}
	return c.format(), nil
}
