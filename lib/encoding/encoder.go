package encoding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format names a catalog serialization.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

var (
	ErrUnknownFormat = errors.New("encoding: unknown format")
	ErrInvalidFormat = errors.New("encoding: invalid payload")
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMsgpack}
}

// ParseFormat resolves a format name. Matching is case-insensitive and
// accepts "yml" and "mp" as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encoder handles encoding and decoding of catalog documents.
// JSON and YAML are meant for people and docs sites; msgpack is the compact
// form for tools that load the catalog programmatically.
type Encoder struct {
	format Format
}

// NewEncoder creates an encoder for format.
func NewEncoder(format Format) (*Encoder, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	return &Encoder{format: format}, nil
}

// Format returns the encoder's format.
func (e *Encoder) Format() Format {
	return e.format
}

// Marshal serializes v.
func (e *Encoder) Marshal(v any) ([]byte, error) {
	switch e.format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetSortMapKeys(true)
		enc.SetOmitEmpty(true)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
	}
}

// Encode writes the serialized form of v to w.
func (e *Encoder) Encode(w io.Writer, v any) error {
	data, err := e.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Unmarshal decodes data into v.
func (e *Encoder) Unmarshal(data []byte, v any) error {
	var err error
	switch e.format {
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}
