// Package yamlutil is the only place that talks to github.com/goccy/go-yaml.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps the bytes accepted by the decoders.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Unmarshal decodes data into v. Keys without a matching field are dropped.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict is Unmarshal, except unknown keys are an error that
// points at their line and column.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	err := yaml.NewDecoder(bytes.NewReader(data), opts...).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) { // io.EOF: comments only
		return fmt.Errorf("yamlutil: %s: %w", yaml.FormatError(err, false, false), err)
	}
	return nil
}

// Marshal encodes v the way config files are written by hand: two-space
// indent, with sequence items indented under their key.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf, yaml.Indent(2), yaml.IndentSequence(true))
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return buf.Bytes(), nil
}
