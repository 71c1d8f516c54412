package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"questplus/internal/domain"
)

// Importer interface for importing stimulus count data from various formats
type Importer interface {
	Parse(r io.Reader) (domain.Dataset, error)
	Format() string
}

// Exporter interface for exporting stimulus count data to various formats
type Exporter interface {
	Export(data domain.Dataset, w io.Writer) error
	Format() string
}

// Codec both imports and exports
type Codec interface {
	Importer
	Exporter
}

// ForFormat returns the codec for a format name ("json", "yaml" or "yml")
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to yaml
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
