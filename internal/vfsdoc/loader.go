package vfsdoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"

	"github.com/vfsemu/vfsemu/internal/vfs"
)

// Format identifies a document encoding.
type Format uint8

const (
	// FormatXML is the original document format and the default.
	FormatXML Format = iota
	// FormatJSON is the JSON rendering of the same shape.
	FormatJSON
	// FormatYAML is the YAML rendering of the same shape.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "xml"
	}
}

// Options controls loader behavior.
type Options struct {
	// Strict rejects unknown element kinds instead of skipping them.
	Strict bool
}

// DetectFormat picks the document format and compression from a file name.
// Unrecognized extensions fall back to XML uncompressed.
func DetectFormat(path string) (Format, bool) {
	name := path
	compressed := strings.HasSuffix(name, ".gz")
	if compressed {
		name = strings.TrimSuffix(name, ".gz")
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, compressed
	case ".yaml", ".yml":
		return FormatYAML, compressed
	default:
		return FormatXML, compressed
	}
}

// Load builds a tree from a document stream in the given format.
func Load(r io.Reader, format Format, opts Options) (*vfs.Tree, error) {
	var (
		root node
		err  error
	)
	switch format {
	case FormatJSON:
		root, err = parseJSON(r)
	case FormatYAML:
		root, err = parseYAML(r)
	default:
		root, err = parseXML(r)
	}
	if err != nil {
		return nil, err
	}
	return build(root, opts)
}

// LoadFile loads a document from disk, detecting format and gzip
// compression from the file name.
func LoadFile(path string, opts Options) (*vfs.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, ErrIO)
	}
	defer f.Close()

	format, compressed := DetectFormat(path)
	var r io.Reader = f
	if compressed {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %v: %w", path, err, ErrFormat)
		}
		defer gz.Close()
		r = gz
	}
	return Load(r, format, opts)
}

func parseJSON(r io.Reader) (node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return node{}, fmt.Errorf("read: %v: %w", err, ErrIO)
	}
	var root node
	if err := sonic.Unmarshal(data, &root); err != nil {
		return node{}, fmt.Errorf("json: %v: %w", err, ErrFormat)
	}
	return root, nil
}

func parseYAML(r io.Reader) (node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return node{}, fmt.Errorf("read: %v: %w", err, ErrIO)
	}
	var root node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return node{}, fmt.Errorf("yaml: %v: %w", err, ErrFormat)
	}
	return root, nil
}
