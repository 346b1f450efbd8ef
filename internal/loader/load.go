package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"

	"github.com/roach88/bytescript/internal/bytecode"
)

// Error codes reported by the loader.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeReadFailed      = "E002" // File could not be read
	ErrCodeUnsupportedExt  = "E003" // Unknown file extension
	ErrCodeParseFailed     = "E004" // JSON or YAML syntax error
	ErrCodeNotFound        = "E005" // Path not found
	ErrCodeBuildFailed     = "E006" // CUE evaluation failed
	ErrCodeInvalidBytecode = "E010" // Document shape is not bytecode
	ErrCodeUnsupportedType = "E011" // Unknown @type
)

// Query is one named bytecode program from a document.
type Query struct {
	Name     string
	Bytecode *bytecode.Bytecode
}

// Document is the decoded content of one file.
type Document struct {
	Path    string
	Queries []Query
}

// LoadError describes a document that could not be loaded.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// LoadFile reads the document at path, choosing the decoder by extension.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "file not found", Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Path: path, Message: err.Error(), Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	var tree any
	switch ext {
	case ".json":
		tree, err = parseJSON(data)
	case ".yaml", ".yml":
		tree, err = parseYAML(data)
	case ".cue":
		return loadCUE(path, data)
	default:
		return nil, &LoadError{
			Code:    ErrCodeUnsupportedExt,
			Path:    path,
			Message: fmt.Sprintf("unsupported file extension %q (want .json, .yaml, .yml or .cue)", ext),
		}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: err.Error(), Err: err}
	}
	return Decode(path, tree)
}

// Parse decodes a JSON document held in memory. name is used for a single
// bytecode document and for error messages.
func Parse(name string, data []byte) (*Document, error) {
	tree, err := parseJSON(data)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: name, Message: err.Error(), Err: err}
	}
	return Decode(name, tree)
}

// Decode turns a parsed tree into a Document. A bare bytecode document
// becomes a single query named after the file.
func Decode(path string, tree any) (*Document, error) {
	doc := &Document{Path: path}

	obj, ok := tree.(*object)
	if !ok {
		return nil, invalid(path, fmt.Errorf("document must be an object, got %s", describe(tree)))
	}

	rawQueries, ok := obj.get("queries")
	if !ok {
		bc, err := decodeBytecode(obj)
		if err != nil {
			return nil, invalid(path, err)
		}
		doc.Queries = []Query{{Name: queryName(path), Bytecode: bc}}
		return doc, nil
	}

	if err := obj.only("queries"); err != nil {
		return nil, invalid(path, err)
	}
	items, ok := rawQueries.([]any)
	if !ok {
		return nil, invalid(path, fmt.Errorf("queries must be a list"))
	}

	seen := make(map[string]bool, len(items))
	for i, item := range items {
		q, err := decodeQuery(item)
		if err != nil {
			return nil, invalid(path, fmt.Errorf("queries[%d]: %w", i, err))
		}
		if seen[q.Name] {
			return nil, invalid(path, fmt.Errorf("queries[%d]: duplicate query name %q", i, q.Name))
		}
		seen[q.Name] = true
		doc.Queries = append(doc.Queries, q)
	}
	return doc, nil
}

func decodeQuery(raw any) (Query, error) {
	obj, err := fields(raw, "name", "bytecode")
	if err != nil {
		return Query{}, err
	}
	name, err := stringField(obj, "name")
	if err != nil {
		return Query{}, err
	}
	if name == "" {
		return Query{}, fmt.Errorf("name must not be empty")
	}
	rawBytecode, ok := obj.get("bytecode")
	if !ok {
		return Query{}, fmt.Errorf("%s: bytecode is required", name)
	}
	bc, err := decodeBytecode(rawBytecode)
	if err != nil {
		return Query{}, fmt.Errorf("%s: %w", name, err)
	}
	return Query{Name: name, Bytecode: bc}, nil
}

// DecodeBytecodeNode decodes bytecode embedded in a larger YAML document.
func DecodeBytecodeNode(n *yaml.Node) (*bytecode.Bytecode, error) {
	tree, err := fromYAMLNode(n)
	if err != nil {
		return nil, err
	}
	return decodeBytecode(tree)
}

func invalid(path string, err error) *LoadError {
	code := ErrCodeInvalidBytecode
	if errors.Is(err, errUnsupportedType) {
		code = ErrCodeUnsupportedType
	}
	return &LoadError{Code: code, Path: path, Message: err.Error(), Err: err}
}

func queryName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
