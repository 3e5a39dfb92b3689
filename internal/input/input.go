// Package input reads the input document and turns it into a vieta.Problem.
//
// The document is a mapping with a reserved "keys" entry holding n and k,
// followed by any number of root entries, each with a base and a value:
//
//	{
//	  "keys": {"n": 2, "k": "1"},
//	  "r1":   {"base": "10", "value": "4"},
//	  "r2":   {"base": 2, "value": "11"}
//	}
//
// Both JSON and YAML are accepted. Root entries keep their declaration
// order, so the report numbers them the same way on every run.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/agbru/vieta/internal/errors"
	"github.com/agbru/vieta/internal/vieta"
)

// KeysField is the reserved top-level entry holding n and k.
const KeysField = "keys"

// StdinPath is the path that selects standard input instead of a file.
const StdinPath = "-"

// Format identifies the syntax of the input document.
type Format string

const (
	// FormatAuto picks JSON or YAML from the file extension, then from the
	// first non-blank byte of the content.
	FormatAuto Format = "auto"
	// FormatJSON parses the document as JSON.
	FormatJSON Format = "json"
	// FormatYAML parses the document as YAML.
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatAuto, FormatJSON, FormatYAML}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unknown input format %q (valid: auto, json, yaml)", s)
	}
}

// DetectFormat resolves FormatAuto for a given path and content.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// scalar is the literal text of a scalar entry. Numbers keep their
// original spelling so that arbitrarily large literals are never rounded.
type scalar struct {
	text string
}

type rawKeys struct {
	N *scalar `field:"n" validate:"required"`
	K *scalar `field:"k" validate:"required"`
}

type rawRoot struct {
	ID    string
	Base  *scalar `field:"base" validate:"required"`
	Value *scalar `field:"value" validate:"required"`
}

// rawDocument is the syntax-independent shape shared by the JSON and YAML
// parsers. A nil pointer means the entry was absent or null.
type rawDocument struct {
	Keys  *rawKeys
	Roots []rawRoot
}

// Loader reads and parses input documents.
type Loader struct {
	// Format selects the parser; the zero value behaves like FormatAuto.
	Format Format
	// Stdin is read when the path is StdinPath. Defaults to os.Stdin.
	Stdin io.Reader
}

// Load reads the document at path with the given format.
func Load(path string, format Format) (*vieta.Problem, error) {
	return Loader{Format: format}.Load(path)
}

// Load reads the whole document, then parses and validates it.
//
// Returns:
//   - *vieta.Problem: The parsed problem, roots in declaration order.
//   - error: apperrors.InputUnavailableError if the document cannot be
//     read, apperrors.MalformedInputError or apperrors.MissingFieldError if
//     it cannot be understood.
func (l Loader) Load(path string) (*vieta.Problem, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, apperrors.InputUnavailableError{Path: path, Cause: err}
	}
	format := l.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(path, data)
	}
	return Parse(data, format)
}

func (l Loader) read(path string) ([]byte, error) {
	if path == StdinPath {
		stdin := l.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// Parse decodes a document already held in memory. FormatAuto is resolved
// from the content alone.
func Parse(data []byte, format Format) (*vieta.Problem, error) {
	var (
		doc *rawDocument
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = parseJSON(data)
	case FormatYAML:
		doc, err = parseYAML(data)
	case FormatAuto, "":
		return Parse(data, DetectFormat("", data))
	default:
		return nil, apperrors.NewMalformedInputError(nil, "unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return toProblem(doc)
}

// checkDuplicate records id and reports an error if it was already seen.
func checkDuplicate(seen map[string]struct{}, id string) error {
	if _, dup := seen[id]; dup {
		return apperrors.NewMalformedInputError(nil, "duplicate entry %q", id)
	}
	seen[id] = struct{}{}
	return nil
}
