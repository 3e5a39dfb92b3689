package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	apperrors "github.com/agbru/vieta/internal/errors"
)

// parseJSON walks the top-level object token by token so that root entries
// are collected in declaration order; encoding/json maps would lose it.
func parseJSON(data []byte) (*rawDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.NewMalformedInputError(nil, "document is empty")
	}
	if err != nil {
		return nil, apperrors.NewMalformedInputError(err, "invalid JSON")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, apperrors.NewMalformedInputError(nil, "top-level value must be an object")
	}

	doc := &rawDocument{}
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, apperrors.NewMalformedInputError(err, "invalid JSON")
		}
		id, _ := keyTok.(string)
		if err := checkDuplicate(seen, id); err != nil {
			return nil, err
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, apperrors.NewMalformedInputError(err, "invalid JSON value for %q", id)
		}

		if id == KeysField {
			fields, err := jsonObject(id, raw)
			if err != nil {
				return nil, err
			}
			if fields == nil {
				continue
			}
			keys := &rawKeys{}
			if keys.N, err = jsonScalar(id+".n", fields["n"]); err != nil {
				return nil, err
			}
			if keys.K, err = jsonScalar(id+".k", fields["k"]); err != nil {
				return nil, err
			}
			doc.Keys = keys
			continue
		}

		fields, err := jsonObject(id, raw)
		if err != nil {
			return nil, err
		}
		if fields == nil {
			return nil, apperrors.NewMalformedInputError(nil, "root %q must be an object, got null", id)
		}
		root := rawRoot{ID: id}
		if root.Base, err = jsonScalar(id+".base", fields["base"]); err != nil {
			return nil, err
		}
		if root.Value, err = jsonScalar(id+".value", fields["value"]); err != nil {
			return nil, err
		}
		doc.Roots = append(doc.Roots, root)
	}

	// Closing brace, then nothing else may follow.
	if _, err := dec.Token(); err != nil {
		return nil, apperrors.NewMalformedInputError(err, "invalid JSON")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, apperrors.NewMalformedInputError(err, "unexpected data after the top-level object")
	}
	return doc, nil
}

// jsonObject decodes raw as an object. JSON null yields a nil map.
func jsonObject(id string, raw json.RawMessage) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, apperrors.NewMalformedInputError(nil, "entry %q must be an object", id)
	}
	return fields, nil
}

// jsonScalar keeps the literal text of a string or number. Absent and
// null fields yield nil so that validation reports them as missing.
func jsonScalar(path string, raw json.RawMessage) (*scalar, error) {
	if raw == nil {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, apperrors.NewMalformedInputError(err, "field %q", path)
	}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &scalar{text: t}, nil
	case json.Number:
		return &scalar{text: t.String()}, nil
	default:
		return nil, apperrors.NewMalformedInputError(nil, "field %q must be a string or a number", path)
	}
}
