package input

import (
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/vieta/internal/errors"
)

// parseYAML decodes into a yaml.Node tree rather than a map so that the
// mapping order and the literal spelling of numbers both survive.
func parseYAML(data []byte) (*rawDocument, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, apperrors.NewMalformedInputError(err, "invalid YAML")
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, apperrors.NewMalformedInputError(nil, "document is empty")
	}
	top := resolve(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, apperrors.NewMalformedInputError(nil, "top-level value must be a mapping")
	}

	doc := &rawDocument{}
	seen := make(map[string]struct{})
	for i := 0; i+1 < len(top.Content); i += 2 {
		keyNode, valNode := resolve(top.Content[i]), resolve(top.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, apperrors.NewMalformedInputError(nil, "entry names must be scalars (line %d)", keyNode.Line)
		}
		id := keyNode.Value
		if err := checkDuplicate(seen, id); err != nil {
			return nil, err
		}

		if isNull(valNode) {
			if id == KeysField {
				continue
			}
			return nil, apperrors.NewMalformedInputError(nil, "root %q must be a mapping, got null", id)
		}
		fields, err := yamlMapping(id, valNode)
		if err != nil {
			return nil, err
		}

		if id == KeysField {
			keys := &rawKeys{}
			if keys.N, err = yamlScalar(id+".n", fields["n"]); err != nil {
				return nil, err
			}
			if keys.K, err = yamlScalar(id+".k", fields["k"]); err != nil {
				return nil, err
			}
			doc.Keys = keys
			continue
		}

		r := rawRoot{ID: id}
		if r.Base, err = yamlScalar(id+".base", fields["base"]); err != nil {
			return nil, err
		}
		if r.Value, err = yamlScalar(id+".value", fields["value"]); err != nil {
			return nil, err
		}
		doc.Roots = append(doc.Roots, r)
	}
	return doc, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// yamlMapping indexes the fields of a mapping node by name. Later
// duplicates of a field name are rejected.
func yamlMapping(id string, n *yaml.Node) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, apperrors.NewMalformedInputError(nil, "entry %q must be a mapping (line %d)", id, n.Line)
	}
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := resolve(n.Content[i]).Value
		if _, dup := fields[name]; dup {
			return nil, apperrors.NewMalformedInputError(nil, "entry %q has duplicate field %q", id, name)
		}
		fields[name] = resolve(n.Content[i+1])
	}
	return fields, nil
}

// yamlScalar keeps the literal text of string and numeric scalars. Absent
// and null fields yield nil so that validation reports them as missing.
func yamlScalar(path string, n *yaml.Node) (*scalar, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.ScalarNode {
		return nil, apperrors.NewMalformedInputError(nil, "field %q must be a string or a number (line %d)", path, n.Line)
	}
	switch n.ShortTag() {
	case "!!str", "!!int", "!!float":
		return &scalar{text: n.Value}, nil
	default:
		return nil, apperrors.NewMalformedInputError(nil, "field %q must be a string or a number, got %s (line %d)", path, n.ShortTag(), n.Line)
	}
}
