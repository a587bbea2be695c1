package collector

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/inferbench/inference-report/internal/errors"
	"github.com/inferbench/inference-report/internal/report"
)

// Separator joins nested config keys into a column name.
const Separator = "."

// FlattenYAML decodes a YAML document and flattens its top-level mapping
// into one record. Nested mappings become dot-joined column names, in
// document order; sequences are kept whole as a flow-style text value.
func FlattenYAML(data []byte) (*report.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	rec := report.NewRecord()

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return rec, nil
		}
		root = root.Content[0]
	}
	root = resolve(root)

	switch {
	case root.Kind == 0:
		// empty document
	case root.Kind == yaml.MappingNode:
		if err := flattenMapping(rec, "", root); err != nil {
			return nil, err
		}
	case root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null":
	default:
		return nil, apperrors.ValidationError{
			Field:   "document",
			Message: fmt.Sprintf("top level must be a mapping, got %s", kindName(root.Kind)),
		}
	}
	return rec, nil
}

func flattenMapping(rec *report.Record, prefix string, node *yaml.Node) error {
	// Merge keys first so explicit keys of the same mapping override them.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if isMergeKey(node.Content[i]) {
			if err := flattenMerge(rec, prefix, node.Content[i+1]); err != nil {
				return err
			}
		}
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if isMergeKey(key) {
			continue
		}
		if err := flattenValue(rec, join(prefix, key.Value), value); err != nil {
			return err
		}
	}
	return nil
}

func flattenMerge(rec *report.Record, prefix string, node *yaml.Node) error {
	node = resolve(node)
	switch node.Kind {
	case yaml.MappingNode:
		return flattenMapping(rec, prefix, node)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			item = resolve(item)
			if item.Kind != yaml.MappingNode {
				return apperrors.ValidationError{Field: prefix, Message: "merge value must be a mapping"}
			}
			if err := flattenMapping(rec, prefix, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return apperrors.ValidationError{Field: prefix, Message: "merge value must be a mapping"}
	}
}

func flattenValue(rec *report.Record, column string, node *yaml.Node) error {
	node = resolve(node)
	switch node.Kind {
	case yaml.MappingNode:
		return flattenMapping(rec, column, node)
	case yaml.SequenceNode:
		text, err := flowText(node)
		if err != nil {
			return apperrors.WrapError(err, "encode %s", column)
		}
		rec.Set(column, report.Text(text))
	case yaml.ScalarNode:
		rec.Set(column, scalarValue(node))
	default:
		rec.Set(column, report.Missing())
	}
	return nil
}

func scalarValue(node *yaml.Node) report.Value {
	switch node.ShortTag() {
	case "!!null":
		return report.Missing()
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err == nil {
			return report.Bool(b)
		}
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return report.Integer(i)
		}
	case "!!float":
		var f float64
		if err := node.Decode(&f); err == nil {
			return report.Number(f)
		}
	}
	return report.Text(node.Value)
}

// flowText renders a sequence on one line, e.g. [1, 2].
func flowText(node *yaml.Node) (string, error) {
	flow := *node
	flow.Style = yaml.FlowStyle
	flow.Anchor = ""
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(&flow); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// resolve follows alias chains to the anchored node.
func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge"
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
