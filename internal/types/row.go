package types

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

type Field struct {
	Name  string
	Value Value
}

// Row holds generated fields in schema column order. Identity columns are kept
// with an absent value so the store assigns them; unsupported columns are left out.
type Row []Field

func (r Row) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

func (r Row) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

func (r Row) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Insertable returns the fields that carry a value, in order.
func (r Row) Insertable() Row {
	out := make(Row, 0, len(r))
	for _, f := range r {
		if !f.Value.IsAbsent() {
			out = append(out, f)
		}
	}
	return out
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r Row) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r {
		v, err := f.Value.MarshalYAML()
		if err != nil {
			return nil, err
		}
		var valNode yaml.Node
		if err := valNode.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Name},
			&valNode,
		)
	}
	return node, nil
}
