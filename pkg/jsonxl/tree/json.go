package tree

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Decode parses a JSON document into a Node.
func Decode(data []byte) (Node, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromInterface(v)
}

// DecodeFile reads and parses a JSON file.
func DecodeFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// FromInterface converts a decoded JSON value (maps, slices and scalars) to
// a Node.
func FromInterface(v interface{}) (Node, error) {
	switch t := v.(type) {
	case nil:
		return Leaf{Value: Null}, nil
	case bool:
		return Leaf{Value: Boolean(t)}, nil
	case float64:
		return Leaf{Value: Number(t)}, nil
	case string:
		return Leaf{Value: String(t)}, nil
	case []interface{}:
		arr := make(Array, len(t))
		for i, child := range t {
			n, err := FromInterface(child)
			if err != nil {
				return nil, err
			}
			arr[i] = n
		}
		return arr, nil
	case map[string]interface{}:
		obj := make(Object, len(t))
		for k, child := range t {
			n, err := FromInterface(child)
			if err != nil {
				return nil, err
			}
			obj[k] = n
		}
		return obj, nil
	}
	return nil, fmt.Errorf("unsupported JSON value type %T", v)
}

// Interface returns the native Go representation of a tree.
func Interface(n Node) interface{} {
	switch t := n.(type) {
	case Leaf:
		return t.Value.Interface()
	case Array:
		out := make([]interface{}, len(t))
		for i, child := range t {
			out[i] = Interface(child)
		}
		return out
	case Object:
		out := make(map[string]interface{}, len(t))
		for k, child := range t {
			out[k] = Interface(child)
		}
		return out
	}
	return nil
}

// Encode serializes a tree as indented JSON.
func Encode(n Node) ([]byte, error) {
	return json.MarshalIndent(Interface(n), "", "    ")
}

// EncodeFile writes a tree to a JSON file.
func EncodeFile(path string, n Node) error {
	data, err := Encode(n)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
