package dynarray

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the live elements as a JSON array.
// It implements [json.Marshaler].
func (a *DynamicArray[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToSlice())
}

// UnmarshalJSON decodes a JSON array and replaces the contents as
// [DynamicArray.FromSlice] does. On error the array is unchanged.
// It implements [json.Unmarshaler].
func (a *DynamicArray[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("dynarray: decode json: %w", err)
	}
	a.FromSlice(items)
	return nil
}

// MarshalYAML encodes the live elements as a YAML sequence.
// It implements [yaml.Marshaler].
func (a *DynamicArray[T]) MarshalYAML() (any, error) {
	return a.ToSlice(), nil
}

// UnmarshalYAML decodes a YAML sequence and replaces the contents as
// [DynamicArray.FromSlice] does. On error the array is unchanged.
// It implements [yaml.Unmarshaler].
func (a *DynamicArray[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return fmt.Errorf("dynarray: decode yaml: %w", err)
	}
	a.FromSlice(items)
	return nil
}

// String returns a JSON representation of the live elements.
// It implements [fmt.Stringer].
func (a *DynamicArray[T]) String() string {
	b, err := a.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", a.ToSlice())
	}
	return string(b)
}
