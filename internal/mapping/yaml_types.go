package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// NameList is a list of field names that can be unmarshaled from either a
// single string or an array of strings.
type NameList []string

// UnmarshalYAML implements custom YAML unmarshaling for NameList.
func (n *NameList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*n = NameList{str}
		} else {
			*n = NameList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*n = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected a name or a list of names", node.Line)
	}
}

// Contains returns true if the list contains the given name.
func (n NameList) Contains(name string) bool {
	return slices.Contains(n, name)
}
