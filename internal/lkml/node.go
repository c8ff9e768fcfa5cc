package lkml

// ValueKind describes what a Node holds.
type ValueKind int

const (
	// KindLiteral is an unquoted scalar such as "number" or "yes".
	KindLiteral ValueKind = iota
	// KindQuoted is a double-quoted string, stored unescaped.
	KindQuoted
	// KindExpression is raw text that was terminated by ";;".
	KindExpression
	// KindBlock is a "{ ... }" body, optionally named.
	KindBlock
	// KindList is a "[ ... ]" list.
	KindList
)

// Node is one LookML parameter or list item.
type Node struct {
	// Key is the parameter name; empty for bare list items.
	Key string
	// Name is the block name, e.g. "orders" in "view: orders { }".
	Name string
	// Value is the scalar value for literal, quoted and expression nodes.
	Value string
	Kind  ValueKind
	// Children holds the pairs of a block.
	Children []*Node
	// Items holds the elements of a list.
	Items []*Node

	Line   int
	Column int
}

// Document is a parsed LookML file.
type Document struct {
	File  string
	Nodes []*Node
}

// All returns the top-level nodes with the given key, in source order.
func (d *Document) All(key string) []*Node {
	return filterKey(d.Nodes, key)
}

// Views returns every top-level view block.
func (d *Document) Views() []*Node {
	return d.All("view")
}

// View returns the view with the given name, or nil.
func (d *Document) View(name string) *Node {
	for _, v := range d.Views() {
		if v.Name == name {
			return v
		}
	}

	return nil
}

// All returns the child nodes with the given key, in source order.
func (n *Node) All(key string) []*Node {
	return filterKey(n.Children, key)
}

// Child returns the first child with the given key, or nil.
func (n *Node) Child(key string) *Node {
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}

	return nil
}

// Str returns the scalar value of the first child with the given key.
func (n *Node) Str(key string) string {
	c := n.Child(key)
	if c == nil || c.Kind == KindBlock || c.Kind == KindList {
		return ""
	}

	return c.Value
}

// Values returns the scalar values of a list node.
func (n *Node) Values() []string {
	var out []string

	for _, item := range n.Items {
		if item.Kind != KindBlock && item.Kind != KindList {
			out = append(out, item.Value)
		}
	}

	return out
}

func filterKey(nodes []*Node, key string) []*Node {
	var out []*Node

	for _, n := range nodes {
		if n.Key == key {
			out = append(out, n)
		}
	}

	return out
}
