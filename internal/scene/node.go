// Package scene holds the runtime scene graph: loaded solids, their
// GPU-ready mesh data and materials, and the bounds the viewer and the
// clipping system derive their reference size from.
package scene

// Node is an element of the scene tree
type Node struct {
	Name     string
	Parent   *Node
	Visible  bool
	children []*Node
}

// NewNode creates a visible, detached node
func NewNode(name string) *Node {
	return &Node{Name: name, Visible: true}
}

// AddChild attaches a child node, detaching it from any previous parent
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches a child node
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Children returns the direct children
func (n *Node) Children() []*Node {
	return n.children
}

// WorldVisible reports whether the node and all its ancestors are visible
func (n *Node) WorldVisible() bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if !cur.Visible {
			return false
		}
	}
	return true
}
