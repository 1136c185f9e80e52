package models

// NodeType distinguishes directory and file nodes in a preview tree.
type NodeType string

const (
	NodeDirectory NodeType = "directory"
	NodeFile      NodeType = "file"
)

// TreeNode is one node of a structural project preview.
// A file node never has children.
type TreeNode struct {
	Name     string     `yaml:"name" json:"name"`
	Type     NodeType   `yaml:"type" json:"type"`
	Children []*TreeNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// Dir creates a directory node with the given children.
func Dir(name string, children ...*TreeNode) *TreeNode {
	return &TreeNode{Name: name, Type: NodeDirectory, Children: children}
}

// File creates a file node.
func File(name string) *TreeNode {
	return &TreeNode{Name: name, Type: NodeFile}
}

// Add appends children to a directory node and returns the node.
func (n *TreeNode) Add(children ...*TreeNode) *TreeNode {
	n.Children = append(n.Children, children...)
	return n
}

// IsDir reports whether the node is a directory.
func (n *TreeNode) IsDir() bool {
	return n.Type == NodeDirectory
}

// CountFiles returns the number of file nodes in the subtree.
func (n *TreeNode) CountFiles() int {
	if n == nil {
		return 0
	}
	if n.Type == NodeFile {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.CountFiles()
	}
	return total
}

// Walk visits every node in depth-first order, passing the depth from the
// root. The walk stops when fn returns false.
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int) bool) {
	n.walk(0, fn)
}

func (n *TreeNode) walk(depth int, fn func(*TreeNode, int) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(depth+1, fn) {
			return false
		}
	}
	return true
}
