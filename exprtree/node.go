// Package exprtree - node structure and whole-tree inspection.
package exprtree

import (
	"sort"

	"github.com/katalvlaran/eqsearch/primitive"
)

// NodeType discriminates the two node shapes of an equation tree.
//
//   - OpNode  — an instantiation of a catalogue primitive; Children holds
//     exactly Op.Arity() subtrees, and Name carries the fitted-parameter
//     name when Op.NumParams() == 1 (Constant, Sig).
//   - VarNode — a dataset variable leaf; Name is the column name.
type NodeType uint8

const (
	// OpNode marks a primitive instantiation.
	OpNode NodeType = iota
	// VarNode marks a dataset-variable leaf.
	VarNode
)

// Node is one vertex of a candidate equation tree.
//
// Nodes are plain data: the search engine clones and rewrites them freely.
// Use the constructors to get arity and parameter-name validation; direct
// literal construction is reserved for code that upholds the invariants
// itself.
type Node struct {
	Type     NodeType
	Op       primitive.Kind // meaningful for OpNode only
	Name     string         // variable name, or fitted-parameter name
	Children []*Node        // len == Op.Arity() for OpNode; nil for leaves
}

// NewVar returns a variable leaf bound to the dataset column name.
func NewVar(name string) *Node {
	return &Node{Type: VarNode, Name: name}
}

// NewConst returns a fitted-constant leaf carrying the parameter name
// (an arity-0 instantiation of primitive.Constant).
func NewConst(param string) *Node {
	return &Node{Type: OpNode, Op: primitive.Constant, Name: param}
}

// NewOp builds an operation node and validates it:
//   - kind must be a catalogue member with arity len(children);
//   - param must be non-empty exactly when kind carries a fitted parameter
//     (Constant, Sig), and empty otherwise;
//   - children must be non-nil.
//
// Complexity: O(arity).
func NewOp(kind primitive.Kind, param string, children ...*Node) (*Node, error) {
	if !kind.Valid() {
		return nil, primitive.ErrUnknownPrimitive
	}
	if len(children) != kind.Arity() {
		return nil, ErrArity
	}
	if (kind.NumParams() == 1) != (param != "") {
		return nil, ErrParamName
	}
	for _, c := range children {
		if c == nil {
			return nil, ErrNilNode
		}
	}
	n := &Node{Type: OpNode, Op: kind, Name: param}
	if len(children) > 0 {
		n.Children = append([]*Node(nil), children...)
	}
	return n, nil
}

// IsLeaf reports whether the node has no children: a variable or a fitted
// constant.  The search engine's leaf-replacement moves operate on exactly
// this set.
func (n *Node) IsLeaf() bool {
	return n != nil && (n.Type == VarNode || (n.Type == OpNode && n.Op.Arity() == 0))
}

// Clone returns a deep copy of the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Type: n.Type, Op: n.Op, Name: n.Name}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	s := 1
	for _, c := range n.Children {
		s += c.Size()
	}
	return s
}

// Depth returns the number of nodes on the longest root-leaf path; a single
// leaf has depth 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	d := 0
	for _, c := range n.Children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

// Walk visits every node in pre-order.  Returning false from visit stops the
// traversal early.
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur) {
			return
		}
		// Push children in reverse so the left subtree is visited first.
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
}

// Params returns the sorted, de-duplicated names of every fitted parameter
// used in the tree (constants and logistic slopes).
//
// Complexity: O(n log n) in node count.
func (n *Node) Params() []string {
	seen := map[string]struct{}{}
	n.Walk(func(v *Node) bool {
		if v.Type == OpNode && v.Op.NumParams() == 1 {
			seen[v.Name] = struct{}{}
		}
		return true
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Vars returns the sorted, de-duplicated variable names referenced by the tree.
func (n *Node) Vars() []string {
	seen := map[string]struct{}{}
	n.Walk(func(v *Node) bool {
		if v.Type == VarNode {
			seen[v.Name] = struct{}{}
		}
		return true
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// OpCounts returns how many times each primitive is instantiated in the
// tree.  Variable leaves do not count; the prior energy is defined over
// primitive usage only.
func (n *Node) OpCounts() map[primitive.Kind]int {
	counts := map[primitive.Kind]int{}
	n.Walk(func(v *Node) bool {
		if v.Type == OpNode {
			counts[v.Op]++
		}
		return true
	})
	return counts
}

// Equal reports structural equality: same shape, same kinds, same names.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type || n.Op != o.Op || n.Name != o.Name || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Validate checks the whole tree against the constructor invariants; useful
// after manual surgery on Node literals.
func (n *Node) Validate() error {
	if n == nil {
		return ErrNilNode
	}
	var walkErr error
	n.Walk(func(v *Node) bool {
		switch v.Type {
		case VarNode:
			if v.Name == "" {
				walkErr = ErrEmptyName
				return false
			}
			if len(v.Children) != 0 {
				walkErr = ErrArity
				return false
			}
		case OpNode:
			if !v.Op.Valid() {
				walkErr = primitive.ErrUnknownPrimitive
				return false
			}
			if len(v.Children) != v.Op.Arity() {
				walkErr = ErrArity
				return false
			}
			if (v.Op.NumParams() == 1) != (v.Name != "") {
				walkErr = ErrParamName
				return false
			}
			for _, c := range v.Children {
				if c == nil {
					walkErr = ErrNilNode
					return false
				}
			}
		}
		return true
	})
	return walkErr
}
