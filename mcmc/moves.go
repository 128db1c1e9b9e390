// Package mcmc - the three reversible move families.
//
// Every proposal clones the current tree, rewrites the clone in place, and
// reports the Hastings correction q = P(reverse)/P(forward) so that Step's
// acceptance test keeps detailed balance.  Choice factors that are equal in
// both directions cancel and are omitted.
package mcmc

import (
	"math"

	"github.com/katalvlaran/eqsearch/exprtree"
	"github.com/katalvlaran/eqsearch/primitive"
)

// proposal is one candidate rewrite.
type proposal struct {
	tree  *exprtree.Node
	qcorr float64
	ok    bool
}

// rejected is the no-site proposal; Step counts it as a plain rejection.
var rejected = proposal{}

// leafPool returns how many distinct leaves a proposal can draw:
// every dataset variable plus every fitted-constant name.
func (c *Chain) leafPool() int { return len(c.vars) + len(c.params) }

// randomLeaf draws a uniform leaf: a variable or a fitted constant.
func (c *Chain) randomLeaf() *exprtree.Node {
	i := c.rng.Intn(c.leafPool())
	if i < len(c.vars) {
		return exprtree.NewVar(c.vars[i])
	}
	return exprtree.NewConst(c.params[i-len(c.vars)])
}

// randomParam draws a fitted-parameter name for primitives that carry one.
func (c *Chain) randomParam() string {
	return c.params[c.rng.Intn(len(c.params))]
}

// collect returns every node of the tree in pre-order.
func collect(root *exprtree.Node) []*exprtree.Node {
	nodes := make([]*exprtree.Node, 0, root.Size())
	root.Walk(func(n *exprtree.Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// leavesOf filters collect to leaf nodes.
func leavesOf(root *exprtree.Node) []*exprtree.Node {
	var out []*exprtree.Node
	root.Walk(func(n *exprtree.Node) bool {
		if n.IsLeaf() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// elementaryOf filters collect to operation nodes whose children are all
// leaves — the shrinkable sites of the elementary-tree move.
func elementaryOf(root *exprtree.Node) []*exprtree.Node {
	var out []*exprtree.Node
	root.Walk(func(n *exprtree.Node) bool {
		if n.Type == exprtree.OpNode && n.Op.Arity() > 0 {
			all := true
			for _, ch := range n.Children {
				if !ch.IsLeaf() {
					all = false
					break
				}
			}
			if all {
				out = append(out, n)
			}
		}
		return true
	})
	return out
}

// proposeNodeReplacement retypes one node in place: a leaf becomes another
// leaf, a unary op another unary op, a binary op another binary op.  Site
// and candidate counts are identical in both directions, so q = 1 — except
// across a slope-carrying kind, where the direction that draws the slope
// name (probability 1/P over P fitted names) dilutes its proposal and q
// picks up the compensating P or 1/P.
func (c *Chain) proposeNodeReplacement() proposal {
	clone := c.tree.Clone()
	nodes := collect(clone)
	n := nodes[c.rng.Intn(len(nodes))]
	q := 1.0

	switch {
	case n.IsLeaf():
		repl := c.differentLeaf(n)
		if repl == nil {
			return rejected
		}
		*n = *repl
	case n.Op.Arity() == 1:
		k, ok := c.differentKind(primitive.UnaryKinds(), n.Op)
		if !ok {
			return rejected
		}
		if n.Op.NumParams() == 1 {
			q /= float64(len(c.params))
		}
		n.Op = k
		n.Name = ""
		if k.NumParams() == 1 {
			q *= float64(len(c.params))
			n.Name = c.randomParam()
		}
	default:
		k, ok := c.differentKind(primitive.BinaryKinds(), n.Op)
		if !ok {
			return rejected
		}
		n.Op = k
		n.Name = ""
	}
	return proposal{tree: clone, qcorr: q, ok: true}
}

// differentLeaf draws a leaf distinct from cur, or nil when the pool has no
// alternative (a degenerate one-variable, zero-parameter run).
func (c *Chain) differentLeaf(cur *exprtree.Node) *exprtree.Node {
	if c.leafPool() < 2 {
		return nil
	}
	for {
		cand := c.randomLeaf()
		if cand.Type != cur.Type || cand.Name != cur.Name || cand.Op != cur.Op {
			return cand
		}
	}
}

// differentKind draws from pool excluding cur.
func (c *Chain) differentKind(pool []primitive.Kind, cur primitive.Kind) (primitive.Kind, bool) {
	if len(pool) < 2 {
		return cur, false
	}
	for {
		k := pool[c.rng.Intn(len(pool))]
		if k != cur {
			return k, true
		}
	}
}

// proposeElementaryReplacement grows a leaf into a depth-1 subtree or
// shrinks such a subtree back to a leaf, chosen with equal probability.
//
// Hastings corrections (L = leaf pool size, O = instantiable op count;
// a slope-carrying op adds a × P factor on the direction that draws the
// slope name, P = fitted-name count):
//
//	grow:   q = |leaves(old)| · O · L^(arity−1) / |elementary(new)|
//	shrink: q = |elementary(old)| / (|leaves(new)| · O · L^(arity−1))
func (c *Chain) proposeElementaryReplacement() proposal {
	ops := instantiableKinds()
	if c.rng.Intn(2) == 0 {
		return c.growElementary(ops)
	}
	return c.shrinkElementary(ops)
}

// growElementary replaces a uniform leaf with op(leaf, …).
func (c *Chain) growElementary(ops []primitive.Kind) proposal {
	clone := c.tree.Clone()
	ls := leavesOf(clone)
	site := ls[c.rng.Intn(len(ls))]

	k := ops[c.rng.Intn(len(ops))]
	if clone.Size()+k.Arity() > c.cfg.MaxSize {
		return rejected
	}

	children := make([]*exprtree.Node, k.Arity())
	for i := range children {
		children[i] = c.randomLeaf()
	}
	site.Type = exprtree.OpNode
	site.Op = k
	site.Name = ""
	if k.NumParams() == 1 {
		site.Name = c.randomParam()
	}
	site.Children = children

	q := float64(len(ls)) * float64(len(ops)) *
		math.Pow(float64(c.leafPool()), float64(k.Arity()-1)) /
		float64(len(elementaryOf(clone)))
	if k.NumParams() == 1 {
		q *= float64(len(c.params))
	}
	return proposal{tree: clone, qcorr: q, ok: true}
}

// shrinkElementary replaces a uniform elementary subtree with a fresh leaf.
func (c *Chain) shrinkElementary(ops []primitive.Kind) proposal {
	clone := c.tree.Clone()
	es := elementaryOf(clone)
	if len(es) == 0 {
		return rejected
	}
	site := es[c.rng.Intn(len(es))]
	arity := site.Op.Arity()
	hadSlope := site.Op.NumParams() == 1
	nElemOld := len(es)

	*site = *c.randomLeaf()

	q := float64(nElemOld) /
		(float64(len(leavesOf(clone))) * float64(len(ops)) *
			math.Pow(float64(c.leafPool()), float64(arity-1)))
	if hadSlope {
		q /= float64(len(c.params))
	}
	return proposal{tree: clone, qcorr: q, ok: true}
}

// proposeRootReplacement wraps the whole tree in a new root operation or
// strips a root whose extra children are all leaves, with equal probability.
//
// Stripping keeps the first child; growing therefore puts the old tree
// first.  Corrections mirror each other (slope-carrying roots add the
// same × P factor as the elementary move):
//
//	grow:  q = O · L^(arity−1)
//	strip: q = 1 / (O · L^(arity−1))
func (c *Chain) proposeRootReplacement() proposal {
	ops := instantiableKinds()
	if c.rng.Intn(2) == 0 {
		return c.growRoot(ops)
	}
	return c.stripRoot(ops)
}

// growRoot wraps the current tree: new = op(old, leaf…).
func (c *Chain) growRoot(ops []primitive.Kind) proposal {
	k := ops[c.rng.Intn(len(ops))]
	if c.tree.Size()+k.Arity() > c.cfg.MaxSize {
		return rejected
	}

	children := make([]*exprtree.Node, k.Arity())
	children[0] = c.tree.Clone()
	for i := 1; i < len(children); i++ {
		children[i] = c.randomLeaf()
	}
	param := ""
	if k.NumParams() == 1 {
		param = c.randomParam()
	}
	root := &exprtree.Node{Type: exprtree.OpNode, Op: k, Name: param, Children: children}

	q := float64(len(ops)) * math.Pow(float64(c.leafPool()), float64(k.Arity()-1))
	if k.NumParams() == 1 {
		q *= float64(len(c.params))
	}
	return proposal{tree: root, qcorr: q, ok: true}
}

// stripRoot removes the root, keeping its first child, when every other
// child is a leaf.
func (c *Chain) stripRoot(ops []primitive.Kind) proposal {
	root := c.tree
	if root.Type != exprtree.OpNode || root.Op.Arity() == 0 {
		return rejected
	}
	for _, ch := range root.Children[1:] {
		if !ch.IsLeaf() {
			return rejected
		}
	}
	kept := root.Children[0].Clone()

	q := 1 / (float64(len(ops)) * math.Pow(float64(c.leafPool()), float64(root.Op.Arity()-1)))
	if root.Op.NumParams() == 1 {
		q /= float64(len(c.params))
	}
	return proposal{tree: kept, qcorr: q, ok: true}
}

// instantiableKinds is the pool of primitives growth moves may introduce:
// every catalogue member with at least one input.
func instantiableKinds() []primitive.Kind {
	out := make([]primitive.Kind, 0, len(primitive.UnaryKinds())+len(primitive.BinaryKinds()))
	out = append(out, primitive.UnaryKinds()...)
	out = append(out, primitive.BinaryKinds()...)
	return out
}
