// Package exprtree - textual forms: canonical infix, LaTeX, fitted render.
package exprtree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/eqsearch/primitive"
)

// String returns the canonical infix form of the tree:
//
//	(X0 + a0)   exp(X0)   (X0 ** a0)   sig{b0}(X0)
//
// The form is deterministic for a given shape, so it doubles as the key of
// the constant-fit cache: two trees with equal String() fit identically.
func (n *Node) String() string {
	var b strings.Builder
	n.writeInfix(&b, func(name string) string { return name })
	return b.String()
}

// Render returns the infix form with every fitted parameter replaced by its
// value from params, rounded to the given number of decimals.  Parameters
// missing from the map keep their symbolic name.
func (n *Node) Render(params map[string]float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	var b strings.Builder
	n.writeInfix(&b, func(name string) string {
		v, ok := params[name]
		if !ok {
			return name
		}
		return strconv.FormatFloat(math.Round(v*scale)/scale, 'g', -1, 64)
	})
	return b.String()
}

// writeInfix is the shared renderer; sub maps a fitted-parameter name to the
// token emitted for it.
func (n *Node) writeInfix(b *strings.Builder, sub func(string) string) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.Type == VarNode {
		b.WriteString(n.Name)
		return
	}
	switch n.Op {
	case primitive.Constant:
		b.WriteString(sub(n.Name))
	case primitive.Add, primitive.Sub, primitive.Mul, primitive.Div, primitive.Pow:
		b.WriteByte('(')
		n.Children[0].writeInfix(b, sub)
		b.WriteByte(' ')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		n.Children[1].writeInfix(b, sub)
		b.WriteByte(')')
	case primitive.Sig:
		// The logistic carries its fitted slope in braces so that two trees
		// differing only in slope identity do not collide as cache keys.
		b.WriteString("sig{")
		b.WriteString(sub(n.Name))
		b.WriteString("}(")
		n.Children[0].writeInfix(b, sub)
		b.WriteByte(')')
	default:
		b.WriteString(n.Op.String())
		b.WriteByte('(')
		n.Children[0].writeInfix(b, sub)
		b.WriteByte(')')
	}
}

// Latex returns a LaTeX rendering of the tree with symbolic parameter names.
func (n *Node) Latex() string {
	if n == nil {
		return ""
	}
	if n.Type == VarNode {
		return texName(n.Name)
	}
	switch n.Op {
	case primitive.Constant:
		return texName(n.Name)
	case primitive.Add:
		return fmt.Sprintf("\\left(%s + %s\\right)", n.Children[0].Latex(), n.Children[1].Latex())
	case primitive.Sub:
		return fmt.Sprintf("\\left(%s - %s\\right)", n.Children[0].Latex(), n.Children[1].Latex())
	case primitive.Mul:
		return fmt.Sprintf("%s \\cdot %s", n.Children[0].Latex(), n.Children[1].Latex())
	case primitive.Div:
		return fmt.Sprintf("\\frac{%s}{%s}", n.Children[0].Latex(), n.Children[1].Latex())
	case primitive.Pow:
		return fmt.Sprintf("{%s}^{%s}", n.Children[0].Latex(), n.Children[1].Latex())
	case primitive.Abs:
		return fmt.Sprintf("\\left|%s\\right|", n.Children[0].Latex())
	case primitive.Relu:
		return fmt.Sprintf("\\max\\left(0, %s\\right)", n.Children[0].Latex())
	case primitive.Exp:
		return fmt.Sprintf("e^{%s}", n.Children[0].Latex())
	case primitive.Log:
		return fmt.Sprintf("\\ln %s", n.Children[0].Latex())
	case primitive.Sig:
		return fmt.Sprintf("\\sigma_{%s}\\left(%s\\right)", texName(n.Name), n.Children[0].Latex())
	case primitive.Fac:
		return fmt.Sprintf("\\Gamma\\left(1 + %s\\right)", n.Children[0].Latex())
	case primitive.Sqrt:
		return fmt.Sprintf("\\sqrt{%s}", n.Children[0].Latex())
	case primitive.Pow2:
		return fmt.Sprintf("{%s}^{2}", n.Children[0].Latex())
	case primitive.Pow3:
		return fmt.Sprintf("{%s}^{3}", n.Children[0].Latex())
	case primitive.Sin:
		return fmt.Sprintf("\\sin %s", n.Children[0].Latex())
	case primitive.Cos:
		return fmt.Sprintf("\\cos %s", n.Children[0].Latex())
	case primitive.Tan:
		return fmt.Sprintf("\\tan %s", n.Children[0].Latex())
	case primitive.Sinh:
		return fmt.Sprintf("\\sinh %s", n.Children[0].Latex())
	case primitive.Cosh:
		return fmt.Sprintf("\\cosh %s", n.Children[0].Latex())
	case primitive.Tanh:
		return fmt.Sprintf("\\tanh %s", n.Children[0].Latex())
	default:
		return fmt.Sprintf("\\mathrm{%s}\\left(%s\\right)", n.Op, n.Children[0].Latex())
	}
}

// texName renders X12 as X_{12} and a0 as a_{0}; names without a numeric
// suffix pass through unchanged.
func texName(name string) string {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(name) {
		return name
	}
	return name[:i] + "_{" + name[i:] + "}"
}
