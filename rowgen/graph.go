package rowgen

import "github.com/kbukum/synthkit/errors"

// Node is one position in a generation graph. The shape set is closed:
// a leaf generator, a generator with ordered children, or an ordered
// sequence of independent sibling nodes. Build nodes with G, Nest, and Seq.
type Node interface {
	node()
}

type genNode struct {
	gen Generator
}

type pairNode struct {
	gen      Generator
	children []Node
}

type seqNode struct {
	nodes []Node
}

func (genNode) node()  {}
func (pairNode) node() {}
func (seqNode) node()  {}

// G wraps a single generator as a leaf node.
func G(gen Generator) Node {
	return genNode{gen: gen}
}

// Nest pairs a generator with child nodes. Every row the generator emits
// is visible to the children through the dependency context, and children
// are traversed once per emitted row.
func Nest(gen Generator, children ...Node) Node {
	return pairNode{gen: gen, children: children}
}

// Seq groups sibling nodes. Siblings are traversed in order and do not see
// each other's rows.
func Seq(nodes ...Node) Node {
	return seqNode{nodes: nodes}
}

// Chain nests generators left to right: Chain(a, b, c) is
// Nest(a, Nest(b, G(c))). Convenience for linear parent-child runs.
func Chain(gens ...Generator) Node {
	if len(gens) == 0 {
		return Seq()
	}
	node := G(gens[len(gens)-1])
	for i := len(gens) - 2; i >= 0; i-- {
		node = Nest(gens[i], node)
	}
	return node
}

// normalize collapses a node into canonical form so the traversal only has
// to handle two shapes: a sequence of nodes, or a generator with (possibly
// zero) children. Nested sequences are flattened, childless pairs become
// leaves, and malformed shapes surface as graph-shape errors.
func normalize(n Node) (Node, error) {
	switch v := n.(type) {
	case genNode:
		if v.gen == nil {
			return nil, errors.GraphShape("leaf node has no generator")
		}
		return v, nil
	case pairNode:
		if v.gen == nil {
			return nil, errors.GraphShape("pair node has no generator")
		}
		if len(v.children) == 0 {
			return genNode{gen: v.gen}, nil
		}
		children := make([]Node, 0, len(v.children))
		for _, c := range v.children {
			if c == nil {
				return nil, errors.GraphShape("pair node has nil child").
					WithDetail("table", v.gen.Table())
			}
			nc, err := normalize(c)
			if err != nil {
				return nil, err
			}
			children = append(children, nc)
		}
		return pairNode{gen: v.gen, children: children}, nil
	case seqNode:
		flat := make([]Node, 0, len(v.nodes))
		for _, c := range v.nodes {
			if c == nil {
				return nil, errors.GraphShape("sequence has nil entry")
			}
			nc, err := normalize(c)
			if err != nil {
				return nil, err
			}
			if sub, ok := nc.(seqNode); ok {
				flat = append(flat, sub.nodes...)
				continue
			}
			flat = append(flat, nc)
		}
		return seqNode{nodes: flat}, nil
	case nil:
		return nil, errors.GraphShape("nil node")
	default:
		return nil, errors.GraphShape("unknown node shape")
	}
}
