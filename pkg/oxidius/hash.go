package oxidius

import (
	"hash/fnv"
	"math/bits"
)

// atomHash hashes a single atom for use in hhash. Only Symbol atoms
// contribute a non-zero hash; Integer and Real leaves hash to 0. This is
// a pinned detail, not an oversight to correct: Integer and Real leaves
// still affect QuickHash through their position in an inner node's
// operand count (the seed++ in hhash), just not through their own
// value.
func atomHash(a Atom) uint64 {
	if a.Kind != KindSymbol {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(a.Symbol))
	return h.Sum64()
}

// hhash computes the depth-limited tree hash: depth 0 hashes only the
// root (Op for an inner node, the atom hash for a leaf); at depth > 0 an
// inner node seeds with its Op, then XORs in each operand's hash at
// depth-1, incrementing the seed before each XOR to break symmetry
// across operand order.
func hhash(tree *ExprNode, depth int) uint64 {
	if tree.IsLeaf {
		if depth == 0 {
			return atomHash(tree.Atom)
		}
		return 0
	}

	seed := uint64(tree.Op)
	if depth == 0 {
		return seed
	}
	for c := tree.Down; c != nil; c = c.Next {
		seed++
		seed ^= hhash(c, depth-1)
	}
	return seed
}

// QuickHash combines three depth-limited hashes (depths 0, 1, 2) by
// rotation, so that two trees differing in any subtree at depth ≤ 2
// almost always hash differently.
func QuickHash(tree *ExprNode) uint64 {
	h0 := hhash(tree, 0)
	h1 := hhash(tree, 1)
	h2 := hhash(tree, 2)
	return bits.RotateLeft64(h1, -int(h0%7)) | bits.RotateLeft64(h2, int(h0%11))
}

// QuickHashExpr hashes an Expression's root.
func QuickHashExpr(expr Expression) uint64 {
	return QuickHash(expr.Root)
}
