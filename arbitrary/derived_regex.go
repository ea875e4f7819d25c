// SPDX-License-Identifier: MIT
package arbitrary

import (
	"regexp"
	"strings"
)

// regexNode is one node of a compiled regex AST. Only the subset needed
// for generation is supported: literals, character classes, '.', '*' '+'
// '?' '{n,m}' quantifiers, '|' alternation, and '(...)' grouping.
type regexNode struct {
	kind     regexKind
	literal  rune
	class    []runeRange // char-class ranges (or negated set)
	negated  bool
	children []regexNode // sequence (kind=seqNode) or alternatives (kind=altNode)
	child    *regexNode  // quantified/grouped sub-node
	min, max int         // quantifier bounds; max==-1 means unbounded
}

type regexKind int

const (
	litNode regexKind = iota
	classNode
	anyNode
	seqNode
	altNode
	repeatNode
)

type runeRange struct{ lo, hi rune }

const regexQuantMax = 6 // cap on unbounded '*'/'+' repetition during generation

// regexArb generates strings matching a (restricted) regular expression.
type regexArb struct {
	pattern string
	root    regexNode
	re      *regexp.Regexp // used for CanGenerate verification
}

// Regex returns an Arbitrary over strings matching pattern, per §3's
// "String/Regex/Graph/Path … derived via map from integer arbitraries":
// every nondeterministic decision in generation (which alternative, how
// many repetitions, which class member) is itself drawn from an
// Integer(0,n-1) arbitrary via intFromUnit, so the generator composes
// out of the same uniform-draw primitive as the rest of the algebra even
// though the AST walk is not materialized as nested Mapped values.
//
// Errors (§7 SchemaValidation): returns NoArbitrary() if pattern fails to
// parse or fails to compile as a Go regexp (used for CanGenerate).
func Regex(pattern string) Arbitrary {
	root, ok := parseRegex(pattern)
	if !ok {
		return NoArbitrary()
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return NoArbitrary()
	}

	return regexArb{pattern: pattern, root: root, re: re}
}

func (a regexArb) Name() string { return "regex(" + a.pattern + ")" }

// Size is estimated: regex spaces are generally uncountable or very
// large, and a precise combinatorial count would require expanding every
// quantifier exactly, which this restricted generator avoids.
func (a regexArb) Size() Size {
	return EstimatedSize(nominalRealCardinality, 1, nominalRealCardinality)
}

func (a regexArb) Pick(rng RNG) (Pick, bool) {
	var sb strings.Builder
	generateRegex(a.root, rng, &sb)

	return NewPick(sb.String()), true
}

func (a regexArb) CanGenerate(p Pick) bool {
	s, ok := p.Value.(string)
	if !ok {
		return false
	}

	return a.re.MatchString(s)
}

func (a regexArb) CornerCases() []Pick {
	var sb strings.Builder
	generateRegexMin(a.root, &sb)

	return []Pick{NewPick(sb.String())}
}

// Shrink has no structural sub-pattern to narrow toward, so it returns a
// Constant arbitrary fixed at the shortest string this pattern can
// produce — still satisfying the parent's CanGenerate as long as the
// minimal expansion matches, which it does by construction of
// generateRegexMin.
func (a regexArb) Shrink(initial Pick) Arbitrary {
	var sb strings.Builder
	generateRegexMin(a.root, &sb)
	min := sb.String()
	if a.re.MatchString(min) {
		return Constant(min)
	}

	return a
}

func (a regexArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a regexArb) Equal(x, y Value) bool { return deepEqual(x, y) }

// --- generation ---

func generateRegex(n regexNode, rng RNG, sb *strings.Builder) {
	switch n.kind {
	case litNode:
		sb.WriteRune(n.literal)
	case anyNode:
		sb.WriteRune(rune(intFromUnit(rng.Float64(), 'a', 'z')))
	case classNode:
		sb.WriteRune(pickFromClass(n, rng))
	case seqNode:
		for _, c := range n.children {
			generateRegex(c, rng, sb)
		}
	case altNode:
		idx := intFromUnit(rng.Float64(), 0, len(n.children)-1)
		generateRegex(n.children[idx], rng, sb)
	case repeatNode:
		max := n.max
		if max < 0 || max > n.min+regexQuantMax {
			max = n.min + regexQuantMax
		}
		count := intFromUnit(rng.Float64(), n.min, max)
		for i := 0; i < count; i++ {
			generateRegex(*n.child, rng, sb)
		}
	}
}

// generateRegexMin expands every node to its minimal possible length:
// the first alternative, the minimum quantifier bound, the first class
// member.
func generateRegexMin(n regexNode, sb *strings.Builder) {
	switch n.kind {
	case litNode:
		sb.WriteRune(n.literal)
	case anyNode:
		sb.WriteRune('a')
	case classNode:
		sb.WriteRune(firstFromClass(n))
	case seqNode:
		for _, c := range n.children {
			generateRegexMin(c, sb)
		}
	case altNode:
		if len(n.children) > 0 {
			generateRegexMin(n.children[0], sb)
		}
	case repeatNode:
		for i := 0; i < n.min; i++ {
			generateRegexMin(*n.child, sb)
		}
	}
}

func pickFromClass(n regexNode, rng RNG) rune {
	total := 0
	for _, r := range n.class {
		total += int(r.hi-r.lo) + 1
	}
	if total == 0 {
		return 'a'
	}

	target := intFromUnit(rng.Float64(), 0, total-1)
	for _, r := range n.class {
		span := int(r.hi-r.lo) + 1
		if target < span {
			return r.lo + rune(target)
		}
		target -= span
	}

	return n.class[0].lo
}

func firstFromClass(n regexNode) rune {
	if len(n.class) == 0 {
		return 'a'
	}

	return n.class[0].lo
}
