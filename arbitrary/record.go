// SPDX-License-Identifier: MIT
package arbitrary

import "sort"

// recordArb draws map[string]Value according to a fixed field→Arbitrary
// schema. Field iteration order is always the sorted key order, so
// Size/Pick/CanGenerate are deterministic regardless of Go's randomized
// map iteration.
type recordArb struct {
	schema map[string]Arbitrary
	keys   []string // sorted once at construction
}

// Record returns an Arbitrary over map[string]Value built from schema.
//
// Errors:
//   - returns (nil, ErrSchemaValidation) if schema is empty or any field
//     arbitrary is nil (§7 SchemaValidation: "fails fast at
//     construction").
func Record(schema map[string]Arbitrary) (Arbitrary, error) {
	if len(schema) == 0 {
		return nil, ErrSchemaValidation
	}

	keys := make([]string, 0, len(schema))
	for k, v := range schema {
		if v == nil {
			return nil, ErrSchemaValidation
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cp := make(map[string]Arbitrary, len(schema))
	for k, v := range schema {
		cp[k] = v
	}

	return recordArb{schema: cp, keys: keys}, nil
}

func (a recordArb) Name() string { return "record" }

func (a recordArb) Size() Size {
	total := ExactSize(1)
	for _, k := range a.keys {
		total = total.Product(a.schema[k].Size())
	}

	return total
}

func (a recordArb) Pick(rng RNG) (Pick, bool) {
	out := make(map[string]Value, len(a.keys))
	for _, k := range a.keys {
		p, ok := a.schema[k].Pick(rng)
		if !ok {
			return Pick{}, false
		}
		out[k] = p.Value
	}

	return NewPick(out), true
}

func (a recordArb) CanGenerate(p Pick) bool {
	vs, ok := p.Value.(map[string]Value)
	if !ok || len(vs) != len(a.keys) {
		return false
	}
	for _, k := range a.keys {
		v, present := vs[k]
		if !present || !a.schema[k].CanGenerate(NewPick(v)) {
			return false
		}
	}

	return true
}

func (a recordArb) CornerCases() []Pick {
	maxN := 0
	slotCases := make(map[string][]Pick, len(a.keys))
	for _, k := range a.keys {
		cc := a.schema[k].CornerCases()
		slotCases[k] = cc
		if len(cc) > maxN {
			maxN = len(cc)
		}
	}
	if maxN == 0 {
		return nil
	}

	out := make([]Pick, 0, maxN)
	for i := 0; i < maxN; i++ {
		row := make(map[string]Value, len(a.keys))
		for _, k := range a.keys {
			cc := slotCases[k]
			if len(cc) == 0 {
				continue
			}
			row[k] = cc[i%len(cc)].Value
		}
		out = append(out, NewPick(row))
	}

	return out
}

func (a recordArb) Shrink(initial Pick) Arbitrary {
	vs, ok := initial.Value.(map[string]Value)
	if !ok {
		return a
	}

	narrowed := make(map[string]Arbitrary, len(a.keys))
	for _, k := range a.keys {
		v, present := vs[k]
		if !present {
			narrowed[k] = a.schema[k]
			continue
		}
		narrowed[k] = a.schema[k].Shrink(NewPick(v))
	}

	r, err := Record(narrowed)
	if err != nil {
		return a
	}

	return r
}

func (a recordArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a recordArb) Equal(x, y Value) bool { return deepEqual(x, y) }
