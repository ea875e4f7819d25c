// SPDX-License-Identifier: MIT
package arbitrary

import "strings"

// defaultAlphabet is the character pool String() draws from absent an
// explicit charset.
const defaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// String returns an Arbitrary over strings of length in [minLen, maxLen],
// each rune drawn uniformly from charset (defaultAlphabet if empty).
//
// Per §3 ("String/Regex/Graph/Path: derived via map from integer
// arbitraries"), String is built as Array(Integer(0,len(charset)-1),
// minLen, maxLen) mapped through an index→rune join, inheriting Array's
// size/shrink/corner-case behavior for free rather than reimplementing
// them.
func String(minLen, maxLen int, charset string) Arbitrary {
	if charset == "" {
		charset = defaultAlphabet
	}
	runes := []rune(charset)
	if len(runes) == 0 || minLen > maxLen || minLen < 0 {
		return NoArbitrary()
	}

	idxArb := Integer(0, int64(len(runes)-1))
	arr := Array(idxArb, minLen, maxLen)

	toString := func(v Value) Value {
		idxs := v.([]Value)
		var sb strings.Builder
		for _, iv := range idxs {
			sb.WriteRune(runes[iv.(int64)])
		}

		return sb.String()
	}

	fromString := func(v Value) (Value, bool) {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		index := make(map[rune]int64, len(runes))
		for i, r := range runes {
			if _, exists := index[r]; !exists {
				index[r] = int64(i)
			}
		}
		idxs := make([]Value, 0, len(s))
		for _, r := range s {
			i, present := index[r]
			if !present {
				return nil, false
			}
			idxs = append(idxs, i)
		}

		return idxs, true
	}

	return Mapped(arr, toString, fromString)
}
