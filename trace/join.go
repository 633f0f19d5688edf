// File: join.go
// Role: the bilinear join kernel of §4.1/§4.7. Join itself is the pure,
//       non-incremental form: for each shared outer key, the full cross
//       product of the two inner Z-sets, weights multiplied. Package
//       circuit's AddJoin operator calls this kernel twice per tick
//       (once per cross term of the two-trace expansion in §4.7) rather
//       than reimplementing the cross product.

package trace

import "github.com/katalvlaran/dbsp/zset"

// Join computes, for every outer key k present in both a and b, and for
// every (v, wa) in a[k] and (u, wb) in b[k], the contribution
// (f(k,v,u), wa*wb) to the result. Bilinear in (a,b): linear in each
// argument separately, which is exactly the property the incremental
// join operator in package circuit relies on.
//
// Complexity: O(Σ_k |a[k]| * |b[k]|) over shared keys k — iterates
// whichever of a,b has fewer outer keys to look up the other side.
func Join[K comparable, V comparable, W comparable, O comparable](
	a Trace[K, V],
	b Trace[K, W],
	f func(k K, v V, w W) O,
) zset.Set[O] {
	out := zset.Empty[O]()
	add := func(oKey O, weight int64) {
		if weight == 0 {
			return
		}
		sum := out[oKey] + weight
		if sum == 0 {
			delete(out, oKey)
		} else {
			out[oKey] = sum
		}
	}
	// a and b are distinct instantiated types (V and W need not match),
	// so the smaller-side optimization branches into two loops rather
	// than reassigning across the type boundary.
	if len(b) < len(a) {
		for k, innerB := range b {
			innerA, ok := a[k]
			if !ok {
				continue
			}
			for v, wa := range innerA {
				for w, wb := range innerB {
					add(f(k, v, w), wa*wb)
				}
			}
		}
		return out
	}
	for k, innerA := range a {
		innerB, ok := b[k]
		if !ok {
			continue
		}
		for v, wa := range innerA {
			for w, wb := range innerB {
				add(f(k, v, w), wa*wb)
			}
		}
	}
	return out
}
