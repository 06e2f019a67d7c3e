// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - All-pairs shortest paths (Floyd–Warshall) over a Distance, used as an
//     independent reference for single-source results.
//
// Contract:
//   - Inf means "no path"; the diagonal is 0; additions saturate at Inf.

package matrix

const opFloydWarshall = "FloydWarshall"

// FloydWarshall returns the all-pairs shortest-path closure of d.
// d itself is left untouched; the closure is computed on a clone.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Complexity: Time O(n^3), extra space O(n^2) for the clone.
func FloydWarshall(d *Distance) (*Distance, error) {
	if d == nil {
		return nil, matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}

	out := d.Clone()
	n := out.n
	data := out.data

	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row offsets in the flat buffer
		ik, kj, cand int64 // d[i,k], d[k,j], candidate via k
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Inf { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Inf {
					continue
				}
				cand = SaturatingAdd(ik, kj)
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return out, nil
}
