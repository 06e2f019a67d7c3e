// SPDX-License-Identifier: MIT

// Package parallel computes single-source shortest paths over a dense
// matrix.Distance with a fixed team of goroutines.
//
// Model:
//
//   - The node range [0,n) is split by partition.Plan into one contiguous
//     range per worker. A worker writes distances only inside its own range.
//   - The team is spawned once and runs n−1 rounds in lockstep. Each round:
//
//     SCANNING        each worker finds its nearest unconnected node
//     REPORTING       it merges that candidate into the shared (md, mv) cell
//     barrier-1       the cell now holds the global minimum
//     OBSERVE_CONNECT the designated worker adds mv to the connected set
//     barrier-2
//     UPDATING        each worker relaxes its range through mv
//     barrier-3
//
//   - The (md, mv) cell is the only mutex-guarded value. Two cells alternate
//     by round parity so the designated worker can reset next round's cell
//     during the connect step without a fourth barrier.
//
// The round count is fixed at n−1 even if every reachable node is connected
// earlier; WithEarlyExit opts out. When several nodes tie for the minimum,
// whichever worker enters the critical section first wins; the final
// distances do not depend on it.
//
// Failure model: configuration errors are returned before any goroutine is
// started. A panic or invariant violation inside a worker breaks the
// barrier and is returned by Run. A worker that hangs hangs the whole team.
//
// Example:
//
//	res, err := parallel.Run(matrix.Demo(), 4, parallel.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res) // 0 35 15 45 49 41
package parallel
