// SPDX-License-Identifier: MIT

// Package teampath computes single-source shortest paths over dense,
// non-negatively weighted graphs with a fixed team of worker goroutines.
//
// What is teampath?
//
//	A small, dependency-light library plus CLI built around one algorithm:
//		• matrix/    – the read-only N×N distance matrix, builders and Floyd–Warshall
//		• partition/ – contiguous per-worker node ranges
//		• barrier/   – a reusable, breakable rendezvous for a fixed team
//		• parallel/  – the fixed-team, round-synchronous shortest-path run
//		• dijkstra/  – the sequential heap-based reference used for verification
//
// The team is spawned once. Every round each worker finds its nearest
// unconnected node, the candidates are reduced to a global minimum under a
// mutex, one worker connects it, and every worker relaxes its own range
// through the new node. Three barriers keep the rounds in lockstep.
//
// Quick ASCII example (the built-in demonstration graph):
//
//	N0--15--N2-100--N3
//	  \      |     /
//	   40   20   10
//	     \   |   /
//	       N1
//	      /   \
//	     6     25
//	    /       \
//	  N5---8----N4
//
//	res, _ := parallel.Run(matrix.Demo(), 4)
//	fmt.Println(res) // 0 35 15 45 49 41
//
// The teampath command (cmd/teampath) wraps the same run with graph files,
// configuration, tracing and verification:
//
//	teampath run --graph g.yaml --workers 4 --trace --verify
//	teampath plan --nodes 6 --workers 4
//	teampath demo
package teampath
