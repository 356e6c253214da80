// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package linediff computes a greedy, line oriented edit script between two
// texts. The script tags every line as unchanged, added or removed, in the
// order a reader scans a diff from top to bottom.
//
// The algorithm is a nearest-match heuristic, not a minimal edit distance
// diff. On a mismatch it looks ahead in both texts and keeps whichever line
// reappears sooner. Equal lookahead distances resolve to a removal.
package linediff
