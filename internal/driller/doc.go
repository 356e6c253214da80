// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller narrows a JSON document to the subtree at a dot path before
// it is diffed, so that two large documents can be compared on just the part
// that matters.
//
// Path segments are object keys, optionally followed by an array selector:
// key[n] picks element n, key[*] or key[] keeps the whole array. An array
// without a selector collapses to its element when it has exactly one.
package driller
