// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a numbered edit script before rendering.
//
// Filters are key-operator-target expressions joined by a delimiter (default
// comma, overridden by TEXTDIFF_FILTER_DELIM). A row is kept when it matches
// every expression. Filtering never reorders rows.
//
// Keys:
//
//   - op   : "same", "add" or "remove"
//   - line : the line text
//   - old  : 1-based line number in the original, 0 for added lines
//   - new  : 1-based line number in the modified text, 0 for removed lines
//
// Operators, each negated by a leading '!':
//
//   - = : exact match (numeric for old and new)
//   - ^ : prefix match
//   - ~ : case-insensitive substring match
//   - @ : case-sensitive substring match
//   - / : regular expression match
//   - < : less than (numeric for old and new)
//   - > : greater than (numeric for old and new)
//
// Examples:
//
//   - "op!=same" : only changed lines
//   - "line~todo" : lines mentioning todo in any case
//   - "old>100,old<200" : lines 101-199 of the original
//   - "line!/^\s*$" : skip blank lines
package filters
