// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package watch re-runs a function whenever any of a set of files changes.
// Parent directories are watched rather than the files themselves so that
// editors which save by writing a new file and renaming it over the old one
// still trigger a run. Bursts of events are debounced into a single run.
package watch
