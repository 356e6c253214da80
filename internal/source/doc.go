// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source resolves the texts handed to the differ. A source spec is
// one of:
//
//	"-"                             stdin
//	s3://bucket/key[?versionId=v]   an S3 object, optionally a specific version
//	http://... or https://...       a document fetched over HTTP
//	git:REV:path                    a file as of a git revision (REV defaults to HEAD)
//	anything else                   a local file
//
// Immutable remote inputs (versioned S3 objects and git blobs) are cached
// through cacheutil.
package source
