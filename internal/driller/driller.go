// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNotFound is returned by Drill when path selects nothing.
var ErrNotFound = errors.New("path not found")

var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Driller navigates JSON using a flexible dot path supporting arrays.
func Driller(jsonData string, path string) gjson.Result {
	parts := strings.Split(path, ".")
	current := gjson.Parse(jsonData)

	for _, p := range parts {
		matches := segmentRegex.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{} // Invalid path segment
		}

		key := matches[1]

		// matches[2] is the [], which we can throw away.

		index := -1
		all := matches[3] == "*" || matches[2] == "[]"
		if matches[3] != "" && !all {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() && !all {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
				// Otherwise do nothing. We'll keep the whole list.
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		} else if index >= 0 {
			// An index on something that isn't an array selects nothing.
			return gjson.Result{}
		}

		current = val
	}

	return current
}

// Drill returns the raw JSON at path within doc. An empty path returns doc
// unchanged.
func Drill(doc []byte, path string) ([]byte, error) {
	if path == "" {
		return doc, nil
	}

	if !gjson.ValidBytes(doc) {
		return nil, errors.New("invalid JSON document")
	}

	result := Driller(string(doc), path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return []byte(result.Raw), nil
}
