// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tfctl/textdiff/internal/linediff"
	"github.com/tfctl/textdiff/internal/log"
)

// filterRegex is the pattern used to parse filter expressions into key,
// operator, and target components. Operators are one of = ^ ~ < > @ or /,
// optionally prefixed with '!'. Examples: "op=add" (key + operator + target),
// "line=" (key + operator, empty target), "line!/^\s*#" (negated regex).
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Keys that may be filtered on.
const (
	KeyOp   = "op"
	KeyLine = "line"
	KeyOld  = "old"
	KeyNew  = "new"
)

// Filter is a single parsed --filter expression including the key, operand,
// optional negation and value to match against.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Entries are separated by commas, or by $TEXTDIFF_FILTER_DELIM when the
// values themselves contain commas.
func BuildFilters(spec string) ([]Filter, error) {
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters, nil
	}

	delim := ","
	if d, ok := os.LookupEnv("TEXTDIFF_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for filterSpec := range strings.SplitSeq(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		// parts[1] is the key
		// parts[2] is the optional operator (may include negation like "!")
		// parts[3] is the optional target
		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			return nil, fmt.Errorf("invalid filter: %s", filterSpec)
		}

		key := strings.TrimSpace(parts[1])
		operand := parts[2]
		target := parts[3]

		switch key {
		case KeyOp, KeyLine, KeyOld, KeyNew:
		case "":
			return nil, fmt.Errorf("invalid filter: empty key in %s", filterSpec)
		default:
			return nil, fmt.Errorf("invalid filter: unknown key %q in %s (valid: op, line, old, new)", key, filterSpec)
		}

		if operand == "" {
			return nil, fmt.Errorf("invalid filter: missing operator in %s", filterSpec)
		}

		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		if operand == "/" {
			if _, err := regexp.Compile(target); err != nil {
				return nil, fmt.Errorf("invalid filter regex %q: %w", target, err)
			}
		}

		// Op names are lowercase. An exact match is stored in canonical form.
		if key == KeyOp {
			target = strings.ToLower(target)
			if operand == "=" {
				op, ok := linediff.ParseOp(target)
				if !ok {
					return nil, fmt.Errorf("invalid filter: unknown op %q in %s", parts[3], filterSpec)
				}
				target = op.String()
			}
		}

		if (key == KeyOld || key == KeyNew) && strings.ContainsAny(operand, "=<>") {
			if _, err := strconv.ParseFloat(strings.TrimSpace(target), 64); err != nil {
				return nil, fmt.Errorf("invalid filter: %s needs a number, got %q in %s", key, target, filterSpec)
			}
		}

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   target,
		})
	}

	return filters, nil
}

// Apply returns the rows that match every filter in spec, in their original
// order.
func Apply(rows []linediff.NumberedOp, spec string) ([]linediff.NumberedOp, error) {
	filters, err := BuildFilters(spec)
	if err != nil {
		return nil, err
	}

	if len(filters) == 0 {
		return rows, nil
	}

	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var kept []linediff.NumberedOp
	for _, row := range rows {
		if applyFilters(row, filters) {
			kept = append(kept, row)
		}
	}
	log.Debugf("filters: spec=%s kept=%d of %d", spec, len(kept), len(rows))

	return kept, nil
}

// applyFilters returns true if the row matches all of the provided filters.
func applyFilters(row linediff.NumberedOp, filters []Filter) bool {
	for _, filter := range filters {
		var result bool
		switch filter.Key {
		case KeyOp:
			result = checkStringOperand(row.Op.String(), filter)
		case KeyLine:
			result = checkStringOperand(row.Line, filter)
		case KeyOld:
			result = checkNumericOperand(float64(row.Old), filter)
		case KeyNew:
			result = checkNumericOperand(float64(row.New), filter)
		}

		if !result {
			return false
		}
	}

	return true
}

// checkNumericOperand compares a numeric value against the filter value using
// numeric semantics. Supported operands: =, >, < and the negated form via
// filter.Negate (e.g., != is represented as Negate + "="). Other operands fall
// back to string comparison of the formatted number.
func checkNumericOperand(value float64, filter Filter) bool {
	switch filter.Operand {
	case "=", ">", "<":
	default:
		return checkStringOperand(strconv.FormatFloat(value, 'f', -1, 64), filter)
	}

	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64)
	if err != nil {
		log.Errorf("invalid numeric value: %s", filter.Value)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	default:
		return (value < tgt) == !filter.Negate
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.Contains(strings.ToLower(value), strings.ToLower(filter.Value)) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Errorf("invalid regex: %s", filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Errorf("unsupported filtering operand: %s", filter.Operand)
		return false
	}
}
