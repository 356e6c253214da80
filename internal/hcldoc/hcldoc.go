// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hcldoc

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/tfctl/textdiff/internal/log"
)

var extensions = []string{".hcl", ".tf", ".tfvars"}

// IsHCL reports whether filename has an HCL extension.
func IsHCL(filename string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(filename)))
}

// ToJSON parses src as native HCL syntax and returns an indented JSON
// rendering of it. Object keys are sorted.
func ToJSON(src []byte, filename string) ([]byte, error) {
	doc, err := ToMap(src, filename)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", filename, err)
	}
	return out, nil
}

// ToMap parses src into nested Go values.
func ToMap(src []byte, filename string) (map[string]interface{}, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected body type %T in %s", file.Body, filename)
	}

	doc, err := convertBody(body, src, evalContext())
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", filename, err)
	}
	return doc, nil
}

// convertBody converts attributes to values and nests blocks by type. When
// every block of a type has the same number of labels they nest as
// type -> label... -> body, and repeated label paths become arrays. A type
// used with differing label counts becomes an array of {"labels", "body"}
// objects in source order.
func convertBody(body *hclsyntax.Body, src []byte, ctx *hcl.EvalContext) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(body.Attributes)+len(body.Blocks))

	for name, attr := range body.Attributes {
		out[name] = convertExpr(attr.Expr, src, ctx)
	}

	var types []string
	byType := map[string][]*hclsyntax.Block{}
	for _, block := range body.Blocks {
		if _, ok := byType[block.Type]; !ok {
			types = append(types, block.Type)
		}
		byType[block.Type] = append(byType[block.Type], block)
	}

	for _, typ := range types {
		if _, ok := out[typ]; ok {
			return nil, fmt.Errorf("block type %q conflicts with an attribute of the same name", typ)
		}

		blocks := byType[typ]
		bodies := make([]map[string]interface{}, len(blocks))
		for i, block := range blocks {
			b, err := convertBody(block.Body, src, ctx)
			if err != nil {
				return nil, err
			}
			bodies[i] = b
		}

		if !sameLabelCount(blocks) {
			list := make([]interface{}, len(blocks))
			for i, block := range blocks {
				labels := make([]interface{}, len(block.Labels))
				for j, l := range block.Labels {
					labels[j] = l
				}
				list[i] = map[string]interface{}{"labels": labels, "body": bodies[i]}
			}
			out[typ] = list
			continue
		}

		var node interface{}
		for i, block := range blocks {
			node = insert(node, block.Labels, bodies[i])
		}
		out[typ] = node
	}

	return out, nil
}

func sameLabelCount(blocks []*hclsyntax.Block) bool {
	for _, b := range blocks[1:] {
		if len(b.Labels) != len(blocks[0].Labels) {
			return false
		}
	}
	return true
}

// insert places body under labels in node. All label paths handed to one node
// have the same length, so label levels never meet a body. A second body at
// the same path turns the leaf into an array.
func insert(node interface{}, labels []string, body map[string]interface{}) interface{} {
	if len(labels) == 0 {
		switch existing := node.(type) {
		case nil:
			return body
		case []interface{}:
			return append(existing, body)
		default:
			return []interface{}{existing, body}
		}
	}

	m, _ := node.(map[string]interface{})
	if m == nil {
		m = map[string]interface{}{}
	}
	m[labels[0]] = insert(m[labels[0]], labels[1:], body)
	return m
}

func convertExpr(expr hclsyntax.Expression, src []byte, ctx *hcl.EvalContext) interface{} {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() || !val.IsWhollyKnown() {
		raw := string(expr.Range().SliceBytes(src))
		log.Debugf("hcl expression kept as source: %s", raw)
		return "${" + raw + "}"
	}
	return ctyValueToGo(val)
}

// ctyValueToGo converts cty values to Go values.
func ctyValueToGo(val cty.Value) interface{} {
	if val.IsNull() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.Bool:
		return val.True()
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == 0 {
				return i
			}
		}
		f, _ := bf.Float64()
		return f
	case ty == cty.String:
		return val.AsString()
	case ty.IsTupleType(), ty.IsListType(), ty.IsSetType():
		result := make([]interface{}, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elemVal := it.Element()
			result = append(result, ctyValueToGo(elemVal))
		}
		return result
	case ty.IsObjectType(), ty.IsMapType():
		result := make(map[string]interface{})
		for it := val.ElementIterator(); it.Next(); {
			keyVal, elemVal := it.Element()
			result[keyVal.AsString()] = ctyValueToGo(elemVal)
		}
		return result
	default:
		return fmt.Sprintf("%#v", val)
	}
}
