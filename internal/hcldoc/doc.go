// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package hcldoc normalizes HCL documents (.hcl, .tf, .tfvars) into JSON so
// they can be compared structurally.
//
// Attributes are evaluated with the cty standard library functions and no
// variables. An attribute that cannot be evaluated, typically because it
// references a variable or resource, is kept as its source text wrapped in
// "${...}". Blocks nest as type, then each label, then the block body.
// Repeated blocks with the same type and labels become an array.
package hcldoc
