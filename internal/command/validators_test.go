// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		validator FlagValidatorType
		wantErr   bool
	}{
		{"output text", "text", OutputValidator, false},
		{"output stats", "stats", OutputValidator, false},
		{"output unknown", "xml", OutputValidator, true},
		{"output not a string", 1, OutputValidator, true},
		{"algorithm greedy", "greedy", AlgorithmValidator, false},
		{"algorithm myers", "myers", AlgorithmValidator, false},
		{"algorithm unknown", "patience", AlgorithmValidator, true},
		{"zero", 0, NonNegativeValidator, false},
		{"positive", 4, NonNegativeValidator, false},
		{"negative", -1, NonNegativeValidator, true},
		{"not an int", "1", NonNegativeValidator, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.validator)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFlagValidatorsStopsAtFirstError(t *testing.T) {
	calls := 0
	counting := func(any) error { calls++; return nil }

	err := FlagValidators("xml", OutputValidator, counting)
	assert.Error(t, err)
	assert.Equal(t, 0, calls)

	assert.NoError(t, FlagValidators("text", OutputValidator, counting))
	assert.Equal(t, 1, calls)
}
