// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points TEXTDIFF_CFG_FILE at a testdata file and resets the
// global Config.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err)

	t.Setenv("TEXTDIFF_CFG_FILE", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

// withConfig loads testFile and runs fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	setupTestConfig(t, testFile)
	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "greedy", cfg.Data["algorithm"])
				assert.Equal(t, "text", cfg.Data["output"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				colors, ok := cfg.Data["colors"].(map[string]interface{})
				assert.True(t, ok, "colors should be a map")
				assert.Equal(t, "#00ff00", colors["add"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, 1, cfg.Data["version"])
				assert.Equal(t, true, cfg.Data["enabled"])
				assert.Equal(t, 250.5, cfg.Data["debounce"])
				assert.Len(t, cfg.Data["tags"], 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_Namespace(t *testing.T) {
	setupTestConfig(t, "nested.yaml")

	cfg, err := Load("lines")
	require.NoError(t, err)
	assert.Equal(t, "lines", cfg.Namespace)

	val, err := GetString("algorithm")
	assert.NoError(t, err)
	assert.Equal(t, "myers", val)
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("TEXTDIFF_CFG_FILE", "/nonexistent/path/textdiff.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	_, err = File()
	assert.Error(t, err)
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("TEXTDIFF_CFG_FILE", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "algorithm",
			want:     "greedy",
		},
		{
			name:     "nested string value",
			testFile: "nested.yaml",
			key:      "colors.remove",
			want:     "#ff0000",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"default-value"},
			want:         "default-value",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "version",
			wantErr:  true,
		},
		{
			name:         "multiple defaults",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"first", "second"},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				got, err := GetString(tt.key, tt.defaultValue...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{
			name:     "int value",
			testFile: "mixed-types.yaml",
			key:      "version",
			want:     1,
		},
		{
			name:     "float value converted to int",
			testFile: "mixed-types.yaml",
			key:      "debounce",
			want:     250,
		},
		{
			name:     "nested int value",
			testFile: "nested.yaml",
			key:      "cache.clean",
			want:     24,
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []int{60},
			want:         60,
		},
		{
			name:     "non-int value",
			testFile: "simple.yaml",
			key:      "algorithm",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				got, err := GetInt(tt.key, tt.defaultValue...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetBool(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		val, err := GetBool("enabled")
		assert.NoError(t, err)
		assert.True(t, val)

		val, err = GetBool("missing", true)
		assert.NoError(t, err)
		assert.True(t, val)

		_, err = GetBool("name")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a bool")
	})
}

func TestConfig_GetWithNamespace(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		Config.Namespace = "lines"

		val, err := Config.get("algorithm")
		assert.NoError(t, err)
		assert.Equal(t, "myers", val)

		// Unnamespaced keys still resolve.
		val, err = Config.get("cache.clean")
		assert.NoError(t, err)
		assert.Equal(t, 24, val)

		b, err := GetBool("color")
		assert.NoError(t, err)
		assert.True(t, b)
	})
}

func TestConfig_Get(t *testing.T) {
	tests := []struct {
		name     string
		testFile string
		key      string
		wantVal  interface{}
		errMsg   string
	}{
		{
			name:     "nested path",
			testFile: "nested.yaml",
			key:      "lines.context",
			wantVal:  3,
		},
		{
			name:     "missing intermediate key",
			testFile: "simple.yaml",
			key:      "nonexistent.nested.path",
			errMsg:   "no valid path found",
		},
		{
			name:     "traverse non-map value",
			testFile: "mixed-types.yaml",
			key:      "version.something",
			errMsg:   "no valid path found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				val, err := Config.get(tt.key)
				if tt.errMsg != "" {
					assert.ErrorContains(t, err, tt.errMsg)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.wantVal, val)
			})
		})
	}
}

func TestGetString_LazyLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	val, err := GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "text", val)
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "string-slice.yaml", func(t *testing.T) {
		vals, err := GetStringSlice("list_top")
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, vals)

		vals, err = GetStringSlice("nested.inner.list")
		assert.NoError(t, err)
		assert.Equal(t, []string{"one", "two three"}, vals)

		Config.Namespace = "lines"
		vals, err = GetStringSlice("review")
		assert.NoError(t, err)
		assert.Equal(t, []string{"--output table", "--titles"}, vals)
	})
}

func TestGetStringSlice_ErrorCases(t *testing.T) {
	withConfig(t, "string-slice.yaml", func(t *testing.T) {
		_, err := GetStringSlice("nonstring_list")
		assert.Error(t, err)

		_, err = GetStringSlice("not_a_list")
		assert.Error(t, err)

		def := []string{"x", "y"}
		vals, err := GetStringSlice("does.not.exist", def)
		assert.NoError(t, err)
		assert.Equal(t, def, vals)

		_, err = GetStringSlice("does.not.exist")
		assert.Error(t, err)
	})
}
