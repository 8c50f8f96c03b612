package commands

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func TestParsePathList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty string returns empty slice",
			input: "",
			want:  nil,
		},
		{
			name:  "single path",
			input: "/opt/zed/bin",
			want:  []string{"/opt/zed/bin"},
		},
		{
			name:  "multiple paths",
			input: "/opt/zed/bin,/srv/tools/zed",
			want:  []string{"/opt/zed/bin", "/srv/tools/zed"},
		},
		{
			name:  "whitespace handling",
			input: " /opt/zed/bin , /srv/tools/zed ",
			want:  []string{"/opt/zed/bin", "/srv/tools/zed"},
		},
		{
			name:  "empty elements filtered",
			input: "/opt/zed/bin,,/srv/tools/zed",
			want:  []string{"/opt/zed/bin", "/srv/tools/zed"},
		},
		{
			name:  "leading and trailing commas",
			input: ",/opt/zed/bin,/srv/tools/zed,",
			want:  []string{"/opt/zed/bin", "/srv/tools/zed"},
		},
		{
			name:  "only whitespace and commas",
			input: " , , , ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePathList(tt.input)

			if len(got) != len(tt.want) {
				t.Errorf("parsePathList(%q) = %v (len %d), want %v (len %d)",
					tt.input, got, len(got), tt.want, len(tt.want))
				return
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parsePathList(%q)[%d] = %q, want %q",
						tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConfigGet(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		setupValue func()
		wantOutput string
	}{
		{
			name: "unset key prints not set",
			key:  "nonexistent_key",
			setupValue: func() {
				// Don't set anything
			},
			wantOutput: "not set\n",
		},
		{
			name: "scalar value prints the value",
			key:  "version",
			setupValue: func() {
				viper.Set("version", 1)
			},
			wantOutput: "1\n",
		},
		{
			name: "nested key prints the value",
			key:  "zed.path",
			setupValue: func() {
				viper.Set("zed.path", "/opt/zed/zed")
			},
			wantOutput: "/opt/zed/zed\n",
		},
		{
			name: "array value prints one per line",
			key:  "search.extra_paths",
			setupValue: func() {
				viper.Set("search.extra_paths", []string{"/opt/zed/bin", "/srv/tools/zed"})
			},
			wantOutput: "/opt/zed/bin\n/srv/tools/zed\n",
		},
		{
			name: "empty array prints nothing",
			key:  "search.extra_paths",
			setupValue: func() {
				viper.Set("search.extra_paths", []string{})
			},
			wantOutput: "",
		},
		{
			name: "interface slice prints one per line",
			key:  "mixed_slice",
			setupValue: func() {
				viper.Set("mixed_slice", []interface{}{"a", "b", "c"})
			},
			wantOutput: "a\nb\nc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			tt.setupValue()

			var err error
			got := captureStdout(t, func() {
				err = runConfigGet(nil, []string{tt.key})
			})

			if err != nil {
				t.Errorf("runConfigGet() error = %v", err)
				return
			}

			if got != tt.wantOutput {
				t.Errorf("runConfigGet(%q) output = %q, want %q", tt.key, got, tt.wantOutput)
			}
		})
	}
}

func TestConfigSet_Validation(t *testing.T) {
	// Only failing inputs are exercised directly: a successful set writes
	// the real config file under the user's config home.
	tests := []struct {
		name        string
		key         string
		value       string
		errContains string
	}{
		{
			name:        "empty path list returns error",
			key:         "search.extra_paths",
			value:       "",
			errContains: "no paths specified",
		},
		{
			name:        "only commas returns error",
			key:         "search.extra_paths",
			value:       ",,,",
			errContains: "no paths specified",
		},
		{
			name:        "null byte in pin returns error",
			key:         "zed.path",
			value:       "/opt/\x00zed",
			errContains: "invalid path",
		},
		{
			name:        "dot pin returns error",
			key:         "zed.path",
			value:       ".",
			errContains: "invalid path",
		},
		{
			name:        "null byte in extra path returns error",
			key:         "search.extra_paths",
			value:       "/fine,/bad\x00dir",
			errContains: "invalid path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			var err error
			_ = captureStdout(t, func() {
				err = runConfigSet(nil, []string{tt.key, tt.value})
			})

			if err == nil {
				t.Fatal("runConfigSet() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("runConfigSet() error = %q, want error containing %q",
					err.Error(), tt.errContains)
			}
		})
	}
}

func TestConfigList(t *testing.T) {
	t.Run("outputs valid YAML", func(t *testing.T) {
		viper.Reset()
		viper.Set("version", 1)
		viper.Set("search.extra_paths", []string{"/opt/zed/bin"})
		viper.Set("zed.path", "/opt/zed/zed")

		var err error
		output := captureStdout(t, func() {
			err = runConfigList(nil, nil)
		})

		if err != nil {
			t.Fatalf("runConfigList() error = %v", err)
		}

		var parsed map[string]interface{}
		if err := yaml.Unmarshal([]byte(output), &parsed); err != nil {
			t.Errorf("runConfigList() output is not valid YAML: %v\nOutput: %s", err, output)
		}

		for _, key := range []string{"version", "search", "zed"} {
			if _, ok := parsed[key]; !ok {
				t.Errorf("runConfigList() output missing %q key", key)
			}
		}
	})

	t.Run("reflects current config values", func(t *testing.T) {
		viper.Reset()
		viper.Set("version", 42)
		viper.Set("zed.path", "/pinned/zed")

		var err error
		output := captureStdout(t, func() {
			err = runConfigList(nil, nil)
		})
		if err != nil {
			t.Fatalf("runConfigList() error = %v", err)
		}

		var parsed map[string]interface{}
		if err := yaml.Unmarshal([]byte(output), &parsed); err != nil {
			t.Fatalf("YAML parse error: %v", err)
		}

		if v, ok := parsed["version"].(int); !ok || v != 42 {
			t.Errorf("version = %v, want 42", parsed["version"])
		}

		zed, ok := parsed["zed"].(map[string]interface{})
		if !ok {
			t.Fatalf("zed section type = %T, want map", parsed["zed"])
		}
		if zed["path"] != "/pinned/zed" {
			t.Errorf("zed.path = %v, want /pinned/zed", zed["path"])
		}
	})

	t.Run("handles unset values", func(t *testing.T) {
		viper.Reset()

		var err error
		output := captureStdout(t, func() {
			err = runConfigList(nil, nil)
		})
		if err != nil {
			t.Fatalf("runConfigList() error = %v", err)
		}

		var parsed map[string]interface{}
		if err := yaml.Unmarshal([]byte(output), &parsed); err != nil {
			t.Errorf("runConfigList() output is not valid YAML: %v", err)
		}
	})
}

func TestCurrentConfigMap(t *testing.T) {
	// currentConfigMap feeds both `config list` and writeConfig, so its
	// shape is the on-disk contract.
	viper.Reset()
	viper.Set("version", 1)
	viper.Set("search.extra_paths", []string{"/opt/zed/bin", "/srv/tools/zed"})
	viper.Set("zed.path", "/opt/zed/zed")

	got := currentConfigMap()

	if got["version"] != 1 {
		t.Errorf("version = %v, want 1", got["version"])
	}

	search, ok := got["search"].(map[string]any)
	if !ok {
		t.Fatalf("search type = %T, want map", got["search"])
	}
	extras, ok := search["extra_paths"].([]string)
	if !ok {
		t.Fatalf("extra_paths type = %T, want []string", search["extra_paths"])
	}
	if len(extras) != 2 || extras[0] != "/opt/zed/bin" {
		t.Errorf("extra_paths = %v, want two configured paths", extras)
	}

	zed, ok := got["zed"].(map[string]any)
	if !ok {
		t.Fatalf("zed type = %T, want map", got["zed"])
	}
	if zed["path"] != "/opt/zed/zed" {
		t.Errorf("zed.path = %v, want /opt/zed/zed", zed["path"])
	}
}
