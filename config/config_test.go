package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/seqkit/config"
	"github.com/tailored-agentic-units/seqkit/seqpath"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Recent.Max != 10 {
		t.Errorf("got Recent.Max %d, want 10", cfg.Recent.Max)
	}
	if cfg.Watch.DebounceMS != 100 {
		t.Errorf("got Watch.DebounceMS %d, want 100", cfg.Watch.DebounceMS)
	}
	if cfg.Settings.Path != "" {
		t.Errorf("got Settings.Path %q, want empty", cfg.Settings.Path)
	}
	if cfg.Observer != "slog" {
		t.Errorf("got Observer %q, want slog", cfg.Observer)
	}
	if diff := cmp.Diff(seqpath.DefaultOptions(), cfg.PathOptions()); diff != "" {
		t.Errorf("PathOptions mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	want := config.DefaultConfig()

	cfg.Merge(&config.Config{})

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Merge of zero config changed defaults (-want +got):\n%s", diff)
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "seqkit.json",
			content: `{
				"path": {"seq_negative": false, "seq_max_digits": 6},
				"settings": {"path": "/tmp/seqkit"},
				"recent": {"max": 4},
				"watch": {"debounce_ms": 250},
				"browser": {"dir_list": {"sort": "Time", "seq": true}, "extensions": [".exr"]},
				"observer": "noop"
			}`,
		},
		{
			name: "yaml",
			file: "seqkit.yaml",
			content: `
path:
  seq_negative: false
  seq_max_digits: 6
settings:
  path: /tmp/seqkit
recent:
  max: 4
watch:
  debounce_ms: 250
browser:
  dir_list:
    sort: Time
    seq: true
  extensions: [".exr"]
observer: noop
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadConfig(writeConfig(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			if got := cfg.PathOptions(); got != (seqpath.Options{SeqMaxDigits: 6}) {
				t.Errorf("PathOptions = %+v", got)
			}
			if cfg.Settings.Path != "/tmp/seqkit" {
				t.Errorf("got Settings.Path %q, want /tmp/seqkit", cfg.Settings.Path)
			}
			if cfg.Recent.Max != 4 {
				t.Errorf("got Recent.Max %d, want 4", cfg.Recent.Max)
			}
			if cfg.Watch.DebounceMS != 250 {
				t.Errorf("got Watch.DebounceMS %d, want 250", cfg.Watch.DebounceMS)
			}
			if cfg.Browser.DirList == nil || cfg.Browser.DirList.Sort != seqpath.SortTime || !cfg.Browser.DirList.Seq {
				t.Errorf("got Browser.DirList %+v", cfg.Browser.DirList)
			}
			if diff := cmp.Diff([]string{".exr"}, cfg.Browser.Extensions); diff != "" {
				t.Errorf("Browser.Extensions mismatch (-want +got):\n%s", diff)
			}
			if cfg.Observer != "noop" {
				t.Errorf("got Observer %q, want noop", cfg.Observer)
			}
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file: want error")
	}

	if _, err := config.LoadConfig(writeConfig(t, "seqkit.toml", "")); !errors.Is(err, config.ErrUnsupportedFormat) {
		t.Errorf("toml: err = %v, want %v", err, config.ErrUnsupportedFormat)
	}

	if _, err := config.LoadConfig(writeConfig(t, "bad.json", "{")); err == nil {
		t.Error("malformed json: want error")
	}

	if _, err := config.LoadConfig(writeConfig(t, "bad.yml", "browser:\n  dir_list:\n    sort: Color\n")); !errors.Is(err, seqpath.ErrUnknownSort) {
		t.Errorf("unknown sort: err = %v, want %v", err, seqpath.ErrUnknownSort)
	}
}
