package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func mockCommand(params *renderParams) *cobra.Command {
	cmd := &cobra.Command{Use: "render"}
	addLayoutFlags(cmd, params)
	cmd.Flags().StringArrayVar(&params.expand, "expand", nil, "expand")
	cmd.Flags().StringVar(&params.sort, "sort", "", "sort")
	return cmd
}

func TestApplyConfig(t *testing.T) {
	type tc struct {
		env    map[string]string
		config string
		args   []string
		want   renderParams
	}

	tests := map[string]tc{
		"defaults": {
			want: renderParams{cellPx: defaultCellPx},
		},
		"env var": {
			env:  map[string]string{"TOYTABLE_CELL_PX": "10", "TOYTABLE_SORT": "age:desc"},
			want: renderParams{cellPx: 10, sort: "age:desc"},
		},
		"config file": {
			config: "width: 640\nexpand: [a, b]\n",
			want:   renderParams{cellPx: defaultCellPx, width: 640, expand: []string{"a", "b"}},
		},
		"command line wins": {
			env:  map[string]string{"TOYTABLE_WIDTH": "320"},
			args: []string{"--width", "900"},
			want: renderParams{cellPx: defaultCellPx, width: 900},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.config != "" {
				path = filepath.Join(t.TempDir(), "toytable.yaml")
				if err := os.WriteFile(path, []byte(tt.config), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			var got renderParams
			cmd := mockCommand(&got)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			if err := applyConfig(cmd, path); err != nil {
				t.Fatalf("applyConfig() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(renderParams{})); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyConfig_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("missing explicit file", func(t *testing.T) {
		var p renderParams
		err := applyConfig(mockCommand(&p), filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Error("applyConfig() error = nil, want error")
		}
	})

	t.Run("bad value", func(t *testing.T) {
		t.Setenv("TOYTABLE_CELL_PX", "wide")
		var p renderParams
		if err := applyConfig(mockCommand(&p), ""); err == nil {
			t.Error("applyConfig() error = nil, want error")
		}
	})
}
