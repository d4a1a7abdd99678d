// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const (
	triangleDoc = `simplices = [[0, 1, 2]]`
	rightDoc    = `points = [[0.0, 0.0], [3.0, 0.0], [0.0, 4.0]]`
)

// execute runs the root command with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, log.DebugLevel)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
	if !root.SilenceUsage {
		t.Error("expected SilenceUsage")
	}
	want := map[string]bool{"card": false, "boundary": false, "traverse": false, "rips": false, "render": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestCard(t *testing.T) {
	path := writeInput(t, `simplices = [[0, 1, 2, 3]]`)

	for _, backend := range []string{"set", "tree", "rank"} {
		t.Run(backend, func(t *testing.T) {
			out, err := execute(t, "card", path, "--backend", backend)
			if err != nil {
				t.Fatalf("card: %v", err)
			}
			for _, want := range []string{
				"3-d complex with (4, 6, 4, 1)-simplices of dimension (0, 1, 2, 3)",
				"(4, 6, 4, 1)",
				"15",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCard_RequiresFile(t *testing.T) {
	if _, err := execute(t, "card"); err == nil {
		t.Error("expected an argument error")
	}
}

func TestBoundary_Triangle(t *testing.T) {
	path := writeInput(t, triangleDoc)

	out, err := execute(t, "boundary", path, "-p", "1")
	if err != nil {
		t.Fatalf("boundary: %v", err)
	}
	for _, want := range []string{"3×3", "[1, 1, 0]", "[-1, 0, 1]", "[0, -1, -1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBoundary_Keys(t *testing.T) {
	path := writeInput(t, triangleDoc)

	for _, key := range []string{keyIndex, keyDim, keyMax} {
		t.Run(key, func(t *testing.T) {
			out, err := execute(t, "boundary", path, "-p", "2", "--key", key)
			if err != nil {
				t.Fatalf("boundary: %v", err)
			}
			if !strings.Contains(out, "3×1") {
				t.Errorf("output missing the 3×1 shape:\n%s", out)
			}
		})
	}

	if _, err := execute(t, "boundary", path, "--key", "weight"); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestBoundary_Laplacian(t *testing.T) {
	path := writeInput(t, triangleDoc)

	// L_1 = ∂_2·∂_2ᵀ; the single triangle column is (1, -1, 1)
	out, err := execute(t, "boundary", path, "-p", "1", "--laplacian")
	if err != nil {
		t.Fatalf("boundary: %v", err)
	}
	for _, want := range []string{"L_1 (3×3)", "[1, -1, 1]", "[-1, 1, -1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// nothing above the triangle: L_2 is card(2)×card(2) and zero
	out, err = execute(t, "boundary", path, "-p", "2", "--laplacian")
	if err != nil {
		t.Fatalf("boundary: %v", err)
	}
	if !strings.Contains(out, "L_2 (1×1)") || !strings.Contains(out, "[0]") {
		t.Errorf("expected a 1×1 zero L_2:\n%s", out)
	}
}

func TestBoundary_LaplacianUsage(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	cmd, _, err := root.Find([]string{"boundary"})
	if err != nil {
		t.Fatalf("find boundary: %v", err)
	}
	flag := cmd.Flags().Lookup("laplacian")
	if flag == nil {
		t.Fatal("missing --laplacian flag")
	}
	if !strings.Contains(flag.Usage, "∂_{p+1}·∂_{p+1}ᵀ") {
		t.Errorf("usage %q should name ∂_{p+1}", flag.Usage)
	}
}

func TestTraverse(t *testing.T) {
	path := writeInput(t, triangleDoc)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{}, "(0)\n(0,1)\n(0,1,2)\n(0,2)\n(1)\n(1,2)\n(2)\n"},
		{[]string{"--order", "maximal"}, "(0,1,2)\n"},
		{[]string{"--order", "cofaces", "--simplex", "1,2"}, "(0,1,2)\n(1,2)\n"},
		{[]string{"--order", "k_simplices", "-k", "1"}, "(0,1)\n(0,2)\n(1,2)\n"},
		{[]string{"--order", "link", "--simplex", "0"}, "(1)\n(1,2)\n(2)\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{"traverse", path}, tt.args...)...)
			if err != nil {
				t.Fatalf("traverse: %v", err)
			}
			if out != tt.want {
				t.Errorf("got\n%s\nwant\n%s", out, tt.want)
			}
		})
	}
}

func TestTraverse_Errors(t *testing.T) {
	path := writeInput(t, triangleDoc)

	if _, err := execute(t, "traverse", path, "--order", "zigzag"); err == nil {
		t.Error("expected an error for an unknown order")
	}
	if _, err := execute(t, "traverse", path, "--order", "faces"); err == nil {
		t.Error("expected an error when faces has no simplex")
	}
}

func TestTraverse_Expand(t *testing.T) {
	path := writeInput(t, `simplices = [[0, 1], [0, 2], [1, 2]]`)

	out, err := execute(t, "traverse", path, "--order", "maximal", "--expand", "2")
	if err != nil {
		t.Fatalf("traverse: %v", err)
	}
	if out != "(0,1,2)\n" {
		t.Errorf("got %q, want the filled triangle", out)
	}
}

func TestRips(t *testing.T) {
	path := writeInput(t, rightDoc)

	out, err := execute(t, "rips", path, "--radius", "3")
	if err != nil {
		t.Fatalf("rips: %v", err)
	}
	for _, want := range []string{"2-d filtered complex", "(0,1,2)", "7 simplices"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRips_EnclosingRadiusDefault(t *testing.T) {
	path := writeInput(t, rightDoc)

	out, err := execute(t, "rips", path, "--backend", "rank")
	if err != nil {
		t.Fatalf("rips: %v", err)
	}
	if !strings.Contains(out, "radius 2, 5 simplices") {
		t.Errorf("expected the enclosing radius to be used:\n%s", out)
	}
	if strings.Contains(out, "(0,1,2)") {
		t.Errorf("the 5-edge must stay out at radius 2:\n%s", out)
	}
}

func TestRips_Errors(t *testing.T) {
	if _, err := execute(t, "rips", writeInput(t, `points = [[0.0, 0.0]]`)); err == nil {
		t.Error("expected an error for a single point")
	}
	if _, err := execute(t, "rips", writeInput(t, rightDoc), "--backend", "tree"); err == nil {
		t.Error("expected an error for a non-filtration backend")
	}
}

func TestToDOT(t *testing.T) {
	in := &inputFile{Simplices: [][]int{{0, 1}, {1, 2}}}
	cx, err := complexFrom(in, "")
	if err != nil {
		t.Fatal(err)
	}

	dot := toDOT(cx)
	for _, want := range []string{"graph G {", `"0";`, `"2";`, `"0" -- "1";`, `"1" -- "2";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"0" -- "2"`) {
		t.Errorf("unexpected edge 0--2:\n%s", dot)
	}
}

func TestRender_DOTToFile(t *testing.T) {
	path := writeInput(t, triangleDoc)
	outPath := filepath.Join(t.TempDir(), "triangle.dot")

	out, err := execute(t, "render", path, "-o", outPath)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, outPath) {
		t.Errorf("output should name the written file:\n%s", out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"1" -- "2";`) {
		t.Errorf("file missing edge 1--2:\n%s", data)
	}
}

func TestRenderFormat(t *testing.T) {
	tests := []struct {
		opts    renderOpts
		want    string
		wantErr bool
	}{
		{opts: renderOpts{}, want: formatDOT},
		{opts: renderOpts{output: "out.SVG"}, want: formatSVG},
		{opts: renderOpts{output: "out.gv"}, want: formatDOT},
		{opts: renderOpts{output: "out.svg", format: "dot"}, want: formatDOT},
		{opts: renderOpts{format: "png"}, wantErr: true},
	}

	for _, tt := range tests {
		got, err := renderFormat(tt.opts)
		if tt.wantErr {
			if err == nil {
				t.Errorf("renderFormat(%+v): expected an error", tt.opts)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("renderFormat(%+v) = %q, %v; want %q", tt.opts, got, err, tt.want)
		}
	}
}
