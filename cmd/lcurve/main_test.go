package main

import (
	"bytes"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"honnef.co/go/lcurve/render"
)

const jobStream = `
curve: koch
iterations: 2
output: koch.svg
---
curve: dragon
iterations: 6
gradient: [rainbow]
output: dragon.png
width: 64
height: 64
---
grammar:
  name: square
  axiom: F+F+F+F
  angle: 90
  shrink: 3
  rules:
    - F=FF+F+F+F+FF
iterations: 1
condense: false
output: square.svg
`

func decodeAll(t *testing.T, s string) []*Job {
	t.Helper()
	dec := NewDecoder(strings.NewReader(s))
	var jobs []*Job
	for {
		job, err := dec.Decode()
		if err == io.EOF {
			return jobs
		}
		if err != nil {
			t.Fatal(err)
		}
		jobs = append(jobs, job)
	}
}

func TestDecode(t *testing.T) {
	jobs := decodeAll(t, jobStream)
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs, want 3", len(jobs))
	}
	if d := cmp.Diff(&Job{Curve: "koch", Iterations: 2, Output: "koch.svg"}, jobs[0]); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]string{"rainbow"}, jobs[1].Gradient); d != "" {
		t.Error(d)
	}
	g := jobs[2].Grammar
	if g == nil || g.Axiom != "F+F+F+F" || g.Angle != 90 || len(g.Rules) != 1 {
		t.Errorf("got grammar %+v", g)
	}
	if c := jobs[2].Condense; c == nil || *c {
		t.Errorf("condense was not disabled")
	}
}

func TestDecodeUnknownField(t *testing.T) {
	dec := NewDecoder(strings.NewReader("curve: koch\niteratons: 3\n"))
	if _, err := dec.Decode(); err == nil {
		t.Error("expected an error for a misspelt field")
	}
}

func TestJobPolyline(t *testing.T) {
	job := &Job{Curve: "koch", Iterations: 1}
	pts, err := job.Polyline(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := pts.Length(); math.Abs(got-400) > 1e-9 {
		t.Errorf("got length %g, want 400", got)
	}

	if _, err := (&Job{Curve: "spiral"}).Polyline(0); err == nil {
		t.Error("expected an error for an unknown curve")
	}
}

func TestJobGrammar(t *testing.T) {
	no := false
	job := &Job{
		Grammar: &Grammar{
			Axiom:  "F--F--F",
			Angle:  60,
			Shrink: 3,
			Rules:  []string{"F=F+F--F+F"},
		},
		Iterations: 2,
		Size:       90,
		Condense:   &no,
	}
	pts, err := job.Polyline(0)
	if err != nil {
		t.Fatal(err)
	}
	want, err := (&Job{Curve: "koch", Iterations: 2, Size: 90, Condense: &no}).Polyline(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range pts {
		if pts[i].Distance(want[i]) > 1e-9 {
			t.Fatalf("point %d: got %v, want %v", i, pts[i], want[i])
		}
	}

	bad := []*Grammar{
		{Angle: 90, Rules: []string{"F=FF"}},
		{Axiom: "F", Rules: []string{"F"}},
		{Axiom: "F", Rules: []string{"+=F"}},
	}
	for _, g := range bad {
		if _, err := (&Job{Grammar: g}).Polyline(0); err == nil {
			t.Errorf("grammar %+v: expected an error", g)
		}
	}
}

func TestJobTooLarge(t *testing.T) {
	job := &Job{Curve: "dragon", Iterations: 20}
	_, err := job.Polyline(1000)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v, want ErrTooLarge", err)
	}
	if _, err := (&Job{Curve: "dragon", Iterations: 5}).Polyline(1000); err != nil {
		t.Errorf("small job was refused: %v", err)
	}
}

func TestJobFormat(t *testing.T) {
	tests := []struct {
		job  Job
		want string
	}{
		{Job{}, "svg"},
		{Job{Output: "-"}, "svg"},
		{Job{Output: "out.PNG"}, "png"},
		{Job{Output: "out.svg"}, "svg"},
		{Job{Output: "out.svg", Format: "png"}, "png"},
	}
	for _, tt := range tests {
		got, err := tt.job.format()
		if err != nil {
			t.Errorf("%+v: %s", tt.job, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%+v: got %q, want %q", tt.job, got, tt.want)
		}
	}
	if _, err := (&Job{Output: "out.gif"}).format(); err == nil {
		t.Error("expected an error for gif output")
	}
}

func TestJobStyle(t *testing.T) {
	st, err := (&Job{Background: "none", Gradient: []string{"#ff0000", "#00ff00"}, Width: 64}).style()
	if err != nil {
		t.Fatal(err)
	}
	if st.Background != nil {
		t.Errorf("got background %v, want none", st.Background)
	}
	if st.Width != 64 || st.Height != 512 {
		t.Errorf("got size %d×%d, want 64×512", st.Width, st.Height)
	}
	if len(st.Gradient) != 2 {
		t.Errorf("got %d gradient stops, want 2", len(st.Gradient))
	}

	for _, job := range []*Job{
		{Stroke: "black"},
		{Stroke: "none"},
		{Background: "#12"},
		{Gradient: []string{"rainbow", "#ffffff"}},
	} {
		if _, err := job.style(); err == nil {
			t.Errorf("%+v: expected an error", job)
		}
	}
}

func TestRunJobs(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var stdout bytes.Buffer
	if err := runJobs(strings.NewReader(jobStream), &stdout, 0); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected output on stdout: %q", stdout.String())
	}

	for _, name := range []string{"koch.svg", "square.svg"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(b, []byte("<svg")) {
			t.Errorf("%s is not an SVG document", name)
		}
	}
	f, err := os.Open(filepath.Join(dir, "dragon.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("got %v, want 64×64", b)
	}
}

func TestRunJobsStdout(t *testing.T) {
	var stdout bytes.Buffer
	if err := runJobs(strings.NewReader("curve: terdragon\niterations: 3\n"), &stdout, 0); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout.String(), "<svg") {
		t.Errorf("got %q, want an SVG document", stdout.String())
	}
}

func TestRunJobsError(t *testing.T) {
	stream := "curve: koch\n---\ncurve: nonesuch\n"
	var stdout bytes.Buffer
	err := runJobs(strings.NewReader(stream), &stdout, 0)
	if err == nil || !strings.Contains(err.Error(), "job 1") {
		t.Errorf("got %v, want an error for job 1", err)
	}
}

func TestListFamilies(t *testing.T) {
	var buf bytes.Buffer
	listFamilies(&buf)
	out := buf.String()
	for _, want := range []string{"NAME", "koch", "F--F--F", "60°", "sierpinski"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing lacks %q:\n%s", want, out)
		}
	}
}

func TestRunJobsNaNSize(t *testing.T) {
	var stdout bytes.Buffer
	err := runJobs(strings.NewReader("curve: koch\nsize: .nan\n"), &stdout, 0)
	if !errors.Is(err, render.ErrNotFinite) {
		t.Errorf("got %v, want ErrNotFinite", err)
	}
}
