package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tagcore/internal/buildpipeline"
)

func TestTableRender(t *testing.T) {
	tbl := Table{
		Headers: []string{"type", "size", "align_x86_32"},
		Rows: [][]string{
			{"u8", "1", "1"},
			{"i128", "16", "16"},
		},
	}
	want := "Type  Size  Align X86 32\n" +
		"u8    1     1\n" +
		"i128  16    16\n"
	if got := tbl.Render(); got != want {
		t.Fatalf("Render:\n%q\nwant\n%q", got, want)
	}
}

func TestTableRaggedRowsAndTruncation(t *testing.T) {
	tbl := Table{
		Rows:     [][]string{{"roc_builtins.num.int_to_u8_checking_max.u16"}, {"a", "b"}},
		MaxWidth: 12,
	}
	lines := strings.Split(strings.TrimSuffix(tbl.Render(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[0] != "roc_built..." {
		t.Fatalf("truncated cell = %q", lines[0])
	}
	if lines[1] != "a"+strings.Repeat(" ", 13)+"b" {
		t.Fatalf("second row = %q", lines[1])
	}
}

func TestTruncateWideRunes(t *testing.T) {
	if got := Truncate("模块模块模块", 7); got != "模块..." {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate = %q", got)
	}
}

func TestProgressModelTracksModules(t *testing.T) {
	events := make(chan buildpipeline.Event)
	m := NewProgressModel("synthesizing builtins", []string{"Main", "Util"}, events).(*progressModel)

	m.Update(eventMsg{Module: "Main", Stage: buildpipeline.StageMerge, Status: buildpipeline.StatusWorking})
	if m.modules[0].status != "merging" {
		t.Fatalf("status = %q", m.modules[0].status)
	}
	if f := m.fraction(); f != 0.25 {
		t.Fatalf("fraction = %v", f)
	}
	m.Update(eventMsg{Module: "Main", Stage: buildpipeline.StageVerify, Status: buildpipeline.StatusDone, Elapsed: 3 * time.Millisecond})
	m.Update(eventMsg{Module: "Ghost", Status: buildpipeline.StatusDone})
	if f := m.fraction(); f != 0.5 {
		t.Fatalf("fraction = %v", f)
	}
	m.Update(eventMsg{Status: buildpipeline.StatusError, Err: errors.New("module Util: boom")})
	m.Update(doneMsg{})

	view := m.View()
	for _, want := range []string{"failed: synthesizing builtins", "Main", "Util", "3ms", "boom"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestStatusLabelsNameStageWork(t *testing.T) {
	tests := []struct {
		stage buildpipeline.Stage
		want  string
	}{
		{buildpipeline.StageLoad, "loading"},
		{buildpipeline.StageMerge, "merging"},
		{buildpipeline.StageVerify, "verifying"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.stage, buildpipeline.StatusWorking); got != tt.want {
			t.Fatalf("statusLabel(%s) = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
