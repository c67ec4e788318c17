package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLevelScopes(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeModule, false},
		{LevelDetail, ScopeModule, true},
		{LevelDetail, ScopeDef, false},
		{LevelDebug, ScopeDef, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Fatalf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil || l.String() != s {
			t.Fatalf("ParseLevel(%q) = %v, %v", s, l, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	root := Begin(tr, ScopePass, "synthesize", 0)
	mod := Begin(tr, ScopeModule, "module:Main", root.ID())
	def := Begin(tr, ScopeDef, "def:List.get", mod.ID())
	def.End("")
	mod.WithExtra("vars", "104").WithExtra("defs", "4").End("ok")
	root.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (def scope filtered), got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "module → module:Main") {
		t.Fatalf("unexpected begin line %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "← module:Main (ok) {defs=4, vars=104}") {
		t.Fatalf("unexpected end line %q", lines[2])
	}
	if def.ID() != mod.ID() {
		t.Fatalf("inert span should report its parent id")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Begin(tr, ScopeDriver, "defs", 0).End("done")

	dec := json.NewDecoder(&buf)
	var kinds []string
	for dec.More() {
		var ev map[string]any
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		kinds = append(kinds, ev["kind"].(string))
		if ev["name"] != "defs" || ev["scope"] != "driver" {
			t.Fatalf("unexpected event %v", ev)
		}
	}
	if strings.Join(kinds, ",") != "begin,end" {
		t.Fatalf("kinds = %v", kinds)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for i := 0; i < 5; i++ {
		Point(r, ScopeDef, "p", string(rune('a'+i)), 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d", len(snap))
	}
	var got []string
	for _, ev := range snap {
		got = append(got, ev.Detail)
	}
	if strings.Join(got, "") != "cde" {
		t.Fatalf("snapshot order = %v", got)
	}
	if snap[0].Seq != 3 || snap[2].Seq != 5 {
		t.Fatalf("sequence numbers = %d..%d", snap[0].Seq, snap[2].Seq)
	}
}

func TestRingTracerAtErrorLevelRecordsEverything(t *testing.T) {
	r := NewRingTracer(8, LevelError)
	r.Emit(&Event{Kind: KindPoint, Scope: ScopeDef, Name: "x"})
	if len(r.Snapshot()) != 1 {
		t.Fatalf("error-level ring should keep events for dumps")
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil || !strings.Contains(buf.String(), "• x") {
		t.Fatalf("Dump = %q, %v", buf.String(), err)
	}
}

func TestNewModes(t *testing.T) {
	tr, ring, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop || ring != nil {
		t.Fatalf("off: %v %v %v", tr, ring, err)
	}
	var buf bytes.Buffer
	tr, ring, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil || ring == nil {
		t.Fatalf("both: %v %v", ring, err)
	}
	Begin(tr, ScopePass, "verify", 0).End("")
	if len(ring.Snapshot()) != 2 || buf.Len() == 0 {
		t.Fatalf("both mode did not reach both tracers")
	}
	if _, _, err := New(Config{Level: LevelPhase, Mode: 42}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestContextPropagation(t *testing.T) {
	r := NewRingTracer(16, LevelDetail)
	ctx := WithTracer(context.Background(), r)
	ctx, pass := BeginContext(ctx, ScopePass, "synthesize")
	_, mod := BeginContext(ctx, ScopeModule, "module:Main")
	mod.End("")
	pass.End("")

	snap := r.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("events = %d", len(snap))
	}
	if snap[1].ParentID != pass.ID() {
		t.Fatalf("module parent = %d, want %d", snap[1].ParentID, pass.ID())
	}
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context should yield Nop")
	}
}

func TestHeartbeatStops(t *testing.T) {
	r := NewRingTracer(64, LevelPhase)
	stop := StartHeartbeat(context.Background(), r, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(r.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	stop()
	n := len(r.Snapshot())
	if n == 0 {
		t.Fatalf("no heartbeat recorded")
	}
	time.Sleep(5 * time.Millisecond)
	if len(r.Snapshot()) != n {
		t.Fatalf("heartbeat kept running after stop")
	}
}

func TestHeartbeatNeedsIntervalAndTracer(t *testing.T) {
	r := NewRingTracer(64, LevelPhase)
	StartHeartbeat(context.Background(), r, 0)()
	StartHeartbeat(context.Background(), Nop, time.Millisecond)()
	time.Sleep(5 * time.Millisecond)
	if n := len(r.Snapshot()); n != 0 {
		t.Fatalf("recorded %d heartbeats without an interval", n)
	}
}
