package maligui

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "steps: []\n", "no steps"},
		{"unknown action", "steps:\n  - action: drag\n", `unknown action "drag"`},
		{"malformed", "steps: [\n", "parse script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadScriptJSON(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps":[{"action":"click","x":1,"y":2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.steps) != 1 || sc.steps[0].X != 1 || sc.steps[0].Y != 2 {
		t.Errorf("steps = %+v", sc.steps)
	}
}

const demoScript = `
steps:
  - action: click
    x: 5
    y: 5
  - action: wait
    frames: 3
  - action: screenshot
    label: top
  - action: pop
  - action: click
    x: 5
    y: 5
`

func TestScriptRun(t *testing.T) {
	d := NewMemoryDevice(20, 20)
	s := NewStacker(d)
	s.ScreenshotDir = t.TempDir()

	var log clickLog
	first := newScreen("first", ColorYellow)
	second := newScreen("second", ColorWhite)
	first.SetOnClick(log.handler("first", true))
	second.SetOnClick(log.handler("second", true))
	s.Push(first)
	s.Push(second)

	sc, err := LoadScript([]byte(demoScript))
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Run(s); err != nil {
		t.Fatal(err)
	}
	if !sc.Done() {
		t.Error("script should be done")
	}
	if !log.equal("second", "first") {
		t.Errorf("click log = %v, want [second first]", log)
	}
	if len(sc.Shots) != 1 || !strings.HasSuffix(sc.Shots[0], "_top.png") {
		t.Errorf("Shots = %v, want one *_top.png", sc.Shots)
	}
	if s.Len() != 1 {
		t.Errorf("stack len = %d, want 1 after pop", s.Len())
	}
}

func TestScriptWaitFrames(t *testing.T) {
	s := NewStacker(NewMemoryDevice(4, 4))
	sc, err := LoadScript([]byte("steps:\n  - action: wait\n    frames: 3\n  - action: pop\n"))
	if err != nil {
		t.Fatal(err)
	}
	steps := 0
	for !sc.Done() {
		if err := sc.Step(s); err != nil {
			t.Fatal(err)
		}
		steps++
		if steps > 10 {
			t.Fatal("script did not finish")
		}
	}
	// wait consumes 3 frames, pop 1.
	if steps != 4 {
		t.Errorf("frames = %d, want 4", steps)
	}
}

func TestScriptScreenshotFailureStops(t *testing.T) {
	s := NewStacker(&blindDevice{DeviceBase: NewDeviceBase(4, 4)})
	sc, err := LoadScript([]byte("steps:\n  - action: screenshot\n  - action: pop\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Run(s); err == nil {
		t.Error("Run should return the screenshot error")
	}
	if !sc.Done() {
		t.Error("script should stop after a failed step")
	}
}
