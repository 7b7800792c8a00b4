package maligui

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Frame length used by Script.Run when no host loop drives the stacker.
const scriptFrameDT = float32(1.0 / 60)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `yaml:"action"`
	Label  string `yaml:"label,omitempty"`
	X      int    `yaml:"x,omitempty"`
	Y      int    `yaml:"y,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

// scriptFile is the top-level YAML structure of an input script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script sequences injected clicks, waits, pops and screenshots across frames
// for automated visual testing. Drive it with Step once per frame from a host
// loop, or with Run when there is none.
//
//	steps:
//	  - action: click
//	    x: 40
//	    y: 100
//	  - action: wait
//	    frames: 10
//	  - action: screenshot
//	    label: after-click
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// Shots lists the files written by screenshot steps.
	Shots []string
}

// LoadScript parses a YAML (or JSON) input script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("maligui: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("maligui: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "wait", "screenshot", "pop":
		default:
			return nil, fmt.Errorf("maligui: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Step advances the script by one frame. A screenshot failure is returned
// and ends the script.
func (r *Script) Step(s *Stacker) error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++
	Logger().Debug("script step", "index", r.cursor-1, "action", st.Action)

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "pop":
		s.Pop()
	case "screenshot":
		path, err := s.Screenshot(st.Label)
		if err != nil {
			r.done = true
			return err
		}
		r.Shots = append(r.Shots, path)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return nil
}

// Run executes the whole script against s, advancing animations by one
// 60 Hz frame after every step.
func (r *Script) Run(s *Stacker) error {
	for !r.done {
		if err := r.Step(s); err != nil {
			return err
		}
		s.Update(scriptFrameDT)
	}
	return nil
}
