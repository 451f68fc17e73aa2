// Package script runs the tengo scripts that produce NPC dialogue.
//
// A dialogue script reads the globals character, origin and talks and
// leaves its output in a global array named lines.
package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// SourceFunc loads a script's source by name
type SourceFunc func(name string) ([]byte, error)

// Input is the session context a dialogue script can branch on
type Input struct {
	Character string
	Origin    string
	Talks     int // Times the player already talked to this NPC in the scene
}

// Dialogue compiles scripts on first use and keeps them for reruns
type Dialogue struct {
	source   SourceFunc
	compiled map[string]*tengo.Compiled
}

// NewDialogue creates a dialogue runtime reading sources through source
func NewDialogue(source SourceFunc) *Dialogue {
	return &Dialogue{
		source:   source,
		compiled: make(map[string]*tengo.Compiled),
	}
}

// Lines runs the named script and returns the lines it produced
func (d *Dialogue) Lines(name string, in Input) ([]string, error) {
	compiled, err := d.get(name)
	if err != nil {
		return nil, err
	}

	if err := compiled.Set("character", in.Character); err != nil {
		return nil, err
	}
	if err := compiled.Set("origin", in.Origin); err != nil {
		return nil, err
	}
	if err := compiled.Set("talks", in.Talks); err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}

	if !compiled.IsDefined("lines") {
		return nil, fmt.Errorf("script %s: no lines defined", name)
	}
	var lines []string
	for _, v := range compiled.Get("lines").Array() {
		s := strings.TrimSpace(fmt.Sprint(v))
		if s != "" {
			lines = append(lines, s)
		}
	}
	return lines, nil
}

// Forget drops a compiled script so the next call reloads its source
func (d *Dialogue) Forget(name string) {
	delete(d.compiled, name)
}

func (d *Dialogue) get(name string) (*tengo.Compiled, error) {
	if c, ok := d.compiled[name]; ok {
		return c, nil
	}

	src, err := d.source(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", name, err)
	}

	s := tengo.NewScript(src)
	_ = s.Add("character", "")
	_ = s.Add("origin", "")
	_ = s.Add("talks", 0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile script %s: %w", name, err)
	}
	d.compiled[name] = compiled
	return compiled, nil
}
