// Package sim replays scripted host events against a strategy bound to an
// in-memory surface and records the state after every event.
package sim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/surface"
)

// Script is a named sequence of events run against one scrollable region.
type Script struct {
	Name     string             `yaml:"name"`
	Layout   *gridscroll.Layout `yaml:"layout,omitempty"`
	Viewport float64            `yaml:"viewport"`
	Items    int                `yaml:"items"`
	Events   []Event            `yaml:"events"`
}

// Event is one host action. Exactly one field is set.
type Event struct {
	Scroll        *float64           `yaml:"scroll,omitempty"`
	ScrollBy      *float64           `yaml:"scroll_by,omitempty"`
	Items         *int               `yaml:"items,omitempty"`
	Resize        *float64           `yaml:"resize,omitempty"`
	Header        *float64           `yaml:"header,omitempty"`
	Footer        *float64           `yaml:"footer,omitempty"`
	Columns       *int               `yaml:"columns,omitempty"`
	Config        *gridscroll.Layout `yaml:"config,omitempty"`
	ScrollToIndex *IndexJump         `yaml:"scroll_to_index,omitempty"`
	Step          *StepSpec          `yaml:"step,omitempty"`
	Command       string             `yaml:"command,omitempty"`
}

// IndexJump asks the strategy to scroll to an item.
type IndexJump struct {
	Index    int    `yaml:"index"`
	Behavior string `yaml:"behavior"`
}

// StepSpec advances smooth scrolling for Seconds in DT increments.
// A zero Seconds steps until the animation settles.
type StepSpec struct {
	Seconds float64 `yaml:"seconds"`
	DT      float64 `yaml:"dt"`
}

const defaultStepDT = 1.0 / 60

// ErrEmptyEvent is returned for an event with no action set.
var ErrEmptyEvent = errors.New("event has no action")

// Kind names the action of e, or "" when none is set.
func (e Event) Kind() string {
	kinds := e.kinds()
	if len(kinds) == 0 {
		return ""
	}
	return kinds[0]
}

func (e Event) kinds() []string {
	var k []string
	if e.Scroll != nil {
		k = append(k, "scroll")
	}
	if e.ScrollBy != nil {
		k = append(k, "scroll_by")
	}
	if e.Items != nil {
		k = append(k, "items")
	}
	if e.Resize != nil {
		k = append(k, "resize")
	}
	if e.Header != nil {
		k = append(k, "header")
	}
	if e.Footer != nil {
		k = append(k, "footer")
	}
	if e.Columns != nil {
		k = append(k, "columns")
	}
	if e.Config != nil {
		k = append(k, "config")
	}
	if e.ScrollToIndex != nil {
		k = append(k, "scroll_to_index")
	}
	if e.Step != nil {
		k = append(k, "step")
	}
	if e.Command != "" {
		k = append(k, "command")
	}
	return k
}

// Validate checks that every event sets exactly one action and that
// commands and behaviors are known.
func (s *Script) Validate() error {
	if s.Viewport < 0 {
		return fmt.Errorf("script %q: viewport must not be negative", s.Name)
	}
	if s.Items < 0 {
		return fmt.Errorf("script %q: items must not be negative", s.Name)
	}
	for i, e := range s.Events {
		switch kinds := e.kinds(); len(kinds) {
		case 0:
			return fmt.Errorf("script %q: event %d: %w", s.Name, i, ErrEmptyEvent)
		case 1:
		default:
			return fmt.Errorf("script %q: event %d sets several actions %v", s.Name, i, kinds)
		}
		if e.Command != "" {
			if _, err := surface.ParseCommand(e.Command); err != nil {
				return fmt.Errorf("script %q: event %d: %w", s.Name, i, err)
			}
		}
		if j := e.ScrollToIndex; j != nil && j.Behavior != "" &&
			j.Behavior != gridscroll.ScrollInstant.String() && j.Behavior != gridscroll.ScrollSmooth.String() {
			return fmt.Errorf("script %q: event %d: unknown behavior %q", s.Name, i, j.Behavior)
		}
	}
	return nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads a script file. An unnamed script is named after path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
