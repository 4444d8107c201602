package story

import "sort"

// StoryData mirrors the special StoryData passage of a Twee v3 story.
type StoryData struct {
	Ifid          string
	Format        string
	FormatVersion string
	Start         string
	// Zoom of 0 means unset; rendering treats it as 1.0.
	Zoom float64
}

// Passage is a single parsed passage.
type Passage struct {
	Name     string
	Tags     []string
	Metadata map[string]string
	PID      int
	Content  string
	Context  *Context
}

// Story is the successfully parsed compilation unit.
type Story struct {
	Title       string
	Passages    map[string]*Passage
	Scripts     []string
	Stylesheets []string
	Data        *StoryData
	CodeMap     CodeMap
}

// PassageNames returns every passage name in sorted order.
func (s *Story) PassageNames() []string {
	names := make([]string, 0, len(s.Passages))
	for name := range s.Passages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartPassageName returns the name of the start passage: the StoryData
// start field when set, otherwise the conventional "Start" passage.
func (s *Story) StartPassageName() (string, bool) {
	if s.Data != nil && s.Data.Start != "" {
		return s.Data.Start, true
	}
	if _, ok := s.Passages["Start"]; ok {
		return "Start", true
	}
	return "", false
}

// Result is the outcome of a parse: exactly one of Story or Errors is set.
type Result struct {
	Story  *Story
	Errors *ErrorList
}

// Ok reports whether the parse succeeded.
func (r Result) Ok() bool {
	return r.Errors == nil
}

// Output bundles a parse result with the warnings gathered along the way.
// Warnings are produced whether or not the parse succeeded.
type Output struct {
	Result   Result
	Warnings []Warning
}
