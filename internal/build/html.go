// Package build turns a validated story into Twine 2 HTML: it renders the
// tw-storydata element, splices it into the story format's source, and
// writes the result out.
package build

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"tweec/internal/story"
	"tweec/internal/storyformat"
	"tweec/internal/version"
)

// UntitledStory is the display title for stories without a StoryTitle passage.
const UntitledStory = "Untitled Story"

// Every interpolated value is HTML-entity escaped, including the script and
// stylesheet blocks. The "text_twine-css" style type is intentional; Twine
// compilers have always emitted it.
var storyDataTmpl = template.Must(template.New("storydata").Parse(
	`<tw-storydata name="{{.Title | html}}" startnode="{{.StartNode}}" creator="{{.Creator}}" creator-version="{{.CreatorVersion}}" ifid="{{.Ifid | html}}" zoom="{{.Zoom}}" format="{{.Format | html}}" format-version="{{.FormatVersion | html}}" options="" hidden="">
<style id="twine-user-stylesheet" type="text_twine-css" role="stylesheet">{{.Stylesheets | html}}</style>
<script id="twine-user-script" type="text/twine-javascript" role="script">{{.Scripts | html}}</script>
{{- range .Passages}}
<tw-passagedata name="{{.Name | html}}" pid="{{.PID}}" tags="{{.Tags | html}}" position="{{.Position | html}}" size="{{.Size | html}}">{{.Content | html}}</tw-passagedata>
{{- end}}
</tw-storydata>`))

type passageData struct {
	Name     string
	PID      int
	Tags     string
	Position string
	Size     string
	Content  string
}

type storyData struct {
	Title          string
	StartNode      int
	Creator        string
	CreatorVersion string
	Ifid           string
	Zoom           string
	Format         string
	FormatVersion  string
	Stylesheets    string
	Scripts        string
	Passages       []passageData
}

// StartPassagePID returns the pid of the story's start passage.
func StartPassagePID(s *story.Story) (int, bool) {
	name, ok := s.StartPassageName()
	if !ok {
		return 0, false
	}
	p, ok := s.Passages[name]
	if !ok {
		return 0, false
	}
	return p.PID, true
}

// StoryTitle returns the display title, falling back for untitled stories.
func StoryTitle(s *story.Story) string {
	if s.Title == "" {
		return UntitledStory
	}
	return s.Title
}

// HTML renders the full output document: the format source with the
// {{STORY_NAME}} and {{STORY_DATA}} placeholders replaced.
func HTML(s *story.Story, format *storyformat.Format) (string, error) {
	if s.Data == nil {
		return "", fmt.Errorf("story has no StoryData passage")
	}
	startNode, ok := StartPassagePID(s)
	if !ok {
		return "", fmt.Errorf("story has no start passage")
	}

	zoom := s.Data.Zoom
	if zoom == 0 {
		zoom = 1
	}

	data := storyData{
		Title:          StoryTitle(s),
		StartNode:      startNode,
		Creator:        "tweec",
		CreatorVersion: version.Number,
		Ifid:           s.Data.Ifid,
		Zoom:           strconv.FormatFloat(zoom, 'g', -1, 64),
		Format:         format.Name,
		FormatVersion:  format.Version,
		Stylesheets:    strings.Join(s.Stylesheets, "\n"),
		Scripts:        strings.Join(s.Scripts, "\n"),
	}

	for _, name := range s.PassageNames() {
		p := s.Passages[name]
		data.Passages = append(data.Passages, passageData{
			Name:     p.Name,
			PID:      p.PID,
			Tags:     strings.Join(p.Tags, " "),
			Position: p.Metadata["position"],
			Size:     p.Metadata["size"],
			Content:  p.Content,
		})
	}

	var sb strings.Builder
	if err := storyDataTmpl.Execute(&sb, data); err != nil {
		return "", err
	}

	out := strings.ReplaceAll(format.Source, "{{STORY_NAME}}", StoryTitle(s))
	out = strings.ReplaceAll(out, "{{STORY_DATA}}", sb.String())
	return out, nil
}
