package main

import "tweec/internal/story"

// frontend is the Twee parser wired into this binary. Parser packages
// register themselves from an init function; a build without one refuses
// to compile stories rather than silently producing empty output.
var frontend story.Frontend

// RegisterFrontend installs the story front-end used by the CLI.
func RegisterFrontend(f story.Frontend) {
	frontend = f
}
