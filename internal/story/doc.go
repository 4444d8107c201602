// Package story defines the contract between tweec and its Twee parsing
// front-end. tweec does not parse markup itself: a Frontend hands back a
// parsed Story (or an ErrorList) plus the non-fatal warnings it collected,
// and the rest of the pipeline only ever reads these types and the CodeMap
// capability interface.
package story
