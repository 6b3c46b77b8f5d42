// Package events declares the typed events the site publishes on the bus.
package events

import "github.com/nfrund/portfolio/internal/pubsub"

// PageViewed is published each time the page is rendered for a visitor.
type PageViewed struct {
	ViewID    string `json:"viewID"`
	Theme     string `json:"theme"`
	Timestamp string `json:"timestamp"`
}

// ThemeToggled is published after the theme flag flips.
type ThemeToggled struct {
	Mode      string `json:"mode"`
	Timestamp string `json:"timestamp"`
}

// SectionRevealed is published the first time a section enters the viewport
// within a page view.
type SectionRevealed struct {
	ViewID    string `json:"viewID"`
	Section   string `json:"section"`
	Timestamp string `json:"timestamp"`
}

// ContentReloaded is published after the content file was reloaded from disk.
type ContentReloaded struct {
	Path      string `json:"path"`
	Projects  int    `json:"projects"`
	Skills    int    `json:"skills"`
	Timestamp string `json:"timestamp"`
}

var (
	PageView      = pubsub.NewEvent[PageViewed]("page.viewed", "The portfolio page was rendered")
	ThemeToggle   = pubsub.NewEvent[ThemeToggled]("theme.toggled", "A visitor flipped the light/dark theme")
	SectionReveal = pubsub.NewEvent[SectionRevealed]("section.revealed", "A section played its entrance animation")
	ContentReload = pubsub.NewEvent[ContentReloaded]("content.reloaded", "The content file changed and was reloaded")
)
