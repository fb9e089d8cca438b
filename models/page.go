package models

import "time"

// MaxPageContent is the character cap applied to a captured page's content.
const MaxPageContent = 5000

// TrainingPage is one captured page snapshot. Pages are immutable once
// captured and accumulate in the corpus in insertion order; duplicate
// URLs are allowed.
type TrainingPage struct {
	URL        string    `json:"url" yaml:"url"`
	Title      string    `json:"title" yaml:"title"`
	Content    string    `json:"content" yaml:"content"`
	Lang       string    `json:"lang,omitempty" yaml:"lang,omitempty"`
	CapturedAt time.Time `json:"captured_at" yaml:"captured_at"`
}

// ClampContent truncates s to MaxPageContent characters.
func ClampContent(s string) string {
	return Truncate(s, MaxPageContent)
}

// Truncate cuts s to at most n characters (runes, not bytes, so a cut
// never splits a UTF-8 sequence).
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
