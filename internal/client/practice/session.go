// Package practice implements the client-side rehearsal state machine: a
// text's content split into words or paragraphs, plus a cursor stepped
// forward and backward over the active segmentation. It holds no
// persistent state; completion is reported by the caller over the API.
package practice

import (
	"regexp"
	"strings"
)

// Mode selects the active segmentation.
type Mode int

const (
	ModeWord Mode = iota
	ModeParagraph
)

func (m Mode) String() string {
	if m == ModeParagraph {
		return "paragraph"
	}
	return "word"
}

// paragraphSep matches blank-line boundaries: a newline, optional
// whitespace, and another newline.
var paragraphSep = regexp.MustCompile(`\n\s*\n`)

// SplitWords splits content on runs of whitespace.
func SplitWords(content string) []string {
	return strings.Fields(content)
}

// SplitParagraphs splits content on blank-line boundaries.
func SplitParagraphs(content string) []string {
	if content == "" {
		return nil
	}
	return paragraphSep.Split(content, -1)
}

// Session is the in-memory practice state for one text: both
// segmentations, the active mode and the cursor into it.
type Session struct {
	words      []string
	paragraphs []string
	mode       Mode
	cursor     int
}

// New builds a Session for the given content, starting in word mode at
// cursor 0.
func New(content string) *Session {
	return &Session{
		words:      SplitWords(content),
		paragraphs: SplitParagraphs(content),
	}
}

func (s *Session) Mode() Mode  { return s.mode }
func (s *Session) Cursor() int { return s.cursor }

func (s *Session) segments() []string {
	if s.mode == ModeParagraph {
		return s.paragraphs
	}
	return s.words
}

// Len returns the number of segments in the active mode.
func (s *Session) Len() int {
	return len(s.segments())
}

// Current returns the segment under the cursor, or "" for empty content.
func (s *Session) Current() string {
	seg := s.segments()
	if len(seg) == 0 {
		return ""
	}
	return seg[s.cursor]
}

// Next advances the cursor by one. At the last segment it is a no-op and
// returns false; there is no wraparound.
func (s *Session) Next() bool {
	if s.cursor >= s.Len()-1 {
		return false
	}
	s.cursor++
	return true
}

// Previous moves the cursor back by one. At index 0 it is a no-op and
// returns false.
func (s *Session) Previous() bool {
	if s.cursor <= 0 {
		return false
	}
	s.cursor--
	return true
}

// ToggleMode switches between word and paragraph segmentation. The cursor
// resets to 0: relative position is not preserved across modes.
func (s *Session) ToggleMode() {
	if s.mode == ModeWord {
		s.mode = ModeParagraph
	} else {
		s.mode = ModeWord
	}
	s.cursor = 0
}
