// Package extractor turns a page's selectable controls into logical
// questions. It is a pure function over a goquery document, so it can be
// exercised against synthetic HTML in tests just as well as against a
// fetched page.
package extractor

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"trainingcopilot/models"
)

// controlSelector matches every selectable control of interest.
const controlSelector = "input[type='radio'], input[type='checkbox']"

// containerSelector lists the accepted enclosing containers a question's
// text is read from, nearest first.
const containerSelector = "div, li, tr, p"

// HasControls reports whether the document contains any selectable
// controls at all. The pipeline uses this to distinguish "nothing to do"
// from "controls present but nothing groupable".
func HasControls(doc *goquery.Document) bool {
	return doc.Find(controlSelector).Length() > 0
}

// Extract scans the document for selectable controls and groups them into
// questions. Controls sharing a name attribute form one question; a
// control without a name gets a synthetic key and becomes a singleton
// question. Grouping is a heuristic over arbitrary markup, not a
// guarantee of correctness. An empty page yields an empty slice.
func Extract(doc *goquery.Document) []models.Question {
	var order []string
	groups := make(map[string][]*goquery.Selection)

	doc.Find(controlSelector).Each(func(i int, s *goquery.Selection) {
		key, ok := s.Attr("name")
		if !ok || key == "" {
			key = fmt.Sprintf("__unnamed-%d", i)
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	})

	questions := make([]models.Question, 0, len(order))
	for i, key := range order {
		controls := groups[key]
		options := make([]models.Option, len(controls))
		for j, c := range controls {
			options[j] = &pageOption{sel: c}
		}

		text := questionText(controls[0])
		if text == "" {
			text = fmt.Sprintf("Question %d", i+1)
		}

		questions = append(questions, models.Question{
			ID:      i,
			Text:    models.Truncate(text, models.MaxQuestionText),
			Options: options,
		})
	}
	return questions
}

// questionText reads the visible text of the nearest accepted container
// around the group's first control, falling back to the immediate parent.
func questionText(s *goquery.Selection) string {
	container := s.Closest(containerSelector)
	if container.Length() == 0 {
		container = s.Parent()
	}
	return normalizeText(container.Text())
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// pageOption is the goquery-backed option handle. Selection state lives
// on the node's checked attribute; the document owns the node, the
// handle only points at it.
type pageOption struct {
	sel *goquery.Selection
}

func (o *pageOption) Selected() bool {
	_, ok := o.sel.Attr("checked")
	return ok
}

func (o *pageOption) SetSelected(v bool) {
	if v {
		o.sel.SetAttr("checked", "checked")
		return
	}
	o.sel.RemoveAttr("checked")
}
