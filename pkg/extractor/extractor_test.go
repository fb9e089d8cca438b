package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func TestExtractGroupsByName(t *testing.T) {
	doc := parseHTML(t, `
		<div>What is 2+2?
			<input type="radio" name="q1" value="a">
			<input type="radio" name="q1" value="b">
			<input type="radio" name="q1" value="c">
		</div>
		<div>Pick all primes.
			<input type="checkbox" name="q2" value="a">
			<input type="checkbox" name="q2" value="b">
		</div>`)

	questions := Extract(doc)
	if len(questions) != 2 {
		t.Fatalf("Extract() returned %d questions, want 2", len(questions))
	}

	if !strings.Contains(questions[0].Text, "What is 2+2?") {
		t.Errorf("questions[0].Text = %q, want the container text", questions[0].Text)
	}
	if len(questions[0].Options) != 3 {
		t.Errorf("questions[0] has %d options, want 3", len(questions[0].Options))
	}
	if len(questions[1].Options) != 2 {
		t.Errorf("questions[1] has %d options, want 2", len(questions[1].Options))
	}
	if questions[0].ID != 0 || questions[1].ID != 1 {
		t.Errorf("question IDs = %d,%d, want 0,1", questions[0].ID, questions[1].ID)
	}
}

func TestExtractUnnamedControlsAreSingletons(t *testing.T) {
	doc := parseHTML(t, `
		<p>Agree?
			<input type="checkbox">
			<input type="checkbox">
		</p>`)

	questions := Extract(doc)
	if len(questions) != 2 {
		t.Fatalf("Extract() returned %d questions, want 2 singletons", len(questions))
	}
	for i, q := range questions {
		if len(q.Options) != 1 {
			t.Errorf("questions[%d] has %d options, want 1", i, len(q.Options))
		}
	}
}

func TestExtractContainerLookup(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "list item",
			html: `<ul><li>From a list item <input type="radio" name="q"></li></ul>`,
			want: "From a list item",
		},
		{
			name: "table row",
			html: `<table><tr><td>Row question</td><td><input type="radio" name="q"></td></tr></table>`,
			want: "Row question",
		},
		{
			name: "nested span falls through to div",
			html: `<div>Outer text <span><input type="radio" name="q"></span></div>`,
			want: "Outer text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := Extract(parseHTML(t, tt.html))
			if len(questions) != 1 {
				t.Fatalf("Extract() returned %d questions, want 1", len(questions))
			}
			if !strings.Contains(questions[0].Text, tt.want) {
				t.Errorf("Text = %q, want it to contain %q", questions[0].Text, tt.want)
			}
		})
	}
}

func TestExtractEmptyContainerGetsPlaceholder(t *testing.T) {
	doc := parseHTML(t, `<div><input type="radio" name="q1"></div>`)

	questions := Extract(doc)
	if len(questions) != 1 {
		t.Fatalf("Extract() returned %d questions, want 1", len(questions))
	}
	if questions[0].Text != "Question 1" {
		t.Errorf("Text = %q, want synthetic placeholder %q", questions[0].Text, "Question 1")
	}
}

func TestExtractNoControls(t *testing.T) {
	doc := parseHTML(t, `<div><p>Just prose, nothing selectable.</p></div>`)

	if HasControls(doc) {
		t.Error("HasControls() = true, want false")
	}
	if questions := Extract(doc); len(questions) != 0 {
		t.Errorf("Extract() returned %d questions, want 0", len(questions))
	}
}

func TestExtractTruncatesLongText(t *testing.T) {
	long := strings.Repeat("word ", 200)
	doc := parseHTML(t, `<div>`+long+`<input type="radio" name="q"></div>`)

	questions := Extract(doc)
	if len(questions) != 1 {
		t.Fatalf("Extract() returned %d questions, want 1", len(questions))
	}
	if n := len([]rune(questions[0].Text)); n > 500 {
		t.Errorf("Text length = %d, want <= 500", n)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	const html = `
		<div>First <input type="radio" name="a"><input type="radio" name="a"></div>
		<div>Second <input type="checkbox" name="b"></div>
		<div>Third <input type="radio"></div>`
	doc := parseHTML(t, html)

	first := Extract(doc)
	second := Extract(doc)
	if len(first) != len(second) {
		t.Fatalf("repeated Extract() lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("questions[%d].Text differs: %q vs %q", i, first[i].Text, second[i].Text)
		}
		if len(first[i].Options) != len(second[i].Options) {
			t.Errorf("questions[%d] option counts differ: %d vs %d",
				i, len(first[i].Options), len(second[i].Options))
		}
	}
}

func TestOptionHandleRoundTrip(t *testing.T) {
	doc := parseHTML(t, `<div>Q <input type="radio" name="q" value="a"><input type="radio" name="q" value="b"></div>`)

	questions := Extract(doc)
	opt := questions[0].Options[1]
	if opt.Selected() {
		t.Error("option starts selected, want unselected")
	}
	opt.SetSelected(true)
	if !opt.Selected() {
		t.Error("option not selected after SetSelected(true)")
	}

	// The handle writes through to the document itself.
	if doc.Find(`input[value='b'][checked]`).Length() != 1 {
		t.Error("checked attribute not visible in the document")
	}

	opt.SetSelected(false)
	if opt.Selected() {
		t.Error("option still selected after SetSelected(false)")
	}
}
