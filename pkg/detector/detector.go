// Package detector classifies captured page content. Currently that
// means guessing the content language, which is stored alongside each
// corpus entry so prompts built later can be inspected per language.
package detector

import (
	"github.com/pemistahl/lingua-go"
)

// languages kept deliberately small: building a detector over every
// language lingua knows is slow and the corpus is dominated by a handful.
var languages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Italian,
}

type Detector struct {
	inner lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Language returns the ISO 639-1 code of the detected language, or an
// empty string when the text gives no usable signal.
func (d *Detector) Language(text string) string {
	if text == "" {
		return ""
	}
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return lang.IsoCode639_1().String()
}
