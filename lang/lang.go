package lang

import (
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"github.com/lexistat/lexistat/corpus"
)

// Language codes as used by the corpus category keys.
const (
	English = "en"
	Chinese = "zh"
)

// minRunes is the shortest response text worth classifying; detection on
// shorter fragments is noise.
const minRunes = 20

// Detect classifies text into a corpus language code. It returns "" when
// the detector reports anything other than English or Mandarin.
func Detect(text string) string {
	info := whatlanggo.Detect(text)
	switch info.Lang {
	case whatlanggo.Eng:
		return English
	case whatlanggo.Cmn:
		return Chinese
	}
	return ""
}

// Mismatch reports a response whose detected language disagrees with the
// language its file declares.
type Mismatch struct {
	Response string
	Want     string
	Got      string
}

// Verify checks every response of a file against the file's declared
// response language. Responses too short to classify, or classified as
// neither corpus language, are skipped.
func Verify(f corpus.File) []Mismatch {
	var mismatches []Mismatch

	for _, r := range f.Responses {
		text := responseText(r)
		if utf8.RuneCountInString(text) < minRunes {
			continue
		}

		got := Detect(text)
		if got == "" || got == f.ResponseType {
			continue
		}

		mismatches = append(mismatches, Mismatch{
			Response: r.Id,
			Want:     f.ResponseType,
			Got:      got,
		})
	}

	return mismatches
}

// responseText reassembles a response's surface text from its tokens.
func responseText(r corpus.Response) string {
	var parts []string
	for _, s := range r.Sentences {
		for _, t := range s.Tokens {
			if t.Text != "" {
				parts = append(parts, t.Text)
			}
		}
	}
	return strings.Join(parts, " ")
}
