package corpus

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// File is one annotated corpus file: a named, ordered collection of
// responses generated under a single prompt/response language combination.
type File struct {
	XMLName xml.Name `xml:"file" json:"-"`

	// Name is the file name in storage, carrying the category key.
	// It is set by the storage layer, not by the XML payload.
	Name string `xml:"-" json:"name"`

	PromptType   string `xml:"prompt_type,attr" json:"prompt_type"`
	ResponseType string `xml:"response_type,attr" json:"response_type"`

	Responses []Response `xml:"response" json:"responses"`
}

// Response is one model answer, decomposed into sentences by the
// annotator. It is the unit every metric is computed over.
type Response struct {
	Id        string     `xml:"id,attr" json:"id"`
	Sentences []Sentence `xml:"s" json:"sentences"`
}

// Sentence is an ordered sequence of tokens. Boundaries come from the
// annotator and are never recomputed here.
type Sentence struct {
	Id     string  `xml:"id,attr" json:"id"`
	Tokens []Token `xml:"t" json:"tokens"`
}

// Token is the atomic annotated unit.
type Token struct {
	Id string `xml:"id,attr" json:"id"`

	Lemma string `xml:"lemma,attr" json:"lemma"`

	// Pos is the coarse part-of-speech category (NOUN, VERB, ...).
	Pos string `xml:"pos,attr" json:"pos"`

	// Tag is the fine-grained part-of-speech subtype (NN, NNS, VBN, ...).
	Tag string `xml:"tag,attr" json:"tag"`

	Dep string `xml:"dep,attr,omitempty" json:"dep,omitempty"`

	// Head is the surface text of the token's syntactic head.
	Head string `xml:"head,attr,omitempty" json:"head,omitempty"`

	// DepDistance is the absolute index difference between the token and
	// its head, as computed by the parser.
	DepDistance int `xml:"dep_distance,attr,omitempty" json:"dep_distance,omitempty"`

	// The unmodified word.
	Text string `xml:",chardata" json:"text"`
}

// Position returns the 1-based index of the token inside its sentence,
// parsed from the trailing "-t<n>" of its id. A token whose id carries no
// parsable index reports 0 and is treated as unresolved by the dependency
// metrics.
func (t Token) Position() int {
	i := strings.LastIndex(t.Id, "-t")
	if i < 0 {
		return 0
	}

	n, err := strconv.Atoi(t.Id[i+2:])
	if err != nil || n < 1 {
		return 0
	}
	return n
}
