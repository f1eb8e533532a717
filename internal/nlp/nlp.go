// Package nlp extracts the entities a weather question is about: a location
// and, when present, a date expression.
package nlp

import "strings"

// Entity is a labeled span recognized by the model, e.g. {"London", "GPE"}.
type Entity struct {
	Text  string
	Label string
}

// Token is a single word with its part-of-speech tag (Penn Treebank set).
type Token struct {
	Text string
	Tag  string
}

// Tagger is the NLP model boundary. Implementations must be read-only after
// construction and safe for concurrent use; the pipeline shares one
// process-wide instance across queries.
type Tagger interface {
	Entities(text string) ([]Entity, error)
	Tokens(text string) ([]Token, error)
}

// DateSpotter finds the first date/time expression in a sentence and
// returns it verbatim.
type DateSpotter interface {
	Spot(text string) (string, bool)
}

// Result holds the extracted mentions. Empty string means absent.
type Result struct {
	Location       string
	DateExpression string
}

// Extractor pulls a location mention and a date expression out of raw text.
// It holds no per-query state.
type Extractor struct {
	tagger Tagger
	dates  DateSpotter
}

func NewExtractor(tagger Tagger, dates DateSpotter) *Extractor {
	return &Extractor{tagger: tagger, dates: dates}
}

// Extract scans text for a geo-political entity and a date expression.
// The first GPE wins, verbatim. When the model finds none, a noun phrase
// governed by an "in"/"for"-like word is taken instead (see
// fallbackLocation). A question with neither leaves Location empty and the
// router answers that no location was found.
func (e *Extractor) Extract(text string) (Result, error) {
	var res Result

	ents, err := e.tagger.Entities(text)
	if err != nil {
		return Result{}, err
	}
	for _, ent := range ents {
		if ent.Label == "GPE" {
			res.Location = ent.Text
			break
		}
	}

	if res.Location == "" {
		tokens, err := e.tagger.Tokens(text)
		if err != nil {
			return Result{}, err
		}
		res.Location = fallbackLocation(tokens)
	}

	if e.dates != nil {
		if expr, ok := e.dates.Spot(text); ok {
			res.DateExpression = expr
		}
	}
	return res, nil
}

// fallbackLocation scans for a word containing "in" or "for" and takes the
// noun phrase that follows it. The substring match is deliberately loose
// ("within" and even "going" trigger it); this mirrors the reference
// heuristic and is a known imprecision, kept confined to this function.
func fallbackLocation(tokens []Token) string {
	for i, tok := range tokens {
		lower := strings.ToLower(tok.Text)
		if !strings.Contains(lower, "in") && !strings.Contains(lower, "for") {
			continue
		}
		if phrase := nounPhraseAt(tokens[i+1:]); phrase != "" {
			return phrase
		}
	}
	return ""
}

// nounPhraseAt collects the leading determiner/adjective/noun run of
// tokens, requiring at least one noun.
func nounPhraseAt(tokens []Token) string {
	var words []string
	sawNoun := false
	for _, tok := range tokens {
		switch tok.Tag {
		case "DT", "PRP$", "JJ", "JJR", "JJS", "CD":
			words = append(words, tok.Text)
		case "NN", "NNS", "NNP", "NNPS":
			words = append(words, tok.Text)
			sawNoun = true
		default:
			if sawNoun {
				return strings.Join(words, " ")
			}
			return ""
		}
	}
	if sawNoun {
		return strings.Join(words, " ")
	}
	return ""
}
