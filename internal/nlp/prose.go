package nlp

import (
	"github.com/jdkato/prose/v2"
)

// ProseTagger backs the Tagger interface with prose's statistical models.
// The underlying model data is loaded once per process and shared; the
// struct itself is stateless.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (p *ProseTagger) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	docEnts := doc.Entities()
	ents := make([]Entity, 0, len(docEnts))
	for _, e := range docEnts {
		ents = append(ents, Entity{Text: e.Text, Label: e.Label})
	}
	return ents, nil
}

func (p *ProseTagger) Tokens(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	docToks := doc.Tokens()
	tokens := make([]Token, 0, len(docToks))
	for _, t := range docToks {
		tokens = append(tokens, Token{Text: t.Text, Tag: t.Tag})
	}
	return tokens, nil
}
