package body

import (
	"bytes"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// Parser consumes HTTP reply payloads and exposes the wrapper <body/>
// element of each. A session owns exactly one Parser at a time and
// replaces it wholesale when the upper layer restarts stream parsing.
type Parser struct {
	freed   bool
	replies int
	bytes   int64
}

// NewParser returns a fresh reply parser.
func NewParser() *Parser { return &Parser{} }

// Parse decodes one HTTP reply payload and returns its BOSH <body/>
// element.
func (p *Parser) Parse(data []byte) (*xmlquery.Node, error) {
	if p.freed {
		return nil, errors.New("parse on released parser")
	}
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parsing reply")
	}
	b := xmlquery.QuerySelector(doc, xpBody)
	if b == nil {
		return nil, errors.New("reply carries no BOSH <body> element")
	}
	p.replies++
	p.bytes += int64(len(data))
	return b, nil
}

// Replies returns the number of reply bodies decoded since creation or
// the last Reset.
func (p *Parser) Replies() int { return p.replies }

// Bytes returns the total payload bytes decoded since creation or the
// last Reset.
func (p *Parser) Bytes() int64 { return p.bytes }

// Reset discards accumulated stream state, keeping the parser usable.
func (p *Parser) Reset() {
	p.replies = 0
	p.bytes = 0
}

// Free releases the parser. Further Parse calls fail.
func (p *Parser) Free() { p.freed = true }

var xpBody = xpath.MustCompile(`/body[namespace-uri()='` + NSHTTPBind + `']`)
