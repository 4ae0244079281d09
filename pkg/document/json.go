package document

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// ParseJSON parses a single JSON value, keeping object member order.
// JSON positions carry the file name only.
func ParseJSON(file string, data []byte) (*Node, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	p := &jsonParser{dec: dec, pos: Position{File: file}}

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newParseError(p.pos, "empty document")
		}
		return nil, p.wrap(err)
	}
	root, err := p.value(tok)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, p.wrap(err)
		}
		return nil, newParseError(p.pos, "unexpected data after top-level value")
	}
	return root, nil
}

type jsonParser struct {
	dec *j.Decoder
	pos Position
}

func (p *jsonParser) wrap(err error) error {
	return &ParseError{Pos: p.pos, Msg: "invalid JSON", Err: err}
}

func (p *jsonParser) next() (j.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newParseError(p.pos, "unexpected end of input")
		}
		return nil, p.wrap(err)
	}
	return tok, nil
}

func (p *jsonParser) value(tok j.Token) (*Node, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return p.object()
		case '[':
			return p.array()
		}
		return nil, newParseError(p.pos, "unexpected delimiter %q", string(v))
	case string:
		return &Node{Kind: KindString, Pos: p.pos, Str: v}, nil
	case bool:
		return &Node{Kind: KindBool, Pos: p.pos, Bool: v}, nil
	case j.Number:
		return p.number(string(v))
	case float64:
		return &Node{Kind: KindFloat, Pos: p.pos, Float: v}, nil
	case nil:
		return &Node{Kind: KindNull, Pos: p.pos}, nil
	}
	return nil, newParseError(p.pos, "unexpected token %v", tok)
}

func (p *jsonParser) number(s string) (*Node, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ParseError{Pos: p.pos, Msg: "invalid number " + strconv.Quote(s), Err: err}
		}
		return &Node{Kind: KindFloat, Pos: p.pos, Float: f}, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &ParseError{Pos: p.pos, Msg: "invalid integer " + strconv.Quote(s), Err: err}
	}
	return &Node{Kind: KindInt, Pos: p.pos, Int: i}, nil
}

func (p *jsonParser) object() (*Node, error) {
	out := &Node{Kind: KindMapping, Pos: p.pos}
	for p.dec.More() {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, newParseError(p.pos, "object keys must be strings")
		}
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		val, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, Entry{Key: key, KeyPos: p.pos, Value: val})
	}
	if _, err := p.next(); err != nil { // closing '}'
		return nil, err
	}
	return out, nil
}

func (p *jsonParser) array() (*Node, error) {
	out := &Node{Kind: KindSequence, Pos: p.pos}
	for p.dec.More() {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		item, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	if _, err := p.next(); err != nil { // closing ']'
		return nil, err
	}
	return out, nil
}
