package arith

import "strconv"

// parser evaluates one expression in a single pass. The cursor pos only
// moves forward, except that scanNumber rolls it back over a speculative
// exponent suffix that turns out not to be one.
type parser struct {
	src string
	pos int
}

// skipSpaces advances the cursor past ASCII whitespace.
func (p *parser) skipSpaces() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// match consumes c if it is the next byte after whitespace.
func (p *parser) match(c byte) bool {
	p.skipSpaces()
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// match2 consumes the two bytes c0 c1 if they follow whitespace. Both bytes
// must be adjacent; whitespace between them is a non-match.
func (p *parser) match2(c0, c1 byte) bool {
	p.skipSpaces()
	if p.pos+1 < len(p.src) && p.src[p.pos] == c0 && p.src[p.pos+1] == c1 {
		p.pos += 2
		return true
	}
	return false
}

// peek returns the next byte after whitespace without consuming it, or 0 at
// the end of the input.
func (p *parser) peek() byte {
	p.skipSpaces()
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

// startsFactor reports whether the next byte opens a new factor, which makes
// an adjacent factor an implicit multiplication. A sign never does: a + or -
// after a complete factor is always the next additive operator.
func (p *parser) startsFactor() bool {
	c := p.peek()
	return c == '(' || c == '.' || isDigit(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// scanNumber scans a number literal at the cursor: an optional integer
// part, at most one decimal point with optional fraction digits, and an
// optional exponent suffix. At least one digit must appear in the mantissa.
// An e or E not followed by a well-formed exponent is left unconsumed by
// rolling the cursor back to it.
func (p *parser) scanNumber() (float64, error) {
	p.skipSpaces()
	start := p.pos
	dig, dot := false, false
mantissa:
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case isDigit(c):
			dig = true
		case c == '.' && !dot:
			dot = true
		default:
			break mantissa
		}
		p.pos++
	}
	if !dig {
		return 0, &NumberError{Col: start}
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		save := p.pos
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		ed := false
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			ed = true
			p.pos++
		}
		if !ed {
			p.pos = save
		}
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		panic("arith: invalid number " + strconv.Quote(p.src[start:p.pos]) + " (" + err.Error() + ")")
	}
	return v, nil
}
