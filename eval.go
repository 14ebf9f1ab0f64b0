package arith

import "math"

// Expression = Term { ('+' | '-') Term }
// Term       = Power { ('*' | '/' | '%' | implicit) Power }
// Power      = Factor [ ('^' | '**') Power ]
// Factor     = ('+' | '-') Factor | '(' Expression ')' | Number
// Number     = [digits] ['.'] [digits] [ ('e' | 'E') [sign] digits ]

// Eval evaluates an arithmetic expression and returns its value. If the
// expression is malformed or an operator is applied outside its domain, the
// result is 0 and the error implements InputError, carrying the byte offset
// of the failure.
func Eval(src string) (float64, error) {
	p := parser{src: src}
	v, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.src) {
		return 0, &TrailingError{Col: p.pos}
	}
	return v, nil
}

// parseExpression parses a sequence of terms joined by additive operators,
// left to right.
func (p *parser) parseExpression() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.match('+'):
			r, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += r
		case p.match('-'):
			r, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

// parseTerm parses a sequence of powers joined by multiplicative operators,
// left to right. A power followed directly by the start of another factor,
// as in 2(3+4) or (1+2)(3+4), is an implicit multiplication.
func (p *parser) parseTerm() (float64, error) {
	v, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.match('*'):
			r, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			v *= r
		case p.match('/'):
			op := p.pos - 1
			r, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, &DivisionError{Col: op}
			}
			v /= r
		case p.match('%'):
			op := p.pos - 1
			r, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			// Truncating remainder: both operands lose their fractional
			// part before the integer remainder is taken.
			b := int64(r)
			if b == 0 {
				return 0, &ModuloError{Col: op}
			}
			v = float64(int64(v) % b)
		case p.startsFactor():
			r, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			v *= r
		default:
			return v, nil
		}
	}
}

// parsePower parses a factor with an optional exponent. Exponentiation
// groups to the right: 2^3^2 is 2^(3^2). The base is a whole factor, so a
// leading sign belongs to the base: -2^2 is (-2)^2, which is 4.
func (p *parser) parsePower() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	// ** before ^, or a lone * would be taken for multiplication.
	if p.match2('*', '*') || p.match('^') {
		e, err := p.parsePower()
		if err != nil {
			return 0, err
		}
		v = math.Pow(v, e)
	}
	return v, nil
}

// parseFactor parses a signed factor: any run of unary signs, then a
// parenthesized expression or a number literal.
func (p *parser) parseFactor() (float64, error) {
	switch {
	case p.match('+'):
		return p.parseFactor()
	case p.match('-'):
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case p.match('('):
		v, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if !p.match(')') {
			return 0, &BracketError{Col: p.pos}
		}
		return v, nil
	}
	return p.scanNumber()
}
