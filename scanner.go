package jsoncedit

// Low-level JSONC tokenizer. Every token carries its byte offset and length in
// the source text so that callers can do exact byte surgery. Comments and
// trailing commas are ordinary tokens, never errors.

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenOpenBrace
	tokenCloseBrace
	tokenOpenBracket
	tokenCloseBracket
	tokenColon
	tokenComma
	tokenString
	tokenNumber
	tokenTrue
	tokenFalse
	tokenNull
	tokenLineComment
	tokenBlockComment
	tokenWhitespace
	tokenLineBreak
	tokenUnknown
)

func (k tokenKind) isTrivia() bool {
	return k == tokenWhitespace || k == tokenLineBreak || k.isComment()
}

func (k tokenKind) isComment() bool {
	return k == tokenLineComment || k == tokenBlockComment
}

type token struct {
	kind   tokenKind
	offset int
	length int
}

func (t token) end() int { return t.offset + t.length }

type scanner struct {
	src string
	pos int
	// unterminated string or block comment in the last token
	tokenErr bool
}

func newScanner(src string) *scanner { return &scanner{src: src} }

// next returns the next token, including trivia.
func (s *scanner) next() token {
	s.tokenErr = false
	start := s.pos
	if s.pos >= len(s.src) {
		return token{kind: tokenEOF, offset: start}
	}

	c := s.src[s.pos]
	switch {
	case c == ' ' || c == '\t':
		for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
			s.pos++
		}
		return token{kind: tokenWhitespace, offset: start, length: s.pos - start}
	case c == '\n':
		s.pos++
		return token{kind: tokenLineBreak, offset: start, length: 1}
	case c == '\r':
		s.pos++
		if s.pos < len(s.src) && s.src[s.pos] == '\n' {
			s.pos++
		}
		return token{kind: tokenLineBreak, offset: start, length: s.pos - start}
	case c == '{':
		s.pos++
		return token{kind: tokenOpenBrace, offset: start, length: 1}
	case c == '}':
		s.pos++
		return token{kind: tokenCloseBrace, offset: start, length: 1}
	case c == '[':
		s.pos++
		return token{kind: tokenOpenBracket, offset: start, length: 1}
	case c == ']':
		s.pos++
		return token{kind: tokenCloseBracket, offset: start, length: 1}
	case c == ':':
		s.pos++
		return token{kind: tokenColon, offset: start, length: 1}
	case c == ',':
		s.pos++
		return token{kind: tokenComma, offset: start, length: 1}
	case c == '"':
		s.scanString()
		return token{kind: tokenString, offset: start, length: s.pos - start}
	case c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
		s.pos += 2
		for s.pos < len(s.src) && s.src[s.pos] != '\n' && s.src[s.pos] != '\r' {
			s.pos++
		}
		return token{kind: tokenLineComment, offset: start, length: s.pos - start}
	case c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*':
		s.pos += 2
		closed := false
		for s.pos < len(s.src) {
			if s.src[s.pos] == '*' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/' {
				s.pos += 2
				closed = true
				break
			}
			s.pos++
		}
		s.tokenErr = !closed
		return token{kind: tokenBlockComment, offset: start, length: s.pos - start}
	case c == '-' || (c >= '0' && c <= '9'):
		s.scanNumber()
		return token{kind: tokenNumber, offset: start, length: s.pos - start}
	default:
		if isLetter(c) {
			for s.pos < len(s.src) && isLetter(s.src[s.pos]) {
				s.pos++
			}
			switch s.src[start:s.pos] {
			case "true":
				return token{kind: tokenTrue, offset: start, length: s.pos - start}
			case "false":
				return token{kind: tokenFalse, offset: start, length: s.pos - start}
			case "null":
				return token{kind: tokenNull, offset: start, length: s.pos - start}
			}
			return token{kind: tokenUnknown, offset: start, length: s.pos - start}
		}
		s.pos++
		return token{kind: tokenUnknown, offset: start, length: 1}
	}
}

// nextNonTrivia skips whitespace, line breaks and comments.
func (s *scanner) nextNonTrivia() token {
	for {
		t := s.next()
		if !t.kind.isTrivia() {
			return t
		}
	}
}

func (s *scanner) scanString() {
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '"' {
			s.pos++
			return
		}
		if c == '\\' {
			s.pos++
			if s.pos < len(s.src) {
				s.pos++
			}
			continue
		}
		if c == '\n' || c == '\r' {
			// unterminated string; stop at the line break
			s.tokenErr = true
			return
		}
		s.pos++
	}
	s.tokenErr = true
}

func (s *scanner) scanNumber() {
	if s.pos < len(s.src) && s.src[s.pos] == '-' {
		s.pos++
	}
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
	}
	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		s.pos++
		if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
