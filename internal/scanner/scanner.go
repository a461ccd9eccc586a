// Package scanner implements the MiniC lexical analyser: a table-driven
// DFA (dfa.go) driven by a demand-fed Scanner that tokenises with a
// single slot of pushback and classifies lexical errors.
package scanner

import "github.com/minic-lang/minic/internal/token"

// LexError is one classified lexical error: an offending lexeme, the line
// on which it started, and its category.
type LexError struct {
	Line     int
	Lexeme   string
	Category ErrorCategory
}

// Scanner drives the DFA over a source buffer, producing a demand-driven
// stream of tokens. COMMENT and WHITESPACE tokens are consumed internally
// and never returned by Next; lexical errors are recorded and scanning
// resumes at the character following the offending lexeme.
type Scanner struct {
	states  []state
	src     []rune
	pos     int
	line    int
	pending bool
	pendCh  rune
	symbols *SymbolTable
	Errors  []LexError
}

// New creates a Scanner over source. The symbol table is pre-seeded with
// MiniC's keywords in declaration order.
func New(source string) *Scanner {
	return &Scanner{
		states:  buildDFA(),
		src:     []rune(source),
		line:    1,
		symbols: newSymbolTable(),
	}
}

// SymbolNames returns the accumulated symbol table in insertion order.
func (s *Scanner) SymbolNames() []string {
	return s.symbols.Names()
}

func (s *Scanner) pushBack(r rune) {
	s.pending = true
	s.pendCh = r
}

// readRune returns the next input character, consuming the pushback slot
// first if set. The line counter advances exactly once per physical LF,
// at the moment it is first read from the source (never on redelivery
// from the pushback slot).
func (s *Scanner) readRune() rune {
	if s.pending {
		s.pending = false
		return s.pendCh
	}
	if s.pos >= len(s.src) {
		return eof
	}
	r := s.src[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
	}
	return r
}

// scanOne drives the DFA from its start state until a terminal or error
// state is reached, returning exactly one of (token, nil) or (zero value,
// *LexError). The line recorded is the line in effect before any
// character of this attempt was read, matching "the line at which its
// first character was consumed".
func (s *Scanner) scanOne() (token.Token, *LexError) {
	firstLine := s.line
	cur := startState
	var lexeme []rune

	for {
		r := s.readRune()
		lexeme = append(lexeme, r)

		next, ok := s.states[cur].next(r)
		if !ok {
			return token.Token{}, &LexError{Line: firstLine, Lexeme: string(lexeme), Category: InvalidInput}
		}
		cur = next

		switch s.states[cur].kind {
		case kindIntermediate:
			continue
		case kindTerminal:
			kind, text, pushback := s.states[cur].accept(string(lexeme))
			if pushback {
				s.pushBack(lexeme[len(lexeme)-1])
			}
			return token.Token{Kind: kind, Lexeme: text, Line: firstLine}, nil
		case kindError:
			if s.states[cur].errClass == InvalidNumber {
				// The rest of the alphanumeric run belongs to the invalid number.
				for {
					r := s.readRune()
					if !isLetter(r) && !isDigit(r) {
						s.pushBack(r)
						break
					}
					lexeme = append(lexeme, r)
				}
			}
			return token.Token{}, &LexError{Line: firstLine, Lexeme: truncateUnclosed(string(lexeme), s.states[cur].errClass), Category: s.states[cur].errClass}
		}
	}
}

// truncateUnclosed applies the UNCLOSED_COMMENT truncation convention:
// the reported lexeme is cut to its first seven characters plus an
// ellipsis when longer, preserved verbatim from the reference
// implementation this scanner was ported from.
func truncateUnclosed(lexeme string, class ErrorCategory) string {
	if class != UnclosedComment {
		return lexeme
	}
	runes := []rune(lexeme)
	if len(runes) > 7 {
		return string(runes[:7]) + "…"
	}
	return lexeme
}

// Next returns the next token visible to the parser: COMMENT and
// WHITESPACE are discarded, lexical errors are recorded and scanning
// continues. Once the source is exhausted, Next returns an EOF token on
// every subsequent call.
func (s *Scanner) Next() token.Token {
	for {
		tok, lexErr := s.scanOne()
		if lexErr != nil {
			s.Errors = append(s.Errors, *lexErr)
			continue
		}
		switch tok.Kind {
		case token.COMMENT, token.WHITESPACE:
			continue
		case token.ID:
			s.symbols.insert(tok.Lexeme)
		}
		return tok
	}
}
