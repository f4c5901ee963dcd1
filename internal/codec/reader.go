package codec

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DecodeError describes the first token that broke the grammar.
type DecodeError struct {
	Field  string
	Token  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("%s %q: %s", e.Field, e.Token, e.Reason)
}

// Unwrap lets callers match every decode failure against ErrMalformed.
func (e *DecodeError) Unwrap() error {
	return ErrMalformed
}

// tokenReader walks whitespace separated tokens. The first failure sticks and
// every later read becomes a no-op.
type tokenReader struct {
	tokens []string
	pos    int
	err    error
}

func newTokenReader(text string) *tokenReader {
	return &tokenReader{tokens: strings.Fields(text)}
}

func (r *tokenReader) fail(field, token, reason string) {
	if r.err == nil {
		r.err = &DecodeError{Field: field, Token: token, Reason: reason}
	}
}

func (r *tokenReader) next(field string) (string, bool) {
	if r.err != nil {
		return "", false
	}

	if r.pos >= len(r.tokens) {
		r.fail(field, "", "missing")
		return "", false
	}

	token := r.tokens[r.pos]
	r.pos++

	return token, true
}

func (r *tokenReader) expect(literal string) {
	token, ok := r.next("type")
	if ok && token != literal {
		r.fail("type", token, "expected "+literal)
	}
}

func (r *tokenReader) uint32(field string) uint32 {
	token, ok := r.next(field)
	if !ok {
		return 0
	}

	value, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		r.fail(field, token, "not an unsigned integer")
		return 0
	}

	return uint32(value)
}

func (r *tokenReader) finish() error {
	if r.err == nil && r.pos < len(r.tokens) {
		r.fail("line", r.tokens[r.pos], "unexpected trailing token")
	}

	return r.err
}

func readEnum[T ~string](r *tokenReader, field string, allowed []T) T {
	token, ok := r.next(field)
	if !ok {
		return ""
	}

	if !slices.Contains(allowed, T(token)) {
		r.fail(field, token, "unknown value")
		return ""
	}

	return T(token)
}

type tokenWriter struct {
	b strings.Builder
}

func newTokenWriter(letter string) *tokenWriter {
	w := &tokenWriter{}
	w.b.WriteString(letter)

	return w
}

func (w *tokenWriter) token(s string) {
	w.b.WriteByte(' ')
	w.b.WriteString(s)
}

func (w *tokenWriter) uint32(v uint32) {
	w.token(strconv.FormatUint(uint64(v), 10))
}

func (w *tokenWriter) String() string {
	return w.b.String()
}
