package xmltok

import (
	"io"
	"unicode/utf8"

	"github.com/klauspost/cpuid/v2"
)

// eof is the sentinel Current/GetNext return once the underlying
// reader is exhausted.
const eof rune = -1

// fastScanEnabled selects the word-at-a-time scan kernel over the
// plain rune-by-rune scanner used by scanNotDelim, mirroring the
// canUseSSE/canUseAVX2 capability dispatch gosaxml performs in
// decoder_amd64.go/sse_amd64.go. This tokenizer scans decoded runes
// rather than a fixed-width byte window, so the kernel itself is
// portable Go rather than per-arch assembly; cpuid still governs
// which one is selected.
var fastScanEnabled = cpuid.CPU.Has(cpuid.SSE2)

// CharSource is the character-source contract the tokenizer depends
// on (spec §6.1): a buffered, rewindable reader over decoded Unicode
// scalar values. The tokenizer treats implementations as an opaque
// collaborator.
type CharSource interface {
	// Current returns the character at the cursor, or eof once the
	// source is exhausted.
	Current() rune

	// Advance moves the cursor forward by n positions.
	Advance(n int)

	// Back moves the cursor backward by n positions. Callers only
	// ever back up over characters they themselves just consumed.
	Back(n int)

	// GetNext advances the cursor by one and returns the new current
	// character; equivalent to Advance(1) followed by Current().
	GetNext() rune

	// ContinuesWith reports whether the upcoming characters, starting
	// at Current() inclusive, match literal. The cursor position is
	// left unchanged whether or not it matches.
	ContinuesWith(literal string, caseSensitive bool) bool
}

const (
	runeSourceChunk    = 4096
	runeSourceKeepBack = 64
)

// runeSource is the default CharSource: a byte ring refilled from an
// io.Reader, decoded into a small rewindable window of runes. It is
// the rune-oriented generalization of HBTGmbH/gosaxml's bufreader.go
// byte ring (r/w cursors, readByte/unreadByte/discard/read0 refill
// loop).
type runeSource struct {
	rd  io.Reader
	raw []byte

	runes []rune
	pos   int
	atEOF bool

	absOffset int64
	line      int
	col       int
}

// NewCharSource wraps an io.Reader in the default CharSource
// implementation.
func NewCharSource(rd io.Reader) CharSource {
	return &runeSource{
		rd:    rd,
		raw:   make([]byte, 0, runeSourceChunk),
		runes: make([]rune, 0, 256),
		line:  1,
		col:   1,
	}
}

func (s *runeSource) reset(rd io.Reader) {
	s.rd = rd
	s.raw = s.raw[:0]
	s.runes = s.runes[:0]
	s.pos = 0
	s.atEOF = false
	s.absOffset = 0
	s.line = 1
	s.col = 1
}

// Position reports the offset, 1-based line and 1-based column of the
// character currently at the cursor. It is not part of the
// CharSource contract (spec §6.1 defines exactly five operations);
// the tokenizer detects it via an internal optional interface to
// enrich SyntaxError when the concrete source supports it.
func (s *runeSource) Position() (int64, int, int) {
	return s.absOffset, s.line, s.col
}

func (s *runeSource) fillOnce() {
	if s.atEOF {
		return
	}
	chunk := make([]byte, runeSourceChunk)
	n, err := s.rd.Read(chunk)
	if n > 0 {
		s.raw = append(s.raw, chunk[:n]...)
	}
	for len(s.raw) > 0 {
		r, size := utf8.DecodeRune(s.raw)
		if r == utf8.RuneError && size == 1 {
			if len(s.raw) < utf8.UTFMax && err == nil {
				// possibly a multi-byte sequence truncated at the
				// chunk boundary; wait for more bytes before deciding
				// it's actually invalid.
				break
			}
			s.runes = append(s.runes, utf8.RuneError)
			s.raw = s.raw[1:]
			continue
		}
		s.runes = append(s.runes, r)
		s.raw = s.raw[size:]
	}
	if n == 0 && err != nil {
		s.atEOF = true
		for len(s.raw) > 0 {
			s.runes = append(s.runes, utf8.RuneError)
			s.raw = s.raw[1:]
		}
	}
}

// ensure guarantees that index pos+n is either a valid index into
// s.runes or that s.atEOF is true (meaning it, and every later index,
// is effectively eof).
func (s *runeSource) ensure(n int) {
	for !s.atEOF && s.pos+n >= len(s.runes) {
		s.fillOnce()
	}
}

func (s *runeSource) trim() {
	if s.pos <= runeSourceKeepBack*2 {
		return
	}
	cut := s.pos - runeSourceKeepBack
	n := copy(s.runes, s.runes[cut:])
	s.runes = s.runes[:n]
	s.pos -= cut
}

func (s *runeSource) Current() rune {
	s.ensure(0)
	if s.pos < 0 || s.pos >= len(s.runes) {
		return eof
	}
	return s.runes[s.pos]
}

func (s *runeSource) Advance(n int) {
	if n > 0 {
		s.ensure(n - 1)
		end := s.pos + n
		if end > len(s.runes) {
			end = len(s.runes)
		}
		for i := s.pos; i < end; i++ {
			if s.runes[i] == '\n' {
				s.line++
				s.col = 1
			} else {
				s.col++
			}
		}
	}
	s.absOffset += int64(n)
	s.pos += n
	s.trim()
}

// Back moves the cursor backward by n positions. Line/column tracking
// is not unwound on Back: callers only ever back up a handful of
// characters of lookahead (spec §9), and doing so never crosses a
// line boundary in this tokenizer's usage, so the offset is corrected
// but line/column are left as-is rather than paying for a general
// undo log.
func (s *runeSource) Back(n int) {
	s.pos -= n
	if s.pos < 0 {
		s.pos = 0
	}
	s.absOffset -= int64(n)
	if s.absOffset < 0 {
		s.absOffset = 0
	}
}

func (s *runeSource) GetNext() rune {
	s.Advance(1)
	return s.Current()
}

func (s *runeSource) ContinuesWith(literal string, caseSensitive bool) bool {
	if literal == "" {
		return true
	}
	lits := []rune(literal)
	s.ensure(len(lits) - 1)
	for i, want := range lits {
		idx := s.pos + i
		var got rune
		if idx < len(s.runes) {
			got = s.runes[idx]
		} else {
			got = eof
		}
		if caseSensitive {
			if got != want {
				return false
			}
		} else if toLowerASCII(got) != toLowerASCII(want) {
			return false
		}
	}
	return true
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func inSet(r rune, set string) bool {
	for _, c := range set {
		if r == c {
			return true
		}
	}
	return false
}

// scanNotDelim appends runes from the source to dst until one equal
// to a character in stopSet is encountered (or the source is
// exhausted), leaving the cursor positioned at the stopping
// character. When fastScanEnabled it compares four runes at a time,
// the portable-Go analogue of gosaxml's word-at-a-time byte scan.
func scanNotDelim(src CharSource, dst []rune, stopSet string) []rune {
	rs, ok := src.(*runeSource)
	if !ok || !fastScanEnabled {
		return scanNotDelimGeneric(src, dst, stopSet)
	}
	return rs.scanNotDelimFast(dst, stopSet)
}

func scanNotDelimGeneric(src CharSource, dst []rune, stopSet string) []rune {
	for {
		c := src.Current()
		if c == eof || inSet(c, stopSet) {
			return dst
		}
		dst = append(dst, c)
		src.Advance(1)
	}
}

func (s *runeSource) scanNotDelimFast(dst []rune, stopSet string) []rune {
	for {
		s.ensure(3)
		start := s.pos
		end := start
		for end < start+4 && end < len(s.runes) {
			if inSet(s.runes[end], stopSet) {
				break
			}
			end++
		}
		if end > start {
			dst = append(dst, s.runes[start:end]...)
			s.Advance(end - start)
		}
		if end < start+4 {
			return dst
		}
	}
}
