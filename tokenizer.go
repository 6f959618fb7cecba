package xmltok

import "io"

// stateFn is one state of the tokenizer's state machine. It consumes
// characters from tz.src, optionally populates tz.tok, and returns
// the next state to run. A nil stateFn (with a nil error) means the
// token currently held in tz.tok is complete; the driver loop in
// NextToken then returns it to the caller. This flattens what would
// otherwise be a deep chain of state functions recursively invoking
// each other into a single loop, so input length never grows the Go
// call stack (see the "State machine" section of DESIGN.md).
type stateFn func(tz *Tokenizer) (stateFn, error)

// Tokenizer is a streaming, single-threaded, pull-based XML lexical
// analyzer. It is not safe for concurrent use by multiple goroutines.
//
// The zero value is not usable; construct one with NewTokenizer or
// NewTokenizerFromReader.
type Tokenizer struct {
	src           CharSource
	entities      NamedEntityTable
	maxNameLength int

	state stateFn
	tok   *Token

	buf []rune

	pending []rune

	tokensEmitted int64
	eofReached    bool

	// in-progress OpenTag construction, valid only while a TagOpen
	// derived state chain is running within a single NextToken call.
	tagName        string
	tagAttrs       []Attribute
	tagSelfClosing bool
	quoteChar      rune

	// in-progress ProcessingInstruction target, set by
	// stateProcessingStart before handing off to stateProcessingContent.
	piTarget string

	// in-progress Declaration pseudo-attributes.
	declVersion     string
	declEncoding    string
	declHasEncoding bool
	declStandalone  Standalone

	// in-progress Doctype fields.
	doctypeName        string
	doctypePublicID    string
	doctypeHasPublicID bool
	doctypeSystemID    string
	doctypeHasSystemID bool
}

// NewTokenizer creates a Tokenizer reading from the given character
// source (spec §6.1's out-of-scope collaborator).
func NewTokenizer(src CharSource, opts ...Option) *Tokenizer {
	tz := &Tokenizer{
		src:      src,
		entities: DefaultEntities(),
		buf:      make([]rune, 0, 256),
		tagAttrs: make([]Attribute, 0, 8),
	}
	for _, opt := range opts {
		opt(tz)
	}
	return tz
}

// NewTokenizerFromReader wraps r in the default CharSource
// implementation and constructs a Tokenizer over it.
func NewTokenizerFromReader(r io.Reader, opts ...Option) *Tokenizer {
	return NewTokenizer(NewCharSource(r), opts...)
}

// Reset rewires this Tokenizer to read from src, discarding all
// in-progress state. Configured options (entity table, name length
// limit) are preserved.
func (tz *Tokenizer) Reset(src CharSource) {
	tz.src = src
	tz.state = nil
	tz.tok = nil
	tz.buf = tz.buf[:0]
	tz.pending = tz.pending[:0]
	tz.tokensEmitted = 0
	tz.eofReached = false
	tz.tagName = ""
	tz.tagAttrs = tz.tagAttrs[:0]
	tz.tagSelfClosing = false
	tz.piTarget = ""
	tz.declVersion = ""
	tz.declEncoding = ""
	tz.declHasEncoding = false
	tz.declStandalone = StandaloneUnspecified
	tz.doctypeName = ""
	tz.doctypePublicID = ""
	tz.doctypeHasPublicID = false
	tz.doctypeSystemID = ""
	tz.doctypeHasSystemID = false
}

// readName implements the shared Name production (spec §4.2): the
// current character must be a NameStartChar, followed by zero or more
// NameChar. Used for element names, attribute names, end-tag names,
// processing instruction targets and DOCTYPE names alike.
func (tz *Tokenizer) readName() (string, error) {
	c := tz.src.Current()
	if !isNameStartChar(c) {
		return "", tz.errKind(KindInvalidName, "expected a name")
	}
	mark := tz.bufMark()
	tz.buf = append(tz.buf, c)
	tz.src.Advance(1)
	for isNameChar(tz.src.Current()) {
		if tz.maxNameLength > 0 && len(tz.buf)-mark >= tz.maxNameLength {
			tz.buf = tz.buf[:mark]
			return "", tz.errKind(KindInvalidName, "name exceeds the configured maximum length")
		}
		tz.buf = append(tz.buf, tz.src.Current())
		tz.src.Advance(1)
	}
	return tz.bufText(mark), nil
}

// atDocumentStart reports whether the tokenizer has not yet emitted
// any token, which is the only point at which a Declaration can be
// entered (spec §3.2; see SPEC_FULL.md's "Declaration reachability"
// decision for why this is checked explicitly rather than relying
// solely on grammar shape).
func (tz *Tokenizer) atDocumentStart() bool {
	return tz.tokensEmitted == 0
}

// NextToken decodes and stores the next Token into t. Every field not
// relevant to the decoded Kind is reset to its zero value, but
// t.Attributes' backing array is reused across calls, so a caller that needs an OpenTag's attributes
// past the following NextToken call must copy them out first. After
// the terminal EndOfFile token has been produced, further calls
// continue to yield EndOfFile. If NextToken returns a non-nil error,
// the Tokenizer is in an unspecified state and must not be reused.
func (tz *Tokenizer) NextToken(t *Token) error {
	if len(tz.pending) > 0 {
		r := tz.pending[0]
		tz.pending = tz.pending[1:]
		t.reset()
		t.Kind = KindCharacter
		t.Char = r
		tz.tokensEmitted++
		return nil
	}
	if tz.eofReached {
		t.reset()
		t.Kind = KindEndOfFile
		return nil
	}

	tz.tok = t
	tz.tok.reset()

	state := tz.state
	if state == nil {
		state = stateData
	}
	for {
		next, err := state(tz)
		if err != nil {
			tz.state = nil
			tz.tok = nil
			return err
		}
		if next == nil {
			tz.state = nil
			tz.tok = nil
			if t.Kind == KindEndOfFile {
				tz.eofReached = true
			} else {
				tz.tokensEmitted++
			}
			return nil
		}
		state = next
	}
}

func (tz *Tokenizer) emitChar(r rune) {
	tz.tok.reset()
	tz.tok.Kind = KindCharacter
	tz.tok.Char = r
}

func (tz *Tokenizer) emitEOF() {
	tz.tok.reset()
	tz.tok.Kind = KindEndOfFile
}

// bufMark/bufText implement the "clear on new payload, own
// string on emission" scan buffer lifecycle from spec §4.3: a state
// records the buffer length before accumulating a payload, and later
// slices/converts and truncates it back off, so the same backing
// array is reused across tokens without carrying stale references
// past a token boundary.
func (tz *Tokenizer) bufMark() int {
	return len(tz.buf)
}

func (tz *Tokenizer) bufText(mark int) string {
	s := string(tz.buf[mark:])
	tz.buf = tz.buf[:mark]
	return s
}

// positioner is implemented by CharSource implementations that can
// report their current location, used to enrich SyntaxError without
// widening the CharSource interface spec §6.1 defines.
type positioner interface {
	Position() (offset int64, line, column int)
}

func (tz *Tokenizer) errKind(kind ErrorKind, detail string) error {
	e := &SyntaxError{Kind: kind, Detail: detail}
	if p, ok := tz.src.(positioner); ok {
		e.Offset, e.Line, e.Column = p.Position()
	}
	if kind == KindEOF {
		e.Err = io.ErrUnexpectedEOF
	}
	return e
}

// scanCharacterReference implements CharacterReference(c) from spec
// §4.2.2. It assumes '&' has already been consumed and the cursor is
// at the character immediately following it. It returns an internal
// KindEntity Token; callers resolve it via resolveEntity and are
// responsible for splicing the replacement text into whichever
// context (top-level Data or an attribute value) invoked it.
func (tz *Tokenizer) scanCharacterReference() (Token, error) {
	c := tz.src.Current()
	switch {
	case c == '#':
		tz.src.Advance(1)
		return tz.scanNumericReference()
	case isNameStartChar(c):
		return tz.scanNamedReference()
	default:
		return Token{}, tz.errKind(KindCharacterReferenceNotTerminated, "expected '#' or a name after '&'")
	}
}

func (tz *Tokenizer) scanNumericReference() (Token, error) {
	hex := false
	c := tz.src.Current()
	if c == 'x' || c == 'X' {
		hex = true
		tz.src.Advance(1)
		c = tz.src.Current()
	}
	mark := tz.bufMark()
	for (hex && isHexDigit(c)) || (!hex && isDigit(c)) {
		tz.buf = append(tz.buf, c)
		tz.src.Advance(1)
		c = tz.src.Current()
	}
	digits := tz.bufText(mark)
	if len(digits) == 0 {
		return Token{}, tz.errKind(KindCharacterReferenceNotTerminated, "no digits in numeric character reference")
	}
	if c != ';' {
		return Token{}, tz.errKind(KindCharacterReferenceNotTerminated, "numeric character reference not terminated with ';'")
	}
	tz.src.Advance(1)
	return Token{Kind: KindEntity, EntityName: digits, IsNumeric: true, IsHex: hex}, nil
}

func (tz *Tokenizer) scanNamedReference() (Token, error) {
	mark := tz.bufMark()
	c := tz.src.Current()
	for isNameChar(c) {
		tz.buf = append(tz.buf, c)
		tz.src.Advance(1)
		c = tz.src.Current()
	}
	name := tz.bufText(mark)
	if c != ';' {
		return Token{}, tz.errKind(KindCharacterReferenceNotTerminated, "named entity reference not terminated with ';'")
	}
	tz.src.Advance(1)
	return Token{Kind: KindEntity, EntityName: name}, nil
}

// stateData implements the Data state from spec §4.2.1, the initial
// state of the machine.
func stateData(tz *Tokenizer) (stateFn, error) {
	c := tz.src.Current()
	switch {
	case c == eof:
		tz.emitEOF()
		return nil, nil
	case c == '&':
		tz.src.Advance(1)
		ent, err := tz.scanCharacterReference()
		if err != nil {
			return nil, err
		}
		repl, err := tz.resolveEntity(ent)
		if err != nil {
			return nil, err
		}
		runes := []rune(repl)
		if len(runes) == 0 {
			return stateData, nil
		}
		tz.emitChar(runes[0])
		if len(runes) > 1 {
			tz.pending = append(tz.pending, runes[1:]...)
		}
		return nil, nil
	case c == ']':
		if tz.src.ContinuesWith("]]>", true) {
			return nil, tz.errKind(KindInvalidCharData, "']]>' is not allowed in character data")
		}
		tz.src.Advance(1)
		tz.emitChar(']')
		return nil, nil
	case c == '<':
		tz.src.Advance(1)
		return stateTagOpen, nil
	default:
		tz.src.Advance(1)
		tz.emitChar(c)
		return nil, nil
	}
}
