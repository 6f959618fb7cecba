package xmltok

// stateTagOpen implements the TagOpen state from spec §4.2.3: '<' has
// already been consumed, and this dispatches on what follows it.
func stateTagOpen(tz *Tokenizer) (stateFn, error) {
	c := tz.src.Current()
	switch {
	case c == '!':
		tz.src.Advance(1)
		return stateMarkupDeclaration, nil
	case c == '?':
		tz.src.Advance(1)
		if tz.atDocumentStart() && tz.src.ContinuesWith("xml", true) {
			tz.src.Advance(3)
			if !isNameChar(tz.src.Current()) {
				return stateDeclarationStart, nil
			}
			// a longer target like "xml-stylesheet" or "xmlns", not
			// the reserved "xml" declaration target.
			tz.src.Back(3)
		}
		return stateProcessingStart, nil
	case c == '/':
		tz.src.Advance(1)
		return stateTagEnd, nil
	case isNameStartChar(c):
		tz.tagAttrs = tz.tagAttrs[:0]
		tz.tagSelfClosing = false
		return stateTagName, nil
	case c == eof:
		return nil, tz.errKind(KindEOF, "unexpected end of input after '<'")
	default:
		return nil, tz.errKind(KindInvalidStartTag, "unexpected character after '<'")
	}
}

// stateMarkupDeclaration implements spec §4.2.4: '<!' has already been
// consumed.
func stateMarkupDeclaration(tz *Tokenizer) (stateFn, error) {
	switch {
	case tz.src.ContinuesWith("--", true):
		tz.src.Advance(2)
		return stateCommentBody, nil
	case tz.src.ContinuesWith("DOCTYPE", false):
		tz.src.Advance(len("DOCTYPE"))
		return stateDoctype, nil
	case tz.src.ContinuesWith("[CDATA[", true):
		tz.src.Advance(len("[CDATA["))
		return stateCData, nil
	default:
		return nil, tz.errKind(KindUndefinedMarkupDeclaration, "unrecognized markup declaration")
	}
}

func (tz *Tokenizer) emitOpenTag() {
	tz.tok.reset()
	tz.tok.Kind = KindOpenTag
	tz.tok.Name = tz.tagName
	tz.tok.Attributes = append(tz.tok.Attributes, tz.tagAttrs...)
	tz.tok.SelfClosing = tz.tagSelfClosing
}

// stateTagName reads the element name and dispatches on what follows
// it (spec §4.2.7).
func stateTagName(tz *Tokenizer) (stateFn, error) {
	name, err := tz.readName()
	if err != nil {
		return nil, err
	}
	tz.tagName = name
	c := tz.src.Current()
	switch {
	case c == '>':
		tz.src.Advance(1)
		tz.emitOpenTag()
		return nil, nil
	case isWhitespace(c):
		return stateAttributeBeforeName, nil
	case c == '/':
		tz.src.Advance(1)
		return stateTagSelfClosing, nil
	case c == eof:
		return nil, tz.errKind(KindEOF, "unexpected end of input in start tag")
	default:
		return nil, tz.errKind(KindInvalidName, "unexpected character in tag name")
	}
}

// stateAttributeBeforeName skips whitespace between attributes (or
// between the tag name and the first attribute) and dispatches on
// what comes next.
func stateAttributeBeforeName(tz *Tokenizer) (stateFn, error) {
	c := tz.src.Current()
	for isWhitespace(c) {
		tz.src.Advance(1)
		c = tz.src.Current()
	}
	switch {
	case c == '/':
		tz.src.Advance(1)
		return stateTagSelfClosing, nil
	case c == '>':
		tz.src.Advance(1)
		tz.emitOpenTag()
		return nil, nil
	case isNameStartChar(c):
		return stateAttributeName, nil
	case c == eof:
		return nil, tz.errKind(KindEOF, "unexpected end of input in start tag")
	default:
		return nil, tz.errKind(KindInvalidAttribute, "unexpected character before attribute name")
	}
}

// stateAttributeName reads one attribute name, enforces uniqueness
// against the attributes collected so far on this tag, and requires
// the following '='.
func stateAttributeName(tz *Tokenizer) (stateFn, error) {
	name, err := tz.readName()
	if err != nil {
		return nil, err
	}
	for _, a := range tz.tagAttrs {
		if a.Name == name {
			return nil, tz.errKind(KindUniqueAttribute, "duplicate attribute '"+name+"'")
		}
	}
	tz.tagAttrs = append(tz.tagAttrs, Attribute{Name: name})
	c := tz.src.Current()
	for isWhitespace(c) {
		tz.src.Advance(1)
		c = tz.src.Current()
	}
	if c != '=' {
		return nil, tz.errKind(KindInvalidAttribute, "expected '=' after attribute name")
	}
	tz.src.Advance(1)
	return stateAttributeBeforeValue, nil
}

func stateAttributeBeforeValue(tz *Tokenizer) (stateFn, error) {
	c := tz.src.Current()
	for isWhitespace(c) {
		tz.src.Advance(1)
		c = tz.src.Current()
	}
	if c != '"' && c != '\'' {
		return nil, tz.errKind(KindInvalidAttribute, "expected a quote to start attribute value")
	}
	tz.quoteChar = c
	tz.src.Advance(1)
	return stateAttributeValue, nil
}

// stateAttributeValue accumulates the attribute value up to the
// matching quote, resolving character references inline (spec
// §4.2.7's AttributeValue).
func stateAttributeValue(tz *Tokenizer) (stateFn, error) {
	quote := tz.quoteChar
	mark := tz.bufMark()
	for {
		c := tz.src.Current()
		switch {
		case c == quote:
			tz.src.Advance(1)
			value := tz.bufText(mark)
			tz.tagAttrs[len(tz.tagAttrs)-1].Value = value
			return stateAttributeAfterValue, nil
		case c == '&':
			tz.src.Advance(1)
			ent, err := tz.scanCharacterReference()
			if err != nil {
				tz.buf = tz.buf[:mark]
				return nil, err
			}
			repl, err := tz.resolveEntity(ent)
			if err != nil {
				tz.buf = tz.buf[:mark]
				return nil, err
			}
			tz.buf = append(tz.buf, []rune(repl)...)
		case c == '<':
			tz.buf = tz.buf[:mark]
			return nil, tz.errKind(KindLtInAttributeValue, "'<' is not allowed in an attribute value")
		case c == eof:
			tz.buf = tz.buf[:mark]
			return nil, tz.errKind(KindEOF, "unexpected end of input in attribute value")
		default:
			before := len(tz.buf)
			tz.buf = scanNotDelim(tz.src, tz.buf, string(quote)+"&<")
			if len(tz.buf) == before {
				tz.buf = append(tz.buf, c)
				tz.src.Advance(1)
			}
		}
	}
}

func stateAttributeAfterValue(tz *Tokenizer) (stateFn, error) {
	c := tz.src.Current()
	switch {
	case isWhitespace(c):
		return stateAttributeBeforeName, nil
	case c == '/':
		tz.src.Advance(1)
		return stateTagSelfClosing, nil
	case c == '>':
		tz.src.Advance(1)
		tz.emitOpenTag()
		return nil, nil
	case c == eof:
		return nil, tz.errKind(KindEOF, "unexpected end of input in start tag")
	default:
		return nil, tz.errKind(KindInvalidAttribute, "expected whitespace, '/' or '>' after attribute value")
	}
}

func stateTagSelfClosing(tz *Tokenizer) (stateFn, error) {
	c := tz.src.Current()
	if c == '>' {
		tz.src.Advance(1)
		tz.tagSelfClosing = true
		tz.emitOpenTag()
		return nil, nil
	}
	if c == eof {
		return nil, tz.errKind(KindEOF, "unexpected end of input after '/'")
	}
	return nil, tz.errKind(KindInvalidName, "expected '>' after '/'")
}

// stateTagEnd implements the end-tag grammar from spec §4.2.8: '</'
// has already been consumed.
func stateTagEnd(tz *Tokenizer) (stateFn, error) {
	name, err := tz.readName()
	if err != nil {
		if tz.src.Current() == eof {
			return nil, tz.errKind(KindEOF, "unexpected end of input in end tag")
		}
		if se, ok := err.(*SyntaxError); ok && se.Kind == KindInvalidName {
			se.Kind = KindInvalidEndTag
		}
		return nil, err
	}
	c := tz.src.Current()
	for isWhitespace(c) {
		tz.src.Advance(1)
		c = tz.src.Current()
	}
	if c == eof {
		return nil, tz.errKind(KindEOF, "unexpected end of input in end tag")
	}
	if c != '>' {
		return nil, tz.errKind(KindInvalidEndTag, "expected '>' to close end tag")
	}
	tz.src.Advance(1)
	tz.tok.reset()
	tz.tok.Kind = KindCloseTag
	tz.tok.Name = name
	return nil, nil
}
