package xmltok

// stateDeclarationStart implements spec §4.2.10: '<?xml' has already
// been consumed. If the next character isn't whitespace this was
// never a real declaration; it falls through to a processing
// instruction with target "xml", which is always invalid.
func stateDeclarationStart(tz *Tokenizer) (stateFn, error) {
	if !isWhitespace(tz.src.Current()) {
		return nil, tz.errKind(KindInvalidPI, "processing instruction target must not be 'xml'")
	}
	tz.src.Advance(1)
	tz.declEncoding = ""
	tz.declHasEncoding = false
	tz.declStandalone = StandaloneUnspecified
	return stateDeclarationVersion, nil
}

func (tz *Tokenizer) skipDeclWhitespace() {
	for isWhitespace(tz.src.Current()) {
		tz.src.Advance(1)
	}
}

// readDeclValue reads one pseudo-attribute's "=" and quoted value,
// assuming the pseudo-attribute's name has already been consumed.
func (tz *Tokenizer) readDeclValue() (string, error) {
	tz.skipDeclWhitespace()
	if tz.src.Current() != '=' {
		return "", tz.errKind(KindXMLDeclarationInvalid, "expected '=' in XML declaration pseudo-attribute")
	}
	tz.src.Advance(1)
	tz.skipDeclWhitespace()
	q := tz.src.Current()
	if q != '"' && q != '\'' {
		return "", tz.errKind(KindXMLDeclarationInvalid, "expected a quoted value in XML declaration")
	}
	tz.src.Advance(1)
	mark := tz.bufMark()
	tz.buf = scanNotDelim(tz.src, tz.buf, string(q))
	if tz.src.Current() != q {
		tz.buf = tz.buf[:mark]
		return "", tz.errKind(KindXMLDeclarationInvalid, "unterminated quoted value in XML declaration")
	}
	value := tz.bufText(mark)
	tz.src.Advance(1)
	return value, nil
}

func validateEncodingName(s string) bool {
	if len(s) == 0 {
		return false
	}
	runes := []rune(s)
	first := runes[0]
	if !((first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z')) {
		return false
	}
	for _, r := range runes[1:] {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

func stateDeclarationVersion(tz *Tokenizer) (stateFn, error) {
	tz.skipDeclWhitespace()
	if !tz.src.ContinuesWith("version", true) {
		return nil, tz.errKind(KindXMLDeclarationInvalid, "expected 'version' pseudo-attribute")
	}
	tz.src.Advance(len("version"))
	version, err := tz.readDeclValue()
	if err != nil {
		return nil, err
	}
	if version == "" {
		return nil, tz.errKind(KindXMLDeclarationInvalid, "version value must not be empty")
	}
	tz.declVersion = version
	return stateDeclarationAfterVersion, nil
}

func stateDeclarationEncoding(tz *Tokenizer) (stateFn, error) {
	tz.src.Advance(len("encoding"))
	enc, err := tz.readDeclValue()
	if err != nil {
		return nil, err
	}
	if !validateEncodingName(enc) {
		return nil, tz.errKind(KindXMLDeclarationInvalid, "invalid encoding name")
	}
	tz.declEncoding = enc
	tz.declHasEncoding = true
	return stateDeclarationAfterEncoding, nil
}

func stateDeclarationStandalone(tz *Tokenizer) (stateFn, error) {
	tz.src.Advance(len("standalone"))
	v, err := tz.readDeclValue()
	if err != nil {
		return nil, err
	}
	switch v {
	case "yes":
		tz.declStandalone = StandaloneYes
	case "no":
		tz.declStandalone = StandaloneNo
	default:
		return nil, tz.errKind(KindXMLDeclarationInvalid, "standalone must be 'yes' or 'no'")
	}
	return stateDeclarationAfterStandalone, nil
}

// declAfterValue is shared by the three "after a pseudo-attribute
// value" states: if whitespace follows, look for the next permitted
// pseudo-attribute or the closing '?>'; if not, '?>' must come
// immediately.
func (tz *Tokenizer) declAfterValue(allowEncoding, allowStandalone bool) (stateFn, error) {
	hadWS := false
	for isWhitespace(tz.src.Current()) {
		tz.src.Advance(1)
		hadWS = true
	}
	if tz.src.ContinuesWith("?>", true) {
		tz.src.Advance(2)
		tz.emitDeclaration()
		return nil, nil
	}
	if !hadWS {
		if tz.src.Current() == eof {
			return nil, tz.errKind(KindEOF, "unexpected end of input in XML declaration")
		}
		return nil, tz.errKind(KindXMLDeclarationInvalid, "expected whitespace or '?>'")
	}
	switch {
	case allowEncoding && tz.src.ContinuesWith("encoding", true):
		return stateDeclarationEncoding, nil
	case allowStandalone && tz.src.ContinuesWith("standalone", true):
		return stateDeclarationStandalone, nil
	default:
		return nil, tz.errKind(KindXMLDeclarationInvalid, "unexpected content in XML declaration")
	}
}

func stateDeclarationAfterVersion(tz *Tokenizer) (stateFn, error) {
	return tz.declAfterValue(true, true)
}

func stateDeclarationAfterEncoding(tz *Tokenizer) (stateFn, error) {
	return tz.declAfterValue(false, true)
}

func stateDeclarationAfterStandalone(tz *Tokenizer) (stateFn, error) {
	return tz.declAfterValue(false, false)
}

func (tz *Tokenizer) emitDeclaration() {
	tz.tok.reset()
	tz.tok.Kind = KindDeclaration
	tz.tok.Version = tz.declVersion
	tz.tok.HasVersion = true
	tz.tok.Encoding = tz.declEncoding
	tz.tok.HasEncoding = tz.declHasEncoding
	tz.tok.Standalone = tz.declStandalone
}
