package xmltok

import "strings"

// stateProcessingStart implements spec §4.2.11: '<?' has already been
// consumed and this was not recognized as the start of an XML
// declaration.
func stateProcessingStart(tz *Tokenizer) (stateFn, error) {
	target, err := tz.readName()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(target, "xml") {
		return nil, tz.errKind(KindInvalidPI, "processing instruction target must not be 'xml'")
	}
	c := tz.src.Current()
	switch {
	case c == '?' && tz.src.ContinuesWith("?>", true):
		tz.src.Advance(2)
		tz.tok.reset()
		tz.tok.Kind = KindProcessingInstruction
		tz.tok.Target = target
		return nil, nil
	case isWhitespace(c):
		tz.src.Advance(1)
		tz.piTarget = target
		return stateProcessingContent, nil
	case c == eof:
		return nil, tz.errKind(KindEOF, "unexpected end of input in processing instruction")
	default:
		return nil, tz.errKind(KindInvalidPI, "expected whitespace or '?>' after processing instruction target")
	}
}

// stateProcessingContent accumulates content until '?>' (spec
// §4.2.11). A '?' not immediately followed by '>' is copied through
// literally.
func stateProcessingContent(tz *Tokenizer) (stateFn, error) {
	mark := tz.bufMark()
	for {
		c := tz.src.Current()
		if c == eof {
			tz.buf = tz.buf[:mark]
			return nil, tz.errKind(KindEOF, "unexpected end of input in processing instruction")
		}
		if c == '?' {
			if tz.src.ContinuesWith("?>", true) {
				tz.src.Advance(2)
				text := tz.bufText(mark)
				tz.tok.reset()
				tz.tok.Kind = KindProcessingInstruction
				tz.tok.Target = tz.piTarget
				tz.tok.Text = text
				return nil, nil
			}
			tz.buf = append(tz.buf, '?')
			tz.src.Advance(1)
			continue
		}
		before := len(tz.buf)
		tz.buf = scanNotDelim(tz.src, tz.buf, "?")
		if len(tz.buf) == before {
			tz.buf = append(tz.buf, c)
			tz.src.Advance(1)
		}
	}
}
