package xmltok

// stateCData implements spec §4.2.5: '<![CDATA[' has already been
// consumed. Content is copied verbatim up to the first ']]>'.
func stateCData(tz *Tokenizer) (stateFn, error) {
	mark := tz.bufMark()
	for {
		if tz.src.ContinuesWith("]]>", true) {
			tz.src.Advance(3)
			text := tz.bufText(mark)
			tz.tok.reset()
			tz.tok.Kind = KindCData
			tz.tok.Text = text
			return nil, nil
		}
		if tz.src.Current() == eof {
			tz.buf = tz.buf[:mark]
			return nil, tz.errKind(KindEOF, "unexpected end of input in CDATA section")
		}
		before := len(tz.buf)
		tz.buf = scanNotDelim(tz.src, tz.buf, "]")
		if len(tz.buf) == before {
			// current char is ']' but not the start of ']]>'.
			tz.buf = append(tz.buf, tz.src.Current())
			tz.src.Advance(1)
		}
	}
}

// stateCommentBody implements spec §4.2.6: '<!--' has already been
// consumed. The only terminator recognized anywhere in the content is
// the literal '-->'; a bare '--' that isn't immediately followed by
// '>' is permitted mid-comment and copied through verbatim, matching
// the worked example in spec §8 rather than the stricter per-character
// reading of the state's prose (see SPEC_FULL.md's Open Question
// decisions).
func stateCommentBody(tz *Tokenizer) (stateFn, error) {
	mark := tz.bufMark()
	for {
		c := tz.src.Current()
		switch {
		case c == eof:
			tz.buf = tz.buf[:mark]
			return nil, tz.errKind(KindInvalidComment, "unexpected end of input in comment")
		case tz.src.ContinuesWith("-->", true):
			tz.src.Advance(3)
			text := tz.bufText(mark)
			tz.tok.reset()
			tz.tok.Kind = KindComment
			tz.tok.Text = text
			return nil, nil
		case c != '-':
			if !isChar(c) {
				tz.buf = tz.buf[:mark]
				return nil, tz.errKind(KindInvalidComment, "invalid character in comment")
			}
			tz.buf = append(tz.buf, c)
			tz.src.Advance(1)
		default:
			// a '-' that isn't the start of '-->'; copy it through.
			tz.buf = append(tz.buf, '-')
			tz.src.Advance(1)
		}
	}
}
