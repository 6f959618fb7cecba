package xmltok

import "fmt"

// ErrorKind identifies a specific well-formedness or lexical failure.
type ErrorKind int

const (
	KindEOF ErrorKind = iota
	KindInvalidStartTag
	KindInvalidEndTag
	KindInvalidName
	KindInvalidAttribute
	KindUniqueAttribute
	KindLtInAttributeValue
	KindInvalidCharData
	KindUndefinedMarkupDeclaration
	KindInvalidComment
	KindInvalidPI
	KindXMLDeclarationInvalid
	KindDoctypeInvalid
	KindInvalidPubID
	KindCharacterReferenceNotTerminated
	KindCharacterReferenceInvalidNumber
	KindCharacterReferenceInvalidCode
)

func (k ErrorKind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindInvalidStartTag:
		return "InvalidStartTag"
	case KindInvalidEndTag:
		return "InvalidEndTag"
	case KindInvalidName:
		return "InvalidName"
	case KindInvalidAttribute:
		return "InvalidAttribute"
	case KindUniqueAttribute:
		return "UniqueAttribute"
	case KindLtInAttributeValue:
		return "LtInAttributeValue"
	case KindInvalidCharData:
		return "InvalidCharData"
	case KindUndefinedMarkupDeclaration:
		return "UndefinedMarkupDeclaration"
	case KindInvalidComment:
		return "InvalidComment"
	case KindInvalidPI:
		return "InvalidPI"
	case KindXMLDeclarationInvalid:
		return "XmlDeclarationInvalid"
	case KindDoctypeInvalid:
		return "DoctypeInvalid"
	case KindInvalidPubID:
		return "InvalidPubId"
	case KindCharacterReferenceNotTerminated:
		return "CharacterReferenceNotTerminated"
	case KindCharacterReferenceInvalidNumber:
		return "CharacterReferenceInvalidNumber"
	case KindCharacterReferenceInvalidCode:
		return "CharacterReferenceInvalidCode"
	default:
		return "Unknown"
	}
}

// SyntaxError reports a well-formedness or lexical error with the
// position it was detected at. After a SyntaxError is returned from
// NextToken, the Tokenizer is in an unspecified state and must not be
// reused (spec §6.2).
type SyntaxError struct {
	Kind    ErrorKind
	Offset  int64
	Line    int
	Column  int
	Detail  string
	Err     error
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.String()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return fmt.Sprintf("xml syntax error at line %d, column %d (offset %d): %s", e.Line, e.Column, e.Offset, msg)
}

func (e *SyntaxError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is a *SyntaxError of the same Kind,
// allowing callers to use errors.Is(err, &SyntaxError{Kind: KindXxx})
// without needing a shared sentinel instance.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	if !ok || t == nil {
		return false
	}
	return e.Kind == t.Kind
}
