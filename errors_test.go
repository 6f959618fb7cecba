package xmltok

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxErrorMessage(t *testing.T) {
	// given
	err := &SyntaxError{Kind: KindInvalidStartTag, Offset: 12, Line: 2, Column: 3, Detail: "boom"}

	// when
	msg := err.Error()

	// then
	assert.Equal(t, "xml syntax error at line 2, column 3 (offset 12): InvalidStartTag: boom", msg)
}

func TestSyntaxErrorIsMatchesByKind(t *testing.T) {
	// given
	a := &SyntaxError{Kind: KindInvalidName, Offset: 1}
	b := &SyntaxError{Kind: KindInvalidName, Offset: 999}
	c := &SyntaxError{Kind: KindInvalidAttribute}

	// when/then
	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestSyntaxErrorUnwrap(t *testing.T) {
	// given
	err := &SyntaxError{Kind: KindEOF, Err: io.ErrUnexpectedEOF}

	// when/then
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestErrorKindStringCoversAllKinds(t *testing.T) {
	// given
	kinds := []ErrorKind{
		KindEOF, KindInvalidStartTag, KindInvalidEndTag, KindInvalidName,
		KindInvalidAttribute, KindUniqueAttribute, KindLtInAttributeValue,
		KindInvalidCharData, KindUndefinedMarkupDeclaration, KindInvalidComment,
		KindInvalidPI, KindXMLDeclarationInvalid, KindDoctypeInvalid,
		KindInvalidPubID, KindCharacterReferenceNotTerminated,
		KindCharacterReferenceInvalidNumber, KindCharacterReferenceInvalidCode,
	}

	// when/then
	for _, k := range kinds {
		assert.NotEqual(t, "Unknown", k.String())
	}
}
