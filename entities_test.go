package xmltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveNamedPredefined(t *testing.T) {
	// given
	tz := NewTokenizer(NewCharSource(nil))

	// when/then
	for name, want := range map[string]string{
		"amp": "&", "lt": "<", "gt": ">", "apos": "'", "quot": "\"",
	} {
		got, err := tz.resolveNamed(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestResolveNamedCustomTable(t *testing.T) {
	// given
	tz := NewTokenizer(NewCharSource(nil), WithEntities(NamedEntityTable{"copy": "©"}))

	// when
	got, err := tz.resolveNamed("copy")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "©", got)
}

func TestResolveNamedUnknown(t *testing.T) {
	// given
	tz := NewTokenizer(NewCharSource(nil))

	// when
	_, err := tz.resolveNamed("bogus")

	// then
	se, ok := err.(*SyntaxError)
	assert.True(t, ok)
	assert.Equal(t, KindCharacterReferenceInvalidCode, se.Kind)
}

func TestResolveNumericDecimalAndHex(t *testing.T) {
	// given
	tz := NewTokenizer(NewCharSource(nil))

	// when
	dec, err1 := tz.resolveNumeric("65", false)
	hex, err2 := tz.resolveNumeric("41", true)

	// then
	assert.NoError(t, err1)
	assert.Equal(t, "A", dec)
	assert.NoError(t, err2)
	assert.Equal(t, "A", hex)
}

func TestResolveNumericRejectsSurrogate(t *testing.T) {
	// given
	tz := NewTokenizer(NewCharSource(nil))

	// when
	_, err := tz.resolveNumeric("D800", true)

	// then
	se, ok := err.(*SyntaxError)
	assert.True(t, ok)
	assert.Equal(t, KindCharacterReferenceInvalidNumber, se.Kind)
}

func TestResolveNumericRejectsOutOfRange(t *testing.T) {
	// given
	tz := NewTokenizer(NewCharSource(nil))

	// when
	_, err := tz.resolveNumeric("FFFE", true)

	// then
	se, ok := err.(*SyntaxError)
	assert.True(t, ok)
	assert.Equal(t, KindCharacterReferenceInvalidNumber, se.Kind)
}

func TestResolveNumericBadDigit(t *testing.T) {
	// given
	tz := NewTokenizer(NewCharSource(nil))

	// when
	_, err := tz.resolveNumeric("12z", false)

	// then
	assert.Error(t, err)
}
