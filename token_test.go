package xmltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenKindString(t *testing.T) {
	// given/when/then
	assert.Equal(t, "Character", KindCharacter.String())
	assert.Equal(t, "OpenTag", KindOpenTag.String())
	assert.Equal(t, "Unknown", TokenKind(255).String())
}

func TestTokenResetPreservesAttributesBackingArray(t *testing.T) {
	// given
	tok := &Token{Kind: KindOpenTag, Name: "a"}
	tok.Attributes = append(tok.Attributes, Attribute{Name: "x", Value: "1"})
	backing := tok.Attributes

	// when
	tok.reset()

	// then
	assert.Equal(t, TokenKind(0), tok.Kind)
	assert.Equal(t, "", tok.Name)
	assert.Len(t, tok.Attributes, 0)
	assert.Equal(t, cap(backing), cap(tok.Attributes))
}

func TestTokenResetOnFreshToken(t *testing.T) {
	// given
	var tok Token

	// when
	tok.reset()

	// then
	assert.Nil(t, tok.Attributes)
}
