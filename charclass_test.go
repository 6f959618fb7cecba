package xmltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNameStartChar(t *testing.T) {
	// given/when/then
	assert.True(t, isNameStartChar('a'))
	assert.True(t, isNameStartChar('Z'))
	assert.True(t, isNameStartChar('_'))
	assert.True(t, isNameStartChar(':'))
	assert.True(t, isNameStartChar('À'))
	assert.False(t, isNameStartChar('0'))
	assert.False(t, isNameStartChar('-'))
	assert.False(t, isNameStartChar(' '))
}

func TestIsNameChar(t *testing.T) {
	// given/when/then
	assert.True(t, isNameChar('a'))
	assert.True(t, isNameChar('0'))
	assert.True(t, isNameChar('-'))
	assert.True(t, isNameChar('.'))
	assert.True(t, isNameChar('·'))
	assert.False(t, isNameChar(' '))
	assert.False(t, isNameChar('<'))
}

func TestIsPubidChar(t *testing.T) {
	// given/when/then
	assert.True(t, isPubidChar(' '))
	assert.True(t, isPubidChar('A'))
	assert.True(t, isPubidChar('9'))
	assert.True(t, isPubidChar('-'))
	assert.False(t, isPubidChar('<'))
	assert.False(t, isPubidChar('\t'))
}

func TestIsChar(t *testing.T) {
	// given/when/then
	assert.True(t, isChar('\t'))
	assert.True(t, isChar('\n'))
	assert.True(t, isChar(' '))
	assert.True(t, isChar(0x10FFFF))
	assert.False(t, isChar(0x0))
	assert.False(t, isChar(0xD800))
	assert.False(t, isChar(0xFFFE))
}

func TestHexDigitValue(t *testing.T) {
	// given/when/then
	assert.Equal(t, 0, hexDigitValue('0'))
	assert.Equal(t, 10, hexDigitValue('a'))
	assert.Equal(t, 15, hexDigitValue('F'))
	assert.Equal(t, -1, hexDigitValue('g'))
}
