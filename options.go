package xmltok

// Option configures a Tokenizer at construction time, following the
// functional-options pattern jacoelho-xsd/pkg/xmltext uses for its
// (much larger) Options type, scaled down to what this tokenizer
// actually needs.
type Option func(*Tokenizer)

// WithEntities overrides the named-entity table consulted for
// non-predefined entity references. The five predefined entities
// (amp, lt, gt, apos, quot) always resolve regardless of this table.
func WithEntities(table NamedEntityTable) Option {
	return func(tz *Tokenizer) {
		tz.entities = table
	}
}

// WithMaxNameLength bounds the number of characters accumulated for a
// single Name (element, attribute, PI target, or DOCTYPE name) before
// the tokenizer gives up with a KindInvalidName error. Zero (the
// default) means unbounded.
func WithMaxNameLength(n int) Option {
	return func(tz *Tokenizer) {
		tz.maxNameLength = n
	}
}
