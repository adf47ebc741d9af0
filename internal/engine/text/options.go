package text

// Option configures a Text during construction.
type Option func(*Text)

// WithEncoding selects the column encoding used to interpret Point.Column
// in every subsequent call against the constructed Text. Defaults to UTF8.
func WithEncoding(enc Encoding) Option {
	return func(t *Text) {
		t.encoding = enc
	}
}

// WithStripBOM strips a leading UTF-8 or UTF-16 byte-order mark from the
// initial content before the EOL index is built. Line terminators are never
// normalised regardless of this option: a lone \r is preserved exactly as
// written, the same as any other byte in the document.
func WithStripBOM() Option {
	return func(t *Text) {
		t.stripBOM = true
	}
}
