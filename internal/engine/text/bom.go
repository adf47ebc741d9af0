package text

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// stripBOM strips a leading UTF-8 or UTF-16 byte-order mark from s. The
// UTF-8/UTF-16LE/UTF-16BE prefix check is done by hand; UTF-16 input is then
// decoded with golang.org/x/text/encoding/unicode's BOM-aware decoder. Opt-in via
// WithStripBOM, since a caller that already knows its source has no BOM
// shouldn't pay for the sniff.
func stripBOM(s string) string {
	const (
		bomUTF8    = "\xef\xbb\xbf"
		bomUTF16BE = "\xfe\xff"
		bomUTF16LE = "\xff\xfe"
	)

	switch {
	case bytes.HasPrefix([]byte(s), []byte(bomUTF8)):
		return s[len(bomUTF8):]
	case bytes.HasPrefix([]byte(s), []byte(bomUTF16LE)), bytes.HasPrefix([]byte(s), []byte(bomUTF16BE)):
		// Re-decode through the BOM-aware UTF-16 transformer so a UTF-16
		// encoded file (common for Windows-authored sources) is normalised
		// to UTF-8 text rather than merely having its BOM bytes dropped.
		decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
		out, _, err := transform.String(decoder, s)
		if err != nil {
			return s
		}
		return out
	default:
		return s
	}
}
