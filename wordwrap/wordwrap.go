// Package wordwrap reflows free text into fixed-width lines using greedy
// word packing. Newlines already present in the input are forced breaks and
// always survive, so blank lines keep separating paragraphs after a reflow.
package wordwrap

// InPlace rewrites b so that no line packs more words than fit in width
// columns, overwriting the last space on an overfull line with a newline.
// The buffer length never changes: breaks only ever replace existing
// spaces, so a word longer than width stays intact on an over-width line,
// and a line with no space to convert is left alone. Existing newlines
// reset the column count and are never removed. InPlace returns b.
//
// The scan is a single forward pass. It tracks the start of the current
// output line and the most recent space seen on it; when the column count
// reaches width with a candidate space available, that space becomes the
// break. Spaces that never become breaks are kept as-is, which preserves
// trailing spaces before a forced newline and interior runs of spaces
// mid-line.
func InPlace(b []byte, width int) []byte {
	lineStart := 0
	lastSpace := -1

	for pos := 0; pos < len(b); pos++ {
		if lastSpace >= 0 && pos-lineStart >= width {
			b[lastSpace] = '\n'
			lineStart = lastSpace + 1
			lastSpace = -1
		}
		switch b[pos] {
		case '\n':
			lineStart = pos
			lastSpace = -1
		case ' ':
			lastSpace = pos
		}
	}
	return b
}

// Wrap returns text reflowed to width columns per InPlace, leaving the
// input untouched.
func Wrap(text string, width int) string {
	return string(InPlace([]byte(text), width))
}
