package domain

// TextSegment is a cleaned portion of document text, typically one PDF page.
// Segments are immutable once produced by the extractor: Content is non-empty
// and WordCount equals the whitespace-delimited token count of Content.
type TextSegment struct {
	Content   string
	Page      int
	WordCount int
}

// TotalWords sums the word counts of the given segments.
func TotalWords(segments []TextSegment) int {
	total := 0
	for _, s := range segments {
		total += s.WordCount
	}
	return total
}
