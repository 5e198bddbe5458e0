package agent

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

var readabilityLabels = []string{
	"Very Easy",
	"Easy",
	"Fairly Easy",
	"Standard",
	"Fairly Difficult",
	"Difficult",
	"Very Difficult",
	"Extremely Difficult",
	"Academic",
	"Technical",
}

var stopWords = map[string]bool{
	"the": true, "to": true, "and": true, "a": true, "in": true,
	"it": true, "is": true, "of": true, "that": true, "for": true,
	"on": true, "with": true, "as": true, "was": true, "be": true,
	"this": true, "by": true, "are": true, "you": true, "from": true,
}

// Sentences splits text on '.', after turning newlines into spaces, and
// drops fragments that are empty once trimmed.
func Sentences(text string) []string {
	var out []string
	for _, s := range strings.Split(strings.ReplaceAll(text, "\n", " "), ".") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Summarize picks the first, middle and last sentences. Text with fewer than
// three sentences is returned unchanged.
func Summarize(text string) string {
	s := Sentences(text)
	n := len(s)
	if n < 3 {
		return text
	}
	return s[0] + ". " + s[n/2] + ". " + s[n-1] + "."
}

type WordCount struct {
	Word  string
	Count int
}

// TextAnalysis holds the statistics of one analyze call
type TextAnalysis struct {
	WordCount         int
	CharCount         int
	CharCountNoSpaces int
	SentenceCount     int
	AvgWordLength     float64
	AvgSentenceLength float64
	ReadabilityScore  float64
	ReadabilityLevel  int
	ReadabilityLabel  string
	CommonWords       []WordCount
}

// AnalyzeText computes word, character and sentence statistics, a 1-10
// readability level and the topWords most frequent non-stop words.
func AnalyzeText(text string, topWords int) TextAnalysis {
	words := strings.Fields(text)
	a := TextAnalysis{
		WordCount:         len(words),
		CharCount:         utf8.RuneCountInString(text),
		CharCountNoSpaces: utf8.RuneCountInString(strings.ReplaceAll(text, " ", "")),
		SentenceCount:     len(Sentences(text)),
	}

	wordDiv := float64(max(a.WordCount, 1))
	sentenceDiv := float64(max(a.SentenceCount, 1))

	letters := 0
	for _, w := range words {
		letters += utf8.RuneCountInString(w)
	}
	a.AvgWordLength = float64(letters) / wordDiv
	a.AvgSentenceLength = float64(a.WordCount) / sentenceDiv

	a.ReadabilityScore = 0.39*a.AvgSentenceLength + 11.8*(float64(a.CharCountNoSpaces)/wordDiv) - 15.59
	a.ReadabilityLevel = min(10, max(1, int(math.Round(a.ReadabilityScore/10))))
	a.ReadabilityLabel = readabilityLabels[a.ReadabilityLevel-1]

	a.CommonWords = commonWords(words, topWords)
	return a
}

func commonWords(words []string, limit int) []WordCount {
	if limit <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		lw := strings.ToLower(w)
		if stopWords[lw] {
			continue
		}
		if counts[lw] == 0 {
			order = append(order, lw)
		}
		counts[lw]++
	}

	// Stable sort keeps first-seen order among equal counts
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}

	result := make([]WordCount, 0, len(order))
	for _, w := range order {
		result = append(result, WordCount{Word: w, Count: counts[w]})
	}
	return result
}

// Report renders the analysis in the fixed text layout
func (a TextAnalysis) Report() string {
	var sb strings.Builder
	sb.WriteString("Text Analysis:\n\n")
	fmt.Fprintf(&sb, "Word Count: %d\n", a.WordCount)
	fmt.Fprintf(&sb, "Character Count: %d (without spaces: %d)\n", a.CharCount, a.CharCountNoSpaces)
	fmt.Fprintf(&sb, "Sentence Count: %d\n", a.SentenceCount)
	fmt.Fprintf(&sb, "Average Word Length: %.2f characters\n", a.AvgWordLength)
	fmt.Fprintf(&sb, "Average Sentence Length: %.2f words\n", a.AvgSentenceLength)
	fmt.Fprintf(&sb, "Readability Level: %d/10 (%s)\n\n", a.ReadabilityLevel, a.ReadabilityLabel)

	if len(a.CommonWords) > 0 {
		sb.WriteString("Most Common Words:\n")
		for _, wc := range a.CommonWords {
			fmt.Fprintf(&sb, "- %s: %d occurrences\n", wc.Word, wc.Count)
		}
	}
	return sb.String()
}
