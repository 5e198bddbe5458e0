package agent_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"commander/agent"
)

var _ = Describe("Text helpers", func() {
	Describe("Sentences", func() {
		It("splits on periods across lines and drops blanks", func() {
			Expect(agent.Sentences("One.\nTwo. . Three")).To(Equal([]string{"One", "Two", "Three"}))
		})

		It("returns nothing for empty text", func() {
			Expect(agent.Sentences("")).To(BeEmpty())
		})
	})

	Describe("Summarize", func() {
		It("returns text with fewer than three sentences unchanged", func() {
			Expect(agent.Summarize("A. B.")).To(Equal("A. B."))
		})

		It("picks the first, middle and last of five sentences", func() {
			Expect(agent.Summarize("One. Two. Three. Four. Five.")).To(Equal("One. Three. Five."))
		})

		It("uses n/2 as the middle for an even count", func() {
			Expect(agent.Summarize("a. b. c. d.")).To(Equal("a. c. d."))
		})
	})

	Describe("AnalyzeText", func() {
		const sample = "The cat sat. The cat ran. The dog slept."

		It("counts words, characters and sentences", func() {
			a := agent.AnalyzeText(sample, 5)
			Expect(a.WordCount).To(Equal(9))
			Expect(a.CharCount).To(Equal(40))
			Expect(a.CharCountNoSpaces).To(Equal(32))
			Expect(a.SentenceCount).To(Equal(3))
			Expect(a.AvgWordLength).To(BeNumerically("~", 32.0/9.0, 1e-9))
			Expect(a.AvgSentenceLength).To(BeNumerically("~", 3.0, 1e-9))
		})

		It("scores readability from the grade-level formula", func() {
			a := agent.AnalyzeText(sample, 5)
			expected := 0.39*3.0 + 11.8*(32.0/9.0) - 15.59
			Expect(a.ReadabilityScore).To(BeNumerically("~", expected, 1e-9))
			Expect(a.ReadabilityLevel).To(Equal(3))
			Expect(a.ReadabilityLabel).To(Equal("Fairly Easy"))
		})

		It("ranks common words without stop words or short words", func() {
			a := agent.AnalyzeText(sample, 5)
			Expect(a.CommonWords).To(Equal([]agent.WordCount{
				{Word: "cat", Count: 2},
				{Word: "sat.", Count: 1},
				{Word: "ran.", Count: 1},
				{Word: "dog", Count: 1},
				{Word: "slept.", Count: 1},
			}))
		})

		It("honours the top word limit", func() {
			Expect(agent.AnalyzeText(sample, 2).CommonWords).To(HaveLen(2))
		})

		It("clamps the readability level to 1..10", func() {
			Expect(agent.AnalyzeText("", 5).ReadabilityLevel).To(Equal(1))
			Expect(agent.AnalyzeText("", 5).ReadabilityLabel).To(Equal("Very Easy"))

			long := strings.Repeat("x", 200)
			a := agent.AnalyzeText(long, 5)
			Expect(a.ReadabilityLevel).To(Equal(10))
			Expect(a.ReadabilityLabel).To(Equal("Technical"))
		})

		It("counts characters, not bytes", func() {
			a := agent.AnalyzeText("café naïve", 5)
			Expect(a.CharCount).To(Equal(10))
			Expect(a.CharCountNoSpaces).To(Equal(9))
		})
	})

	Describe("Report", func() {
		It("renders the fixed layout", func() {
			report := agent.AnalyzeText("The cat sat. The cat ran. The dog slept.", 5).Report()
			Expect(report).To(Equal("Text Analysis:\n\n" +
				"Word Count: 9\n" +
				"Character Count: 40 (without spaces: 32)\n" +
				"Sentence Count: 3\n" +
				"Average Word Length: 3.56 characters\n" +
				"Average Sentence Length: 3.00 words\n" +
				"Readability Level: 3/10 (Fairly Easy)\n\n" +
				"Most Common Words:\n" +
				"- cat: 2 occurrences\n" +
				"- sat.: 1 occurrences\n" +
				"- ran.: 1 occurrences\n" +
				"- dog: 1 occurrences\n" +
				"- slept.: 1 occurrences\n"))
		})

		It("omits the common words section when there are none", func() {
			report := agent.AnalyzeText("a an it", 5).Report()
			Expect(report).NotTo(ContainSubstring("Most Common Words"))
			Expect(report).To(HaveSuffix("\n\n"))
		})
	})
})
