package extractors

const factsPromptTemplate = `Give me {{.Count}} interesting and educational facts about {{.Animal}}. ` +
	`Return ONLY a JSON array of strings, no other text, no markdown, no code blocks. ` +
	`Each string should be one fact. ` +
	`Example: ["Fact 1", "Fact 2", "Fact 3", "Fact 4", "Fact 5"]`

type FactsPromptTemplateData struct {
	Animal string
	Count  int
}
