package extractors

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strings"
)

// MaxFacts is the most facts returned for a single animal.
const MaxFacts = 5

const (
	codeFence     = "```"
	jsonCodeFence = "```json"
)

var (
	// a language tag only counts when the fence line ends right after it
	leadingFence    = regexp.MustCompile("^```[A-Za-z0-9_+.-]*[ \t]*(\r?\n|$)")
	bracketStripper = strings.NewReplacer("[", "", "]", "", "{", "", "}", "")
)

// factParser is one way of reading a model reply. ok is false when the strategy does not apply.
type factParser struct {
	name  string
	parse func(text string) (facts []string, ok bool)
}

// factParsers are tried in order; the first that applies wins.
var factParsers = []factParser{
	{name: "json_array", parse: parseJSONArray},
	{name: "comma_split", parse: splitOnCommas},
	{name: "line_split", parse: splitOnLines},
}

// ExtractFacts turns a raw model reply into at most MaxFacts cleaned facts, in reply order.
// It never fails: unreadable input yields an empty slice.
func ExtractFacts(raw string) []string {
	facts, _ := ExtractFactsWithStrategy(raw)
	return facts
}

// ExtractFactsWithStrategy is ExtractFacts that also names the parser that produced the result,
// or "none" when nothing could be read.
func ExtractFactsWithStrategy(raw string) ([]string, string) {
	text := stripCodeFence(raw)

	for _, p := range factParsers {
		if facts, ok := p.parse(text); ok {
			return truncateFacts(facts), p.name
		}
	}

	return []string{}, "none"
}

// stripCodeFence removes a leading fence and a trailing ```. The leading fence is a ``` line
// with an optional language tag, or an inline ```json or ```.
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	switch {
	case leadingFence.MatchString(text):
		text = leadingFence.ReplaceAllString(text, "")
	case strings.HasPrefix(text, jsonCodeFence):
		text = strings.TrimPrefix(text, jsonCodeFence)
	default:
		text = strings.TrimPrefix(text, codeFence)
	}
	text = strings.TrimSuffix(text, codeFence)
	return strings.TrimSpace(text)
}

// parseJSONArray applies only when text is a JSON array. An array with no usable
// elements still applies and yields no facts.
func parseJSONArray(text string) ([]string, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	// trailing data means the reply was not a single JSON value
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}

	items, ok := v.([]any)
	if !ok {
		return nil, false
	}

	facts := make([]string, 0, len(items))
	for _, item := range items {
		if fact := cleanFact(jsonElementText(item)); fact != "" {
			facts = append(facts, fact)
		}
	}

	return facts, true
}

func jsonElementText(item any) string {
	if s, ok := item.(string); ok {
		return s
	}
	if item == nil {
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(item); err != nil {
		return ""
	}
	return buf.String()
}

func splitOnCommas(text string) ([]string, bool) {
	return splitFragments(bracketStripper.Replace(text), ",")
}

func splitOnLines(text string) ([]string, bool) {
	return splitFragments(bracketStripper.Replace(text), "\n")
}

func splitFragments(text, sep string) ([]string, bool) {
	var facts []string
	for _, fragment := range strings.Split(text, sep) {
		fact := cleanFact(fragment)
		if fact == "" || strings.HasPrefix(fact, codeFence) {
			continue
		}
		facts = append(facts, fact)
	}
	return facts, len(facts) > 0
}

// cleanFact trims surrounding whitespace and quote characters.
func cleanFact(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, `'`)
	return strings.TrimSpace(s)
}

func truncateFacts(facts []string) []string {
	if facts == nil {
		return []string{}
	}
	if len(facts) > MaxFacts {
		return facts[:MaxFacts]
	}
	return facts
}
