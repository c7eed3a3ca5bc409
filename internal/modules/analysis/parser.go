package analysis

import (
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var (
	fencedBlockReg = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	quotedReg      = regexp.MustCompile(`["'](.*?)["']`)
	emphasisReg    = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// scorePatterns map "<category>: <int>" occurrences to canonical category
// names. "Baseline" alone counts as Baseline Consistency.
var scorePatterns = []struct {
	reg      *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`(?i)Legibility[:\s]+(\d+)`), CategoryLegibility},
	{regexp.MustCompile(`(?i)Letter Formation[:\s]+(\d+)`), CategoryLetterFormation},
	{regexp.MustCompile(`(?i)Spacing[:\s]+(\d+)`), CategorySpacing},
	{regexp.MustCompile(`(?i)Baseline[:\s]+(\d+)`), CategoryBaseline},
	{regexp.MustCompile(`(?i)Size Consistency[:\s]+(\d+)`), CategorySize},
	{regexp.MustCompile(`(?i)Slant Consistency[:\s]+(\d+)`), CategorySlant},
}

type sectionKind int

const (
	sectionUnknown sectionKind = iota
	sectionDetectedText
	sectionOverall
	sectionStrengths
	sectionImprovements
	sectionTips
	sectionPracticeSteps
)

// sectionRules are evaluated in order; the first keyword hit classifies the
// block. Order matters: "Practice Tips" must land on tips, not steps.
var sectionRules = []struct {
	kind     sectionKind
	keywords []string
}{
	{sectionDetectedText, []string{"text written", "wrote"}},
	{sectionOverall, []string{"overall", "assessment"}},
	{sectionStrengths, []string{"strength", "positive"}},
	{sectionImprovements, []string{"improve", "area", "work on"}},
	{sectionTips, []string{"tip", "recommend"}},
	{sectionPracticeSteps, []string{"practice step", "exercise"}},
}

func classify(block string) sectionKind {
	lower := strings.ToLower(block)
	for _, rule := range sectionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.kind
			}
		}
	}
	return sectionUnknown
}

// Parse converts one raw model response into a Result. It is total over all
// inputs: anything it cannot extract degrades to empty fields or the
// fallbacks below, never an error.
func Parse(text string) Result {
	result := newResult()

	result.Scores = fencedScores(text)
	if len(result.Scores) == 0 {
		result.Scores = patternScores(text)
	}

	for _, block := range strings.Split(text, "\n\n") {
		switch classify(block) {
		case sectionDetectedText:
			if m := quotedReg.FindStringSubmatch(block); m != nil {
				result.DetectedText = m[1]
			}
		case sectionOverall:
			if content := overallContent(block); content != "" {
				result.Overall = content
			}
		case sectionStrengths:
			result.Strengths = append(result.Strengths, bulletItems(block)...)
		case sectionImprovements:
			result.Improvements = append(result.Improvements, bulletItems(block)...)
		case sectionTips:
			result.Tips = append(result.Tips, bulletOrNumberedItems(block)...)
		case sectionPracticeSteps:
			result.PracticeSteps = append(result.PracticeSteps, bulletOrNumberedItems(block)...)
		}
	}

	if result.DetectedText == "" {
		if m := quotedReg.FindStringSubmatch(text); m != nil {
			result.DetectedText = m[1]
		}
	}

	if len(result.Strengths) == 0 && len(result.Improvements) == 0 && len(result.Tips) == 0 {
		bullets := bulletItems(text)
		if len(bullets) > 0 {
			if len(bullets) > 5 {
				bullets = bullets[:5]
			}
			result.Tips = bullets
			result.Overall = "Analysis provided below."
		} else {
			result.Overall = truncateRunes(text, 300)
		}
	}

	return result
}

// fencedScores extracts the embedded ```json block. A block carrying a
// "scores" key yields that sub-object, otherwise the whole object. Parse
// failure yields an empty map so the caller falls through to pattern
// matching; an empty-but-valid block falls through the same way.
func fencedScores(text string) map[string]int {
	m := fencedBlockReg.FindStringSubmatch(text)
	if m == nil {
		return map[string]int{}
	}
	var obj map[string]interface{}
	if err := jsoniter.Unmarshal([]byte(m[1]), &obj); err != nil {
		return map[string]int{}
	}
	if sub, ok := obj["scores"].(map[string]interface{}); ok {
		return coerceScores(sub)
	}
	return coerceScores(obj)
}

func coerceScores(obj map[string]interface{}) map[string]int {
	scores := make(map[string]int, len(obj))
	for name, value := range obj {
		if n, ok := value.(float64); ok {
			scores[name] = int(n)
		}
	}
	return scores
}

func patternScores(text string) map[string]int {
	scores := map[string]int{}
	for _, p := range scorePatterns {
		m := p.reg.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		scores[p.category] = n
	}
	return scores
}

// overallContent drops the heading line, joins the rest and strips paired
// emphasis markers, keeping their inner text.
func overallContent(block string) string {
	lines := strings.Split(block, "\n")
	content := block
	if len(lines) > 1 {
		content = strings.Join(lines[1:], " ")
	}
	content = emphasisReg.ReplaceAllString(content, "${1}")
	return strings.TrimSpace(content)
}

// bulletItems collects lines led by -, • or *. Items are trimmed; empty
// items are dropped.
func bulletItems(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := stripBullet(line)
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if rest != "" {
			items = append(items, rest)
		}
	}
	return items
}

// bulletOrNumberedItems additionally accepts "1." style numbering.
func bulletOrNumberedItems(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := stripBullet(line)
		if !ok {
			rest, ok = stripNumber(line)
		}
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if rest != "" {
			items = append(items, rest)
		}
	}
	return items
}

func stripBullet(line string) (string, bool) {
	for _, marker := range []string{"-", "•", "*"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimPrefix(line, marker), true
		}
	}
	return "", false
}

func stripNumber(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) || line[i] != '.' {
		return "", false
	}
	return line[i+1:], true
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
