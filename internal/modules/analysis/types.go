package analysis

// Result is the structured assessment extracted from one model response.
// Slices keep the order items appeared in the source text.
type Result struct {
	Overall       string         `json:"overall"`
	Strengths     []string       `json:"strengths"`
	Improvements  []string       `json:"improvements"`
	Tips          []string       `json:"tips"`
	DetectedText  string         `json:"detected_text"`
	Scores        map[string]int `json:"scores"`
	PracticeSteps []string       `json:"practice_steps"`
}

func newResult() Result {
	return Result{
		Strengths:     []string{},
		Improvements:  []string{},
		Tips:          []string{},
		Scores:        map[string]int{},
		PracticeSteps: []string{},
	}
}

// Score categories the model is asked to grade.
const (
	CategoryLegibility      = "Legibility"
	CategoryLetterFormation = "Letter Formation"
	CategorySpacing         = "Spacing"
	CategoryBaseline        = "Baseline Consistency"
	CategorySize            = "Size Consistency"
	CategorySlant           = "Slant Consistency"
)

const fallbackScore = 70

// FallbackScores is the fixed default set substituted when no scores could
// be extracted from the response by any strategy.
func FallbackScores() map[string]int {
	return map[string]int{
		CategoryLegibility:      fallbackScore,
		CategoryLetterFormation: fallbackScore,
		CategorySpacing:         fallbackScore,
		CategoryBaseline:        fallbackScore,
		CategorySize:            fallbackScore,
	}
}
