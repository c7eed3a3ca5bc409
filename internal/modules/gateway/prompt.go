package gateway

// ProbePrompt verifies connectivity on /test-api.
const ProbePrompt = "Say 'API is working!' if you can read this."

// DetectPrompt asks for a quoted transcription only; the parser relies on
// the quotes.
const DetectPrompt = `Look at this handwriting image and tell me EXACTLY what text was written.
Respond ONLY with the text in quotes, nothing else.
For example, if the image shows "Hello World", respond: "Hello World"
Be as accurate as possible.`

// AnalyzePrompt fixes the section layout and the fenced score block the
// response parser extracts from.
const AnalyzePrompt = `You are an expert handwriting teacher. Analyze this handwriting sample carefully.

IMPORTANT: First identify EXACTLY what text was written.

Provide your analysis in this EXACT format:

**Text Written:** "exact text here"

**Overall Assessment:**
[2-3 sentences about the overall handwriting quality]

**Strengths:**
- [Specific positive aspect 1]
- [Specific positive aspect 2]
- [Specific positive aspect 3]

**Areas for Improvement:**
- [Specific issue 1]
- [Specific issue 2]
- [Specific issue 3]

**Practice Tips:**
- [Actionable tip 1]
- [Actionable tip 2]
- [Actionable tip 3]

**Practice Steps:**
- [Step 1: specific exercise]
- [Step 2: specific exercise]
- [Step 3: specific exercise]

**Scores (0-100):**
` + "```json" + `
{
  "Legibility": [score based on how readable the text is],
  "Letter Formation": [score based on correct letter shapes],
  "Spacing": [score based on consistent spacing between letters/words],
  "Baseline Consistency": [score based on alignment to baseline],
  "Size Consistency": [score based on uniform letter sizes],
  "Slant Consistency": [score based on uniform letter angles]
}
` + "```" + `

Be accurate and constructive. Score strictly - 70-85 is good, 85+ is excellent, below 60 needs work.`
