package consts

const (
	// EnvGeminiAPIKey holds the Gemini API credential. The service refuses
	// to start without it.
	EnvGeminiAPIKey = "GEMINI_API_KEY"

	ServiceName = "AI Handwriting Teacher Backend"
)

// DefaultModels are tried in order at startup; the first one the API
// resolves becomes the process-wide model.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-flash-latest",
	"gemini-1.5-flash",
	"gemini-pro-latest",
}
