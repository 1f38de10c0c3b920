package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Centralized environment variable keys used by the app
const (
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvClaudeAPIKey = "CLAUDE_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvCustomAPIKey = "CUSTOM_API_KEY"

	// Custom (OpenAI-compatible) provider endpoints
	EnvCustomBaseURL             = "CUSTOM_BASE_URL"
	EnvCustomChatCompletionsPath = "CUSTOM_CHAT_COMPLETIONS_PATH"
	EnvCustomModelsPath          = "CUSTOM_MODELS_PATH"

	EnvAIEnumProvider       = "AIENUM_PROVIDER"
	EnvAIEnumModel          = "AIENUM_MODEL"
	EnvAIEnumAPIKey         = "AIENUM_API_KEY"
	EnvAIEnumDictionary     = "AIENUM_DICTIONARY"
	EnvAIEnumFormat         = "AIENUM_FORMAT"
	EnvAIEnumCasing         = "AIENUM_CASING"
	EnvAIEnumTrailing       = "AIENUM_TRAILING"
	EnvAIEnumInteractive    = "AIENUM_INTERACTIVE"
	EnvAIEnumNonInteractive = "AIENUM_NON_INTERACTIVE"
	EnvAIEnumMock           = "AIENUM_MOCK"
	EnvAIEnumNoColor        = "AIENUM_NO_COLOR"
	EnvAIEnumServerAddr     = "AIENUM_SERVER_ADDR"
	EnvAIEnumLogJSON        = "AIENUM_LOG_JSON"
	EnvAIEnumMaxRPM         = "AIENUM_MAX_REQUESTS_PER_MINUTE"

	// Common terminal environment variables (non AIENUM-specific)
	EnvNoColor = "NO_COLOR"
	EnvTerm    = "TERM"
)

// Get returns the raw value for key (empty string if unset).
func Get(key string) string { return os.Getenv(key) }

// Bool parses a boolean-like environment variable.
// True values: 1, true, yes, on (case-insensitive).
// False values: 0, false, no, off. Empty is false.
func Bool(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false
	}
	v = strings.ToLower(v)
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		// Fallback: treat any non-empty, non-falsey as true for leniency
		return true
	}
}

// WarnUnknownEnv scans the current process env and writes a note to w for
// every AIENUM_* variable the app does not read (typos such as AIENUM_MODLE).
func WarnUnknownEnv(w io.Writer) {
	known := map[string]struct{}{
		EnvAIEnumProvider: {}, EnvAIEnumModel: {}, EnvAIEnumAPIKey: {}, EnvAIEnumDictionary: {}, EnvAIEnumFormat: {},
		EnvAIEnumCasing: {}, EnvAIEnumTrailing: {}, EnvAIEnumInteractive: {}, EnvAIEnumNonInteractive: {},
		EnvAIEnumMock: {}, EnvAIEnumNoColor: {}, EnvAIEnumServerAddr: {}, EnvAIEnumLogJSON: {},
		EnvAIEnumMaxRPM: {},
	}
	printedHeader := false
	for _, entry := range os.Environ() {
		if !strings.HasPrefix(entry, "AIENUM_") {
			continue
		}
		k := entry
		if i := strings.IndexByte(entry, '='); i >= 0 {
			k = entry[:i]
		}
		if _, ok := known[k]; ok {
			continue
		}
		if !printedHeader {
			fmt.Fprintln(w, "[aienum] Notes about environment variables:")
			printedHeader = true
		}
		fmt.Fprintf(w, "  - %s is not recognized; check for typos or remove it.\n", k)
	}
}
