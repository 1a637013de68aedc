package model

type DiagnosisSource string

const (
	// SourceLive marks a successful chat-completion result, whether the
	// call went direct to the provider or through the local proxy.
	SourceLive DiagnosisSource = "DeepSeek AI"
	// SourceOffline marks a keyword-heuristic fallback result.
	SourceOffline DiagnosisSource = "Offline"
)

type Diagnosis struct {
	// Text is the assistant content verbatim, whitespace preserved.
	Text   string          `json:"text"`
	Source DiagnosisSource `json:"source"`
	// Reason explains why the live call did not happen. Empty on success.
	Reason string `json:"reason,omitempty"`
}
