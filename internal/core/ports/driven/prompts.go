package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or fall back to
// embedded defaults.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptChatSystem is the grounding directive constraining the
	// model to answer only from the supplied context.
	// This prompt has no format placeholders.
	PromptChatSystem = "chat_system"

	// PromptChatUser lays out the retrieved context and the question.
	// The template expects two %s placeholders: context, question.
	PromptChatUser = "chat_user"
)
