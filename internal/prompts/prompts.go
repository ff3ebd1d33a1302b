package prompts

// Prompt names
const (
	PromptFormat    = "format"
	PromptSummarize = "summarize"
)
