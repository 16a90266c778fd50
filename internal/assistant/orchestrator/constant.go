package orchestrator

const (
	conversationIDPrefix = "conv_"

	// DefaultHistoryLimit is the sliding-window cap in messages, counting
	// user and assistant messages (10 full turns).
	DefaultHistoryLimit = 20

	// DefaultMaxConversations bounds the in-memory conversation store.
	DefaultMaxConversations = 1000

	systemPromptBase = `You are a friendly and knowledgeable wedding planning assistant for an Indian wedding marketplace. ` +
		`You help couples plan their wedding: checklists, budgets, timelines, guest lists, and finding venues and vendors. ` +
		`Use the provided tools to read and change planning data when the user asks for it. ` +
		`Keep replies warm, concise and practical. Amounts are in Indian rupees.`

	fallbackMessage = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment."
)

var fallbackSuggestions = []string{
	"Show me my planning checklist",
	"What's my budget status?",
	"Find venues near me",
}
