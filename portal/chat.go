package portal

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one entry of the locally held Q&A transcript. The remote
// assistant never sees this history, every question is sent context-free.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatState backs the Q&A board screen.
type ChatState struct {
	Messages []ChatMessage `json:"messages"`
}

func NewChatState() *ChatState {
	return &ChatState{Messages: []ChatMessage{}}
}

// snapshot returns a detached copy safe to serialize outside the state lock.
func (s *ChatState) snapshot() *ChatState {
	out := &ChatState{Messages: make([]ChatMessage, len(s.Messages))}
	copy(out.Messages, s.Messages)
	return out
}

// Append records a message at the end of the transcript.
func (s *ChatState) Append(role, content string) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content})
}
