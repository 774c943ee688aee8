package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lumina/config"

	"github.com/go-resty/resty/v2"
)

// SystemInstruction frames every question sent to the remote model.
const SystemInstruction = "You are a helpful academic assistant for an online learning platform. " +
	"Answer students' questions clearly and concisely, focusing on educational topics."

// EmptyReply is returned when the model produced no text.
const EmptyReply = "I'm sorry, I couldn't generate a response."

// Fallback is what the chat screen shows when the bridge fails. The error
// itself stays with the caller for logging.
const Fallback = "Error communicating with the study assistant. Please try again later."

// Client bridges questions to one named remote completion model. Every call
// is stateless, no transcript history is forwarded.
type Client struct {
	http   *resty.Client
	apiKey string
	model  string
}

// Default is the process-wide client, set by Init.
var Default *Client

// Init builds the global client from configuration.
func Init() {
	Default = NewClient(
		config.AppConfig.GeminiApiUrl,
		config.AppConfig.GeminiApiKey,
		config.AppConfig.GeminiModel,
	)
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
		apiKey: apiKey,
		model:  model,
	}
}

// Request/response shapes of the generateContent endpoint, limited to the
// fields this bridge reads.

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Ask forwards one question to the completion service and returns its text.
// The context cancels the outbound request when the caller goes away.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	var out generateResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(generateRequest{
			SystemInstruction: &generateContent{Parts: []generatePart{{Text: SystemInstruction}}},
			Contents:          []generateContent{{Role: "user", Parts: []generatePart{{Text: question}}}},
		}).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("assistant API error: %s", out.Error.Message)
		}
		return "", fmt.Errorf("assistant API error: %s", resp.Status())
	}

	var sb strings.Builder
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
		break // only the first candidate is used
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return EmptyReply, nil
	}
	return text, nil
}
