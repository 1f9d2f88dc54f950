package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

const slotSystemPrompt = "You are a travel planner AI. " +
	"Output only valid JSON that matches the schema."

const itinerarySystemPrompt = "You are an expert rural job & travel planner. " +
	"Return ONLY valid JSON with daily schedule array."

// slotSchema mirrors UserSlots for the fill_slots tool call.
var slotSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "start_date": {"type": "string", "description": "trip start date (YYYY-MM-DD)"},
    "end_date":   {"type": "string", "description": "trip end date (YYYY-MM-DD)"},
    "region":     {"type": ["string", "null"], "description": "preferred region (city/county level)"},
    "activities": {"type": "array", "items": {"type": "string"}, "description": "requested activity tags"}
  },
  "required": ["start_date", "end_date"]
}`)

type OpenAIClient struct {
	client *openai.Client
	cfg    AIClientConfig
}

func NewOpenAIClient(apiKey string, cfg AIClientConfig) *OpenAIClient {
	if cfg.SlotModel == "" {
		cfg.SlotModel = openai.GPT4oMini
	}
	if cfg.EmbedModel == "" {
		cfg.EmbedModel = string(openai.SmallEmbedding3)
	}
	if cfg.ItineraryModel == "" {
		cfg.ItineraryModel = openai.GPT4o
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		cfg:    cfg,
	}
}

func (c *OpenAIClient) ExtractSlots(ctx context.Context, sentence string) (UserSlots, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.SlotModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: slotSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: sentence},
		},
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "fill_slots",
				Description: "Extract structured slots from Korean user query",
				Parameters:  slotSchema,
			},
		}},
		ToolChoice: "auto",
	})
	if err != nil {
		return UserSlots{}, fmt.Errorf("%w: %v", ErrSlotExtraction, err)
	}
	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return UserSlots{}, fmt.Errorf("%w: model returned no tool call", ErrSlotExtraction)
	}

	var slots UserSlots
	args := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(args), &slots); err != nil {
		return UserSlots{}, fmt.Errorf("%w: %v", ErrSlotExtraction, err)
	}
	return slots, nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	vectors, err := c.GetEmbeddings(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return vectors[0], nil
}

func (c *OpenAIClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no input texts provided")
	}
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(c.cfg.EmbedModel),
	})
	if err != nil {
		return nil, err
	}
	vectors := make([]pgvector.Vector, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = pgvector.NewVector(d.Embedding)
	}
	return vectors, nil
}

func (c *OpenAIClient) GenerateItinerary(ctx context.Context, contextJSON string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.ItineraryModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: itinerarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: contextJSON},
		},
		Temperature: 0.2,
		MaxTokens:   1024,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrItineraryGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrItineraryGeneration)
	}
	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: model returned invalid JSON", ErrItineraryGeneration)
	}
	return content, nil
}
