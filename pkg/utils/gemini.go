package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClientInterface on Gemini's free tier.
type GeminiClient struct {
	client *genai.Client
	cfg    AIClientConfig
}

func NewGeminiClient(apiKey string, cfg AIClientConfig) (*GeminiClient, error) {
	if cfg.SlotModel == "" {
		cfg.SlotModel = "gemini-1.5-flash"
	}
	if cfg.ItineraryModel == "" {
		cfg.ItineraryModel = cfg.SlotModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, cfg: cfg}, nil
}

func (c *GeminiClient) ExtractSlots(ctx context.Context, sentence string) (UserSlots, error) {
	m := c.client.GenerativeModel(c.cfg.SlotModel)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)

	prompt := fmt.Sprintf(`Extract travel/job slots from the Korean sentence below.
Return JSON only, exactly these keys:
{"start_date":"YYYY-MM-DD","end_date":"YYYY-MM-DD","region":"<city/county or null>","activities":["tag", ...]}

Sentence: %s`, sentence)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return UserSlots{}, fmt.Errorf("%w: %v", ErrSlotExtraction, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return UserSlots{}, fmt.Errorf("%w: no content", ErrSlotExtraction)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	var slots UserSlots
	if err := json.Unmarshal([]byte(content), &slots); err != nil {
		return UserSlots{}, fmt.Errorf("%w: %v", ErrSlotExtraction, err)
	}
	return slots, nil
}

// GetEmbedding generates a hash-based vector for text. Gemini's free tier has
// no dedicated embedding endpoint; this keeps similarity search deterministic
// and dimension-compatible with the OpenAI backend.
func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return textToVector(text), nil
}

func (c *GeminiClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no input texts provided")
	}
	vectors := make([]pgvector.Vector, len(texts))
	for i, text := range texts {
		vectors[i] = textToVector(text)
	}
	return vectors, nil
}

func (c *GeminiClient) GenerateItinerary(ctx context.Context, contextJSON string) (string, error) {
	m := c.client.GenerativeModel(c.cfg.ItineraryModel)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetMaxOutputTokens(1024)

	prompt := itinerarySystemPrompt + "\n\n" + contextJSON

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrItineraryGeneration, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content", ErrItineraryGeneration)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: model returned invalid JSON", ErrItineraryGeneration)
	}
	return content, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

const embeddingDimensions = 1536

// textToVector hashes words into a normalized vector.
func textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	vector := make([]float32, embeddingDimensions)
	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < embeddingDimensions; i++ {
			vector[i] += float32(math.Sin(float64(hash+uint32(i))) * 0.1)
		}
	}

	var magnitude float32
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
