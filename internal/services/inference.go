package services

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const DefaultInferenceTimeout = 30 * time.Second

// GenerationResult is the outcome of a single generation attempt. An
// unavailable result is a normal control path, never an error: callers are
// expected to fall back to the deterministic generators.
type GenerationResult struct {
	Text      string
	Available bool
	Reason    string
}

type TextGenerator interface {
	Generate(prompt string, maxNewTokens int) GenerationResult
}

// InferenceClient calls a hosted text-generation endpoint. Each Generate call
// makes exactly one attempt, bounded by the client timeout.
type InferenceClient struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewInferenceClient(endpoint string, token string, timeout time.Duration) *InferenceClient {
	if timeout <= 0 {
		timeout = DefaultInferenceTimeout
	}
	return &InferenceClient{
		endpoint: strings.TrimSpace(endpoint),
		token:    strings.TrimSpace(token),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type inferenceParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
	DoSample     bool    `json:"do_sample"`
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type generatedPayload struct {
	GeneratedText string `json:"generated_text"`
}

func unavailable(reason string) GenerationResult {
	return GenerationResult{Available: false, Reason: reason}
}

func (client *InferenceClient) Generate(prompt string, maxNewTokens int) GenerationResult {
	if client.token == "" {
		return unavailable("missing api token")
	}

	payload := inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens: maxNewTokens,
			Temperature:  0.7,
			TopP:         0.95,
			DoSample:     true,
		},
	}
	serialized, err := json.Marshal(payload)
	if err != nil {
		return unavailable("encode request: " + err.Error())
	}

	request, err := http.NewRequest(http.MethodPost, client.endpoint, bytes.NewReader(serialized))
	if err != nil {
		return unavailable("build request: " + err.Error())
	}
	request.Header.Set("Authorization", "Bearer "+client.token)
	request.Header.Set("Content-Type", "application/json")

	response, err := client.client.Do(request)
	if err != nil {
		log.Printf("inference request failed: %v", err)
		return unavailable("request failed: " + err.Error())
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		log.Printf("inference endpoint returned %s", response.Status)
		return unavailable("unexpected status " + response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return unavailable("read response: " + err.Error())
	}

	text, ok := extractGeneratedText(body)
	if !ok {
		return unavailable("unexpected response shape")
	}
	if text == "" {
		return unavailable("empty generation")
	}

	return GenerationResult{Text: text, Available: true}
}

// extractGeneratedText tolerates both success shapes the endpoint produces: a
// list containing one object with a generated_text field, or a single such
// object.
func extractGeneratedText(body []byte) (string, bool) {
	var listShape []generatedPayload
	if err := json.Unmarshal(body, &listShape); err == nil {
		if len(listShape) == 0 {
			return "", false
		}
		return listShape[0].GeneratedText, true
	}

	var objectShape generatedPayload
	if err := json.Unmarshal(body, &objectShape); err == nil {
		return objectShape.GeneratedText, true
	}

	return "", false
}

// DefaultInferenceEndpoint matches the hosted model the application was built
// against; override it with HF_API_URL.
const DefaultInferenceEndpoint = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"
