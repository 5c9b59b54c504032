package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GenerationMode selects how the tailored documents are requested from the
// model: as a fixed markdown layout, or as calls to the two save functions.
type GenerationMode string

const (
	ModeMarkdown GenerationMode = "markdown"
	ModeTools    GenerationMode = "tools"
)

func ParseGenerationMode(s string) (GenerationMode, error) {
	switch GenerationMode(strings.ToLower(s)) {
	case ModeMarkdown:
		return ModeMarkdown, nil
	case ModeTools:
		return ModeTools, nil
	default:
		return "", fmt.Errorf("unknown generation mode: %q", s)
	}
}

type GeminiService interface {
	GenerateTailored(ctx context.Context, prompt string) (ModelReply, error)
	GenerateTailoredWithRetry(ctx context.Context, prompt string, maxRetries int) (ModelReply, error)
}

type geminiService struct {
	client            *genai.Client
	modelName         string
	mode              GenerationMode
	systemInstruction string
}

func NewGeminiService(apiKey, modelName string, mode GenerationMode) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:            client,
		modelName:         modelName,
		mode:              mode,
		systemInstruction: NewPromptBuilder().SystemInstruction(mode),
	}, nil
}

// GenerateTailored implements GeminiService.
func (g *geminiService) GenerateTailored(ctx context.Context, prompt string) (ModelReply, error) {
	temperature := float32(0.4)

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 8192,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: g.systemInstruction}},
		},
	}

	if g.mode == ModeTools {
		config.Tools = careerTools()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return ModelReply{}, fmt.Errorf("failed to generate tailored documents: %w", err)
	}

	reply := replyFromResponse(resp)
	if reply.Text == "" && len(reply.Invocations) == 0 {
		return ModelReply{}, fmt.Errorf("no content in response")
	}

	return reply, nil
}

// GenerateTailoredWithRetry implements GeminiService.
func (g *geminiService) GenerateTailoredWithRetry(ctx context.Context, prompt string, maxRetries int) (ModelReply, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		reply, err := g.GenerateTailored(ctx, prompt)
		if err == nil {
			return reply, nil
		}

		lastErr = err

		// Check if context is cancelled
		select {
		case <-ctx.Done():
			return ModelReply{}, fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxRetries {
			fmt.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return ModelReply{}, fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

// replyFromResponse flattens a Gemini response into a ModelReply: text parts
// are concatenated across candidates, function calls become invocations with
// their "content" argument.
func replyFromResponse(resp *genai.GenerateContentResponse) ModelReply {
	var reply ModelReply
	if resp == nil {
		return reply
	}

	var text strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
			if part.FunctionCall != nil {
				reply.Invocations = append(reply.Invocations, invocationFromCall(part.FunctionCall))
			}
		}
	}

	reply.Text = text.String()
	return reply
}

func invocationFromCall(call *genai.FunctionCall) ToolInvocation {
	inv := ToolInvocation{Name: call.Name}
	if call.Args != nil {
		if content, ok := call.Args["content"].(string); ok {
			inv.Content = content
		}
	}
	return inv
}

// careerTools declares the two save functions the tools mode exposes to the
// model. Each takes a single required string argument named "content".
func careerTools() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        ToolSaveTailoredResume,
				Description: "Save the tailored resume once it has been written.",
				Parameters:  contentSchema("The full text of the tailored resume."),
			},
			{
				Name:        ToolSaveCoverLetter,
				Description: "Save the cover letter once it has been written.",
				Parameters:  contentSchema("The full text of the cover letter."),
			},
		},
	}}
}

func contentSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"content": {
				Type:        genai.TypeString,
				Description: description,
			},
		},
		Required: []string{"content"},
	}
}
