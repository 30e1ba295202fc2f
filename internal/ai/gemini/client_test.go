package gemini

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	calls  int
	model  string
	config *genai.GenerateContentConfig
	text   string
	resp   *genai.GenerateContentResponse
	err    error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.text = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestGeneratorGenerateJSON(t *testing.T) {
	fake := &fakeModels{resp: textResponse(`{"skills": []}`, "  ")}
	g := newGenerator(fake, "", zap.NewNop())

	out, err := g.GenerateJSON(context.Background(), "system", "  message ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"skills": []}` {
		t.Fatalf("unexpected output: %q", out)
	}

	if fake.model != defaultModel {
		t.Fatalf("expected default model, got %q", fake.model)
	}
	if fake.text != "message" {
		t.Fatalf("unexpected prompt: %q", fake.text)
	}
	if fake.config == nil || fake.config.ResponseMIMEType != "application/json" {
		t.Fatalf("expected json response mime type")
	}
	if fake.config.SystemInstruction == nil || fake.config.SystemInstruction.Parts[0].Text != "system" {
		t.Fatalf("expected system instruction to be set")
	}
}

func TestGeneratorDoesNotRetry(t *testing.T) {
	fake := &fakeModels{err: genai.APIError{Code: 500, Status: "INTERNAL"}}
	g := newGenerator(fake, "gemini-pro", nil)

	if _, err := g.GenerateJSON(context.Background(), "", "message"); err == nil {
		t.Fatal("expected error")
	}
	if fake.calls != 1 {
		t.Fatalf("expected a single call, got %d", fake.calls)
	}
	if fake.config.SystemInstruction != nil {
		t.Fatalf("blank system instruction must be omitted")
	}
}

func TestGeneratorRejectsEmptyInputAndOutput(t *testing.T) {
	fake := &fakeModels{resp: textResponse(" ")}
	g := newGenerator(fake, "gemini-pro", nil)

	if _, err := g.GenerateJSON(context.Background(), "", "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if fake.calls != 0 {
		t.Fatalf("empty prompt must not reach the api")
	}

	if _, err := g.GenerateJSON(context.Background(), "", "message"); err == nil {
		t.Fatal("expected error for empty response")
	}

	fake.resp = nil
	if _, err := g.GenerateJSON(context.Background(), "", "message"); err == nil {
		t.Fatal("expected error for missing response")
	}

	var nilGen *Generator
	if _, err := nilGen.GenerateJSON(context.Background(), "", "message"); err == nil {
		t.Fatal("expected error for nil generator")
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), "  ", "", nil); err == nil {
		t.Fatal("expected error without api key")
	}
}
