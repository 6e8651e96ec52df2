package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jilyoungservice-beep/contractgenius/backend/config"
)

func newTestDraftService(generate func(ctx context.Context, prompt string) (string, error)) *DraftService {
	s := NewDraftService(&config.GeminiConfig{
		APIKey:         "test-key",
		Model:          "gemini-2.5-flash",
		TimeoutSeconds: 5,
	})
	s.generate = generate
	return s
}

func TestDraftClauseSuccess(t *testing.T) {
	s := newTestDraftService(func(ctx context.Context, prompt string) (string, error) {
		return "  付款条款内容。\n", nil
	})

	got := s.DraftClause(context.Background(), "付款方式", "预付30%", "采购合同")
	if got != "付款条款内容。" {
		t.Errorf("Expected trimmed drafted text, got %q", got)
	}
}

func TestDraftClauseNoAPIKey(t *testing.T) {
	s := NewDraftService(&config.GeminiConfig{
		Model:          "gemini-2.5-flash",
		TimeoutSeconds: 5,
	})
	s.generate = func(ctx context.Context, prompt string) (string, error) {
		t.Error("Generate must not be called without an API key")
		return "", nil
	}

	got := s.DraftClause(context.Background(), "付款方式", "预付30%", "采购合同")
	if got != MsgNoAPIKey {
		t.Errorf("Expected %q, got %q", MsgNoAPIKey, got)
	}
}

func TestDraftClauseGenerateError(t *testing.T) {
	s := newTestDraftService(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("network down")
	})

	got := s.DraftClause(context.Background(), "付款方式", "预付30%", "采购合同")
	if got != MsgDraftFailed {
		t.Errorf("Expected %q, got %q", MsgDraftFailed, got)
	}
}

func TestDraftClauseEmptyResponse(t *testing.T) {
	s := newTestDraftService(func(ctx context.Context, prompt string) (string, error) {
		return "   \n", nil
	})

	got := s.DraftClause(context.Background(), "付款方式", "预付30%", "采购合同")
	if got != MsgEmptyDraft {
		t.Errorf("Expected %q, got %q", MsgEmptyDraft, got)
	}
}

func TestDraftClausePromptContents(t *testing.T) {
	var captured string
	s := newTestDraftService(func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return "ok", nil
	})

	_ = s.DraftClause(context.Background(), "交付与运输", "空运至上海机场", "物流运输合同")

	for _, want := range []string{"交付与运输", "空运至上海机场", "物流运输合同", "民法典"} {
		if !strings.Contains(captured, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}
	if !strings.Contains(captured, "Markdown 格式") {
		t.Error("Expected prompt to forbid markup in the response")
	}
}

func TestDraftClauseRespectsContextTimeout(t *testing.T) {
	s := newTestDraftService(func(ctx context.Context, prompt string) (string, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("Expected a deadline on the generate context")
		}
		return "ok", nil
	})

	_ = s.DraftClause(context.Background(), "付款方式", "x", "采购合同")
}
