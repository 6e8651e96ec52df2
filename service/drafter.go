package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/jilyoungservice-beep/contractgenius/backend/config"
	"github.com/jilyoungservice-beep/contractgenius/backend/pkg/logger"
)

// Fixed user-facing diagnostics. Callers cannot distinguish failure kinds
// beyond these strings, and must not treat the return value as a success.
const (
	MsgNoAPIKey    = "错误：未检测到 API Key。"
	MsgDraftFailed = "生成条款时出错，请检查网络或 API Key。"
	MsgEmptyDraft  = "无法生成条款。"
)

// DraftService asks Gemini to propose contract clause wording. It never
// returns an error: every failure collapses into one of the fixed
// diagnostics above, and the service never touches the document model —
// drafted text reaches a contract only through an explicit clause update.
type DraftService struct {
	config *config.GeminiConfig

	// generate is swappable in tests; the default talks to the Gemini API.
	generate func(ctx context.Context, prompt string) (string, error)
}

func NewDraftService(cfg *config.GeminiConfig) *DraftService {
	s := &DraftService{config: cfg}
	s.generate = s.generateWithGemini
	return s
}

// DraftClause drafts clause prose for the given topic. contextText is the
// user's free-text requirement; typeLabel is the contract-type wording from
// the label projection. The result is plain prose, trimmed, with no markup.
func (s *DraftService) DraftClause(ctx context.Context, topic, contextText, typeLabel string) string {
	if s.config.APIKey == "" {
		logger.Warn(ctx, "clause drafting requested without API key", "topic", topic)
		return MsgNoAPIKey
	}

	timeout := time.Duration(s.config.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := buildClausePrompt(topic, contextText, typeLabel)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		logger.Error(ctx, "clause drafting failed", "topic", topic, "error", err)
		return MsgDraftFailed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		logger.Warn(ctx, "clause drafting returned empty text", "topic", topic)
		return MsgEmptyDraft
	}
	return text
}

func (s *DraftService) generateWithGemini(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: s.config.APIKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, s.config.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}

	return resp.Text(), nil
}

func buildClausePrompt(topic, contextText, typeLabel string) string {
	return fmt.Sprintf(`你是一名专业的法律助理，擅长起草中国商业合同（采购合同与货运代理合同）。
请根据以下要求起草一段简明、专业、符合中国《民法典》规范的合同条款（中文）。

合同类型: %s
条款主题: %s
具体要求/上下文: %s

请仅返回条款内容文本，不要包含任何 Markdown 格式、标题或额外解释。`, typeLabel, topic, contextText)
}
