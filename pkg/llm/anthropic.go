package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient is the alternate script/fortune backend, selected
// when ANTHROPIC_API_KEY is configured instead of OPENAI_API_KEY.
type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}
	return resp.Content[0].Text, nil
}

func (c *AnthropicClient) ShortformScript(ctx context.Context, text string, maxChars int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty news text")
	}

	userPrompt := fmt.Sprintf(`다음 경제 뉴스를 음성으로 읽기 좋은 한국어 스크립트로 만들어줘.
2~3문장, 최대 %d자 이내, 존댓말 사용, 투자 판단이나 종목 추천은 하지 말기.

[뉴스 텍스트]
%s`, maxChars, text)

	content, err := c.complete(ctx, shortformSystemPrompt, userPrompt)
	if err != nil {
		return "", err
	}

	script := strings.TrimSpace(content)
	if runes := []rune(script); len(runes) > maxChars {
		script = string(runes[:maxChars])
	}
	return script, nil
}

func (c *AnthropicClient) TodayFortune(ctx context.Context, profile FortuneProfile) (*Fortune, error) {
	content, err := c.complete(ctx, fortuneSystemPrompt, fortuneUserPrompt(profile))
	if err != nil {
		return nil, err
	}

	var fortune Fortune
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &fortune); err != nil {
		return &Fortune{Overall: strings.TrimSpace(content)}, nil
	}
	return &fortune, nil
}
