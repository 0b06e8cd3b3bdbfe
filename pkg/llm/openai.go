package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) SuggestKeywords(ctx context.Context, q1 []int, q2, q3 []string, targetSize int) ([]string, error) {
	today := time.Now().Format("2006-01-02")
	userPrompt := fmt.Sprintf(`오늘 날짜: %s

사용자의 경제 뉴스 취향 정보:
- 선택 카테고리 ID: %v
- 선호 키워드: %v
- 제외 키워드: %v

오늘 날짜 기준으로 주요 키워드 %d개를 추천해. 같은 날짜에는 비슷한 추천을 유지해.`,
		today, q1, q2, q3, targetSize)

	content, err := c.complete(ctx, keywordSystemPrompt, userPrompt, 0.3)
	if err != nil {
		return nil, err
	}

	var keywords []string
	if err := json.Unmarshal([]byte(cleanJSONArrayResponse(content)), &keywords); err != nil {
		return nil, fmt.Errorf("failed to parse keyword response: %w, content: %s", err, content)
	}

	// the model occasionally ignores the exclusion rule
	excluded := make(map[string]struct{}, len(q3))
	for _, kw := range q3 {
		excluded[kw] = struct{}{}
	}
	out := make([]string, 0, targetSize)
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, ok := excluded[kw]; ok {
			continue
		}
		out = append(out, kw)
		if len(out) == targetSize {
			break
		}
	}
	return out, nil
}

func (c *OpenAIClient) ShortformScript(ctx context.Context, text string, maxChars int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty news text")
	}

	userPrompt := fmt.Sprintf(`다음 경제 뉴스를 음성으로 읽기 좋은 한국어 스크립트로 만들어줘.

조건:
- 2~3문장, 최대 %d자 이내
- 한 문장은 너무 길지 않게 끊어주기
- '~입니다', '~했어요' 같은 존댓말 사용
- 숫자와 단위는 듣기 편하게 자연스럽게 풀어서 말하기
- 투자 판단이나 종목 추천은 하지 말기

[뉴스 텍스트]
%s`, maxChars, text)

	content, err := c.complete(ctx, shortformSystemPrompt, userPrompt, 0.4)
	if err != nil {
		return "", err
	}

	script := strings.TrimSpace(content)
	if runes := []rune(script); len(runes) > maxChars {
		script = string(runes[:maxChars])
	}
	return script, nil
}

func (c *OpenAIClient) TodayFortune(ctx context.Context, profile FortuneProfile) (*Fortune, error) {
	content, err := c.complete(ctx, fortuneSystemPrompt, fortuneUserPrompt(profile), 0.7)
	if err != nil {
		return nil, err
	}

	var fortune Fortune
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &fortune); err != nil {
		// keep the raw text rather than failing the whole request
		return &Fortune{Overall: strings.TrimSpace(content)}, nil
	}
	return &fortune, nil
}

func (c *OpenAIClient) SuggestCandidates(ctx context.Context, topic string, excluded []string) ([]StockCandidate, error) {
	userPrompt := fmt.Sprintf(`한국 주식 시장에서 '%s' 관련 대장주 3개를 알려줘.

[제외 조건]
%v 이 키워드들과 관련된 종목은 절대 추천하지 마.`, topic, excluded)

	content, err := c.complete(ctx, stockCandidateSystemPrompt, userPrompt, 0.3)
	if err != nil {
		return nil, err
	}

	var candidates []StockCandidate
	if err := json.Unmarshal([]byte(cleanJSONArrayResponse(content)), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidate response: %w, content: %s", err, content)
	}
	return candidates, nil
}

func (c *OpenAIClient) PickBest(ctx context.Context, topic string, performance []CandidatePerformance) (*StockPick, error) {
	var sb strings.Builder
	for _, p := range performance {
		sb.WriteString(fmt.Sprintf("- %s(%s): %.2f%% 변동\n", p.Name, p.Code, p.ChangePct))
	}

	userPrompt := fmt.Sprintf("주제: '%s'\n데이터:\n%s", topic, sb.String())

	content, err := c.complete(ctx, stockPickSystemPrompt, userPrompt, 0.3)
	if err != nil {
		return nil, err
	}

	var pick StockPick
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &pick); err != nil {
		return nil, fmt.Errorf("failed to parse pick response: %w, content: %s", err, content)
	}
	return &pick, nil
}

func fortuneUserPrompt(profile FortuneProfile) string {
	orHidden := func(s string) string {
		if s == "" {
			return "비공개"
		}
		return s
	}
	interests := "비공개"
	if len(profile.Interests) > 0 {
		interests = strings.Join(profile.Interests, ", ")
	}
	return fmt.Sprintf(`다음 [사용자 정보]를 참고해서 오늘 하루 기준 운세를 작성해줘.

[사용자 정보]
이름: %s
생년월일: %s
관심사: %s
별자리/띠: %s`,
		orHidden(profile.Name), orHidden(profile.Birthdate), interests, orHidden(profile.Sign))
}
