package llm

import "context"

// FortuneProfile is the optional user context for fortune generation.
type FortuneProfile struct {
	Name      string
	Birthdate string // "2002-08-05" style, free-form
	Sign      string // zodiac sign or Korean zodiac animal
	Interests []string
}

type Fortune struct {
	Overall         string   `json:"overall"`
	Money           string   `json:"money"`
	Love            string   `json:"love"`
	WorkStudy       string   `json:"work_study"`
	Health          string   `json:"health"`
	LuckyItem       string   `json:"lucky_item"`
	LuckyColor      string   `json:"lucky_color"`
	SummaryKeywords []string `json:"summary_keywords"`
}

type StockCandidate struct {
	Name string `json:"name"`
	Code string `json:"code"` // 6-digit KRX code
}

type CandidatePerformance struct {
	Name      string
	Code      string
	ChangePct float64 // recent price change, percent
}

type StockPick struct {
	Name   string `json:"recommended_stock"`
	Code   string `json:"stock_code"`
	Reason string `json:"reason"`
}

// KeywordSuggester proposes today's search keywords from onboarding
// answers. A failure or short result is topped up by the rule-based
// fallback at the call site.
type KeywordSuggester interface {
	SuggestKeywords(ctx context.Context, q1 []int, q2, q3 []string, targetSize int) ([]string, error)
}

// ScriptWriter turns raw article text into a short read-aloud script,
// capped at maxChars runes.
type ScriptWriter interface {
	ShortformScript(ctx context.Context, text string, maxChars int) (string, error)
}

type FortuneTeller interface {
	TodayFortune(ctx context.Context, profile FortuneProfile) (*Fortune, error)
}

// StockAnalyst runs the two LLM passes of the stock recommendation
// flow: candidate generation and the final pick over price data.
type StockAnalyst interface {
	SuggestCandidates(ctx context.Context, topic string, excluded []string) ([]StockCandidate, error)
	PickBest(ctx context.Context, topic string, performance []CandidatePerformance) (*StockPick, error)
}
