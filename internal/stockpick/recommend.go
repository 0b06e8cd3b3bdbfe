package stockpick

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"finfeed/internal/keyword"
	"finfeed/internal/model"
	"finfeed/pkg/llm"
	"finfeed/pkg/stock"
)

const defaultTopic = "경제"

// fallback candidate when the model returns nothing usable
var fallbackCandidate = llm.StockCandidate{Name: "KODEX 200", Code: "069500"}

type Recommendation struct {
	Topic       string
	TopicSource string // "keyword", "category" or "default"
	Candidates  []string
	Pick        *llm.StockPick
}

type Recommender struct {
	analyst llm.StockAnalyst
	quotes  stock.QuoteSource
}

func NewRecommender(analyst llm.StockAnalyst, quotes stock.QuoteSource) *Recommender {
	return &Recommender{analyst: analyst, quotes: quotes}
}

// Recommend picks a topic from the onboarding answers (include
// keywords first, then a selected category's label), asks the analyst
// for candidate stocks, drops excluded names, attaches recent price
// changes and has the analyst choose the final pick.
func (r *Recommender) Recommend(ctx context.Context, ob *model.UserOnboarding) (*Recommendation, error) {
	topic, source := chooseTopic(ob)

	var excluded []string
	if ob != nil {
		excluded = ob.Q3Keywords
	}

	candidates, err := r.analyst.SuggestCandidates(ctx, topic, excluded)
	if err != nil {
		slog.Warn("candidate generation failed, using fallback", "topic", topic, "error", err)
		candidates = []llm.StockCandidate{fallbackCandidate}
	}

	candidates = FilterExcluded(candidates, excluded)
	if len(candidates) == 0 {
		return &Recommendation{
			Topic:       topic,
			TopicSource: source,
			Candidates:  []string{},
			Pick: &llm.StockPick{
				Name:   "추천 불가",
				Reason: fmt.Sprintf("제외 키워드(%v)로 인해 모든 후보가 필터링되었습니다.", excluded),
			},
		}, nil
	}

	var performance []llm.CandidatePerformance
	var names []string
	for _, c := range candidates {
		if len(c.Code) != 6 {
			slog.Warn("skipping candidate without valid code", "name", c.Name, "code", c.Code)
			continue
		}
		q, err := r.quotes.Quote(ctx, c.Code)
		if err != nil {
			slog.Warn("quote lookup failed", "name", c.Name, "code", c.Code, "error", err)
			continue
		}
		performance = append(performance, llm.CandidatePerformance{
			Name:      c.Name,
			Code:      c.Code,
			ChangePct: q.ChangePct,
		})
		names = append(names, c.Name)
	}

	if len(performance) == 0 {
		return &Recommendation{
			Topic:       topic,
			TopicSource: source,
			Candidates:  []string{},
			Pick: &llm.StockPick{
				Name:   "추천 불가",
				Reason: "후보 종목의 시세 데이터를 가져오지 못했습니다.",
			},
		}, nil
	}

	pick, err := r.analyst.PickBest(ctx, topic, performance)
	if err != nil {
		return nil, fmt.Errorf("final analysis: %w", err)
	}

	return &Recommendation{
		Topic:       topic,
		TopicSource: source,
		Candidates:  names,
		Pick:        pick,
	}, nil
}

func chooseTopic(ob *model.UserOnboarding) (topic, source string) {
	if ob != nil {
		if kws := keyword.Clean(ob.Q2Keywords); len(kws) > 0 {
			return kws[rand.Intn(len(kws))], "keyword"
		}
		var labels []string
		for _, id := range ob.Q1Categories {
			if cat := keyword.CategoryByID(id); cat != nil {
				labels = append(labels, cat.Label)
			}
		}
		if len(labels) > 0 {
			return labels[rand.Intn(len(labels))], "category"
		}
	}
	return defaultTopic, "default"
}
