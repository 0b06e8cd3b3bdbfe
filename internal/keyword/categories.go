package keyword

// Category is one onboarding interest category. The table is fixed
// application configuration, not database content.
type Category struct {
	ID          int      `json:"id"`
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Keywords    []string `json:"-"` // representative search keywords
}

var Categories = []Category{
	{
		ID: 1, Key: "all_economy", Label: "전체 경제",
		Description: "거시경제, 물가, 성장률, 정책 등 전체적인 경제 흐름을 보고 싶어요.",
		Keywords:    []string{"금리", "물가", "성장률", "환율", "GDP"},
	},
	{
		ID: 2, Key: "stock", Label: "주식·증권",
		Description: "국내·해외 주식, ETF, 공모주, 증권사 리포트를 위주로 보고 싶어요.",
		Keywords:    []string{"주식시장", "코스피", "코스닥", "반도체", "2차전지"},
	},
	{
		ID: 3, Key: "real_estate", Label: "부동산",
		Description: "아파트/상가/전월세, 청약, 부동산 정책 등을 보고 싶어요.",
		Keywords:    []string{"부동산", "전세", "월세", "매매", "청약"},
	},
	{
		ID: 4, Key: "financial_products", Label: "금융상품",
		Description: "재테크, ETF, 펀드, 대출, 예·적금 관련 소식을 보고 싶어요.",
		Keywords:    []string{"재테크", "ETF", "펀드", "대출", "저축"},
	},
	{
		ID: 5, Key: "global", Label: "해외·글로벌",
		Description: "미국·중국 등 해외 경제, 지정학 이슈, 글로벌 리스크를 보고 싶어요.",
		Keywords:    []string{"미국증시", "나스닥", "S&P500", "테슬라", "애플"},
	},
	{
		ID: 6, Key: "commodity", Label: "원자재·에너지",
		Description: "유가, 금, 원자재 가격과 관련 산업 이슈를 보고 싶어요.",
		Keywords:    []string{"원자재", "유가", "금", "구리", "원유"},
	},
	{
		ID: 7, Key: "fx", Label: "환율·외환",
		Description: "기준금리, 환율, 주요 통화 흐름을 보고 싶어요.",
		Keywords:    []string{"환율", "달러", "엔화", "위안화", "유로"},
	},
	{
		ID: 8, Key: "macro_policy", Label: "거시·정책",
		Description: "통화정책, 재정정책, 경기 전망 관련 뉴스를 보고 싶어요.",
		Keywords:    []string{"거시경제", "통화정책", "재정정책", "경기침체", "인플레이션"},
	},
}

// CategoryByID returns the category with the given id, or nil.
func CategoryByID(id int) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// ValidCategoryIDs filters ids down to known categories, dropping
// duplicates and preserving order, capped at max entries.
func ValidCategoryIDs(ids []int, max int) []int {
	out := make([]int, 0, max)
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] || CategoryByID(id) == nil {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == max {
			break
		}
	}
	return out
}
