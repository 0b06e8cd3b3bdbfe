package handler

type CategoryResponse struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Q1Request struct {
	SelectedCategoryIDs []int `json:"selected_category_ids"`
}

type Q1Response struct {
	SelectedCategories []CategoryResponse `json:"selected_categories"`
}

type Q2Request struct {
	Keywords []string `json:"keywords"`
}

type Q2Response struct {
	Keywords []string `json:"keywords"`
}

type Q3Request struct {
	ExcludeKeywords []string `json:"exclude_keywords"`
}

type Q3Response struct {
	ExcludeKeywords []string `json:"exclude_keywords"`
}

type OnboardingStatusResponse struct {
	Q1Completed bool `json:"q1_completed"`
	Q2Completed bool `json:"q2_completed"`
	Q3Completed bool `json:"q3_completed"`
}

type ArticleResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
}

type FeedResponse struct {
	Keywords []string          `json:"keywords"`
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}

type TodayNewsResponse struct {
	Count int               `json:"count"`
	Data  []ArticleResponse `json:"data"`
}

type ContentRequest struct {
	URL string `json:"url"`
}

type ContentResponse struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

type ShortformRequest struct {
	Text     string `json:"text"`
	MaxChars int    `json:"max_chars"`
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

type FortuneResponse struct {
	Name      string      `json:"name,omitempty"`
	Birthdate string      `json:"birthdate,omitempty"`
	Sign      string      `json:"sign,omitempty"`
	Fortune   interface{} `json:"fortune"`
}

type StockPickResponse struct {
	UserInterest    string   `json:"user_interest"`
	Source          string   `json:"source"`
	CandidatesFound []string `json:"candidates_found"`
	AIResult        struct {
		RecommendedStock string `json:"recommended_stock"`
		StockCode        string `json:"stock_code"`
		Reason           string `json:"reason"`
	} `json:"ai_result"`
}
