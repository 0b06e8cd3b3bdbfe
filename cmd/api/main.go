package main

import (
	"log"
	"log/slog"
	"os"

	"finfeed/db"
	"finfeed/internal/handler"
	"finfeed/internal/recommend"
	"finfeed/internal/repository"
	"finfeed/internal/stockpick"
	"finfeed/pkg/llm"
	"finfeed/pkg/news"
	"finfeed/pkg/scrape"
	"finfeed/pkg/stock"
	"finfeed/pkg/tts"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	naver := news.NewNaverClient(os.Getenv("NAVER_CLIENT_ID"), os.Getenv("NAVER_CLIENT_SECRET"))
	assembler := recommend.NewAssembler(naver, recommend.DefaultConfig())

	openaiClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	// Anthropic takes over writing duties when a key is configured;
	// keyword suggestion and the stock flow stay on OpenAI.
	var writer llm.ScriptWriter = openaiClient
	var teller llm.FortuneTeller = openaiClient
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		anthropicClient := llm.NewAnthropicClient(key)
		writer = anthropicClient
		teller = anthropicClient
	}
	var suggester llm.KeywordSuggester = openaiClient
	var synthesizer tts.Synthesizer = tts.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	quotes := stock.NewFinnhubClient(os.Getenv("FINNHUB_API_KEY"))
	recommender := stockpick.NewRecommender(openaiClient, quotes)

	onboardingRepo := repository.NewOnboardingRepository(db.DB)
	keywordCache := db.NewKeywordCache(db.Redis)

	healthHandler := handler.NewHealthHandler(db.DB)
	preferenceHandler := handler.NewPreferenceHandler(onboardingRepo)
	feedHandler := handler.NewFeedHandler(onboardingRepo, assembler, scrape.NewClient(), writer)
	keywordHandler := handler.NewKeywordHandler(onboardingRepo, suggester, keywordCache)
	fortuneHandler := handler.NewFortuneHandler(teller)
	stockHandler := handler.NewStockHandler(onboardingRepo, recommender)
	ttsHandler := handler.NewTTSHandler(onboardingRepo, naver, writer, synthesizer)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", healthHandler.GetHealth)

	api := r.Group("/api")
	api.GET("/preferences/categories", preferenceHandler.GetCategories)
	api.POST("/preferences/q1", preferenceHandler.SaveQ1)
	api.POST("/preferences/q2", preferenceHandler.SaveQ2)
	api.POST("/preferences/q3", preferenceHandler.SaveQ3)
	api.GET("/preferences/status", preferenceHandler.GetStatus)
	api.GET("/feed/home", feedHandler.GetHomeFeed)
	api.POST("/feed/content", feedHandler.GetContent)
	api.GET("/news/today", feedHandler.GetTodayNews)
	api.GET("/keywords/today", keywordHandler.GetTodayKeywords)
	api.GET("/fortune/today", fortuneHandler.GetTodayFortune)
	api.GET("/stock/recommend", stockHandler.GetRecommendation)
	api.GET("/tts/news", ttsHandler.GetNewsAudio)
	api.POST("/tts/shortform", ttsHandler.GetShortformAudio)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
