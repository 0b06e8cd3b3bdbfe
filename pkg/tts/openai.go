package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Synthesizer turns a script into spoken audio.
type Synthesizer interface {
	// Speak returns an mp3 stream for the script. The caller must close
	// the reader.
	Speak(ctx context.Context, script string) (io.ReadCloser, error)
}

type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: &client}
}

func (c *OpenAIClient) Speak(ctx context.Context, script string) (io.ReadCloser, error) {
	if script == "" {
		return nil, fmt.Errorf("empty script")
	}

	resp, err := c.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModelGPT4oMiniTTS,
		Voice:          openai.AudioSpeechNewParamsVoiceAlloy,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
		Input:          script,
	})
	if err != nil {
		return nil, fmt.Errorf("openai TTS error: %w", err)
	}
	return resp.Body, nil
}
