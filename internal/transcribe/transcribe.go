package transcribe

import (
	"context"
	"fmt"
	"time"

	"github.com/patelnav/fcpsub/internal/audio"
	"github.com/patelnav/fcpsub/internal/transcript"
)

// transcription result
type Result struct {
	Segments []transcript.Segment
	Language string
	Duration time.Duration
}

// interface for audio transcription
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}

// transcribers that can process pre-split audio chunks in parallel
type ConcurrentTranscriber interface {
	Transcriber
	TranscribeWithChunks(
		ctx context.Context,
		chunks []audio.ChunkInfo,
		concurrency int,
	) (*Result, error)
}

// transcription service provider
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// transcription options
type Options struct {
	Language           string // source language of the audio
	TranscriptLanguage string // output language for the transcript (default "native")
	Model              string
	Prompt             string
}

// creates a transcriber for the given provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (ConcurrentTranscriber, error) {
	switch provider {
	case ProviderGemini:
		return NewGeminiTranscriber(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranscriber(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
