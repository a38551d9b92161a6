package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/patelnav/fcpsub/internal/audio"
	"github.com/patelnav/fcpsub/internal/config"
	"github.com/patelnav/fcpsub/internal/fcpxml"
	"github.com/patelnav/fcpsub/internal/transcribe"
	"github.com/patelnav/fcpsub/internal/transcript"
	"github.com/patelnav/fcpsub/internal/translate"
	"github.com/patelnav/fcpsub/internal/video"
)

var generateCmd = &cobra.Command{
	Use:   "generate [media_file]",
	Short: "Generate an FCPXML subtitle project for an audio or video file",
	Long: `Generate a Final Cut Pro project (FCPXML) with one title per spoken phrase
for the specified audio or video file, using AI transcription.

The command accepts both audio files (mp3, wav, aac, etc.) and video files
(mp4, mkv, etc.). For video files, audio is automatically extracted before
transcription and the project resolution and frame rate default to those of
the source video.

Title appearance comes from a style preset (see 'fcpsub styles'), individual
style flags, or a title template extracted from an FCPXML file previously
exported from Final Cut Pro (--template).

Examples:
  fcpsub generate video.mp4
  fcpsub generate video.mp4 --style bold-lower --frame-rate 29.97
  fcpsub generate video.mp4 --template house-style.fcpxml
  fcpsub generate podcast.mp3 --width 1920 --height 1080 --font "Avenir Next"
  fcpsub generate video.mp4 --translate-to spanish --translate-provider anthropic`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY env var)")
	generateCmd.Flags().
		String("provider", "gemini", "Transcription provider (gemini, openai)")
	generateCmd.Flags().
		String("model", "", "Model to use for transcription (provider-specific default)")
	generateCmd.Flags().
		IntP("chunk-duration", "d", 1, "Chunk duration in minutes for splitting audio")
	generateCmd.Flags().
		Int("concurrency", 3, "Number of parallel transcription workers")
	generateCmd.Flags().
		String("transcript-language", "native", "Output language for transcript (e.g., 'english', or 'native' for original language)")

	generateCmd.Flags().String("project-name", "", "Project name inside the FCPXML library (default: media file name)")
	generateCmd.Flags().Int("width", 1920, "Project width in pixels")
	generateCmd.Flags().Int("height", 1080, "Project height in pixels")
	generateCmd.Flags().String("frame-rate", "30", "Project frame rate (23.976, 24, 25, 29.97, 30, 50, 59.94, 60)")

	generateCmd.Flags().String("style", "default", "Style preset name (see 'fcpsub styles')")
	generateCmd.Flags().String("font", "", "Font name")
	generateCmd.Flags().Int("font-size", 0, "Font size in points")
	generateCmd.Flags().String("font-color", "", "Font color as hex, e.g. #FFFFFF")
	generateCmd.Flags().Bool("bold", false, "Bold text")
	generateCmd.Flags().Bool("italic", false, "Italic text")
	generateCmd.Flags().String("alignment", "", "Text alignment (left, center, right)")
	generateCmd.Flags().String("stroke-color", "", "Stroke color as hex, e.g. #000000")
	generateCmd.Flags().Float64("stroke-width", -1, "Stroke width (0 disables the stroke override)")
	generateCmd.Flags().Int("vertical-position", 0, "Vertical offset from center (negative = lower)")

	generateCmd.Flags().StringP("template", "t", "", "FCPXML file to extract a title template from")

	generateCmd.Flags().String("translate-to", "", "Translate segments to this language before generating")
	generateCmd.Flags().String("translate-provider", "gemini", "Translation provider (gemini, openai, anthropic)")
	generateCmd.Flags().String("translate-api-key", "", "API key for the translation provider")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !audio.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)", filepath.Ext(mediaPath))
	}

	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	chunkDuration, _ := cmd.Flags().GetInt("chunk-duration")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	model, _ := cmd.Flags().GetString("model")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")
	transcriptLang, _ := cmd.Flags().GetString("transcript-language")
	templatePath, _ := cmd.Flags().GetString("template")
	projectName, _ := cmd.Flags().GetString("project-name")

	provider := transcribe.Provider(strings.ToLower(providerStr))
	if apiKey == "" {
		switch provider {
		case transcribe.ProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		default:
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required: use --api-key flag or set the provider's env var")
	}

	style, err := resolveStyle(cmd)
	if err != nil {
		return err
	}

	baseName := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	if outputPath == "" {
		outputPath = baseName + ".fcpxml"
	}
	if projectName == "" {
		projectName = filepath.Base(baseName)
	}

	var template *fcpxml.Template
	if templatePath != "" {
		template, err = fcpxml.ExtractTemplate(templatePath)
		if err != nil {
			return fmt.Errorf("failed to load template: %w", err)
		}
		logger.Infow("Loaded title template",
			"effect", template.EffectName,
			"params", len(template.Params),
		)
	}

	settings, err := resolveSettings(ctx, cmd, mediaPath)
	if err != nil {
		return err
	}

	logger.Infow("Starting subtitle project generation",
		"input", mediaPath,
		"output", outputPath,
		"provider", providerStr,
		"resolution", fmt.Sprintf("%dx%d", settings.Width, settings.Height),
		"frame_rate", string(settings.FrameRate),
	)

	tempDir, err := os.MkdirTemp("", "fcpsub-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	audioPath := filepath.Join(tempDir, "audio.mp3")
	compressionOpts := audio.DefaultCompressionOptions()

	if audio.IsVideoFile(mediaPath) {
		logger.Infow("Extracting audio from video")

		processor := video.NewProcessor(tempDir)
		extractOpts := video.ExtractAudioOptions{
			Format:     compressionOpts.Format,
			SampleRate: compressionOpts.SampleRate,
			Channels:   compressionOpts.Channels,
			Bitrate:    compressionOpts.Bitrate,
		}

		if err := processor.ExtractAudio(ctx, mediaPath, audioPath, extractOpts); err != nil {
			return fmt.Errorf("failed to extract audio: %w", err)
		}
	} else {
		logger.Infow("Compressing audio for transcription")

		if err := audio.Compress(ctx, mediaPath, audioPath, compressionOpts); err != nil {
			return fmt.Errorf("failed to compress audio: %w", err)
		}
	}

	duration, err := audio.GetDuration(audioPath)
	if err != nil {
		return fmt.Errorf("failed to get audio duration: %w", err)
	}

	logger.Infow("Audio prepared",
		"duration", duration.String(),
	)

	chunkDir := filepath.Join(tempDir, "chunks")
	chunkDur := time.Duration(chunkDuration) * time.Minute

	chunks, err := audio.Chunk(ctx, audioPath, chunkDur, chunkDir, 0)
	if err != nil {
		return fmt.Errorf("failed to split audio: %w", err)
	}

	logger.Infow("Created audio chunks",
		"count", len(chunks),
	)

	transcribeOpts := transcribe.Options{
		Language:           language,
		TranscriptLanguage: transcriptLang,
		Model:              model,
	}

	transcriber, err := transcribe.Factory(ctx, provider, apiKey, transcribeOpts)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	logger.Infow("Transcribing audio",
		"concurrency", concurrency,
	)

	result, err := transcriber.TranscribeWithChunks(ctx, chunks, concurrency)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	logger.Infow("Transcription complete",
		"segments", len(result.Segments),
	)

	// models occasionally emit out-of-order timestamps within a chunk
	transcript.SortByStart(result.Segments)
	segments := transcript.NewSplitter().Split(result.Segments)

	if targetLang, _ := cmd.Flags().GetString("translate-to"); targetLang != "" {
		segments, err = translateSegments(ctx, cmd, segments, language, targetLang)
		if err != nil {
			return err
		}
	}

	document := fcpxml.Generate(segments, style, settings, template, projectName)

	if err := os.WriteFile(outputPath, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("FCPXML project generated successfully: %s\n", absOutput)
	fmt.Printf("  Titles: %d\n", len(segments))
	fmt.Printf("  Duration: %s\n", duration.String())

	return nil
}

// resolveStyle layers explicit style flags over the chosen preset.
func resolveStyle(cmd *cobra.Command) (fcpxml.SubtitleStyle, error) {
	presets, err := config.LoadDefault()
	if err != nil {
		return fcpxml.SubtitleStyle{}, fmt.Errorf("failed to load style presets: %w", err)
	}

	presetName, _ := cmd.Flags().GetString("style")
	style, ok := presets.Get(presetName)
	if !ok {
		return fcpxml.SubtitleStyle{}, fmt.Errorf(
			"unknown style preset %q: available presets are %s",
			presetName,
			strings.Join(presets.Names(), ", "),
		)
	}

	if cmd.Flags().Changed("font") {
		style.FontName, _ = cmd.Flags().GetString("font")
	}
	if cmd.Flags().Changed("font-size") {
		style.FontSize, _ = cmd.Flags().GetInt("font-size")
	}
	if cmd.Flags().Changed("font-color") {
		style.FontColor, _ = cmd.Flags().GetString("font-color")
	}
	if cmd.Flags().Changed("bold") {
		style.Bold, _ = cmd.Flags().GetBool("bold")
	}
	if cmd.Flags().Changed("italic") {
		style.Italic, _ = cmd.Flags().GetBool("italic")
	}
	if cmd.Flags().Changed("alignment") {
		alignment, _ := cmd.Flags().GetString("alignment")
		switch strings.ToLower(alignment) {
		case "left":
			style.Alignment = fcpxml.AlignLeft
		case "center":
			style.Alignment = fcpxml.AlignCenter
		case "right":
			style.Alignment = fcpxml.AlignRight
		default:
			return fcpxml.SubtitleStyle{}, fmt.Errorf(
				"invalid alignment %q: use left, center, or right",
				alignment,
			)
		}
	}
	if cmd.Flags().Changed("stroke-color") {
		style.StrokeColor, _ = cmd.Flags().GetString("stroke-color")
	}
	if cmd.Flags().Changed("stroke-width") {
		style.StrokeWidth, _ = cmd.Flags().GetFloat64("stroke-width")
	}
	if cmd.Flags().Changed("vertical-position") {
		style.VerticalPosition, _ = cmd.Flags().GetInt("vertical-position")
	}

	return style, nil
}

// resolveSettings picks the project resolution and frame rate from flags,
// falling back to the source video's properties when flags are left at their
// defaults.
func resolveSettings(ctx context.Context, cmd *cobra.Command, mediaPath string) (fcpxml.Settings, error) {
	settings := fcpxml.DefaultSettings()

	probe := audio.IsVideoFile(mediaPath) &&
		!cmd.Flags().Changed("width") &&
		!cmd.Flags().Changed("height") &&
		!cmd.Flags().Changed("frame-rate")

	if probe {
		info, err := video.NewProcessor("").GetInfo(ctx, mediaPath)
		if err != nil {
			logger.Debugw("Failed to probe video, using default settings", "error", err)
			return settings, nil
		}
		if info.Width > 0 && info.Height > 0 {
			settings.Width = info.Width
			settings.Height = info.Height
		}
		if info.FrameRate > 0 {
			settings.FrameRate = nearestFrameRate(info.FrameRate)
		}
		return settings, nil
	}

	settings.Width, _ = cmd.Flags().GetInt("width")
	settings.Height, _ = cmd.Flags().GetInt("height")

	rateStr, _ := cmd.Flags().GetString("frame-rate")
	rate, err := fcpxml.ParseFrameRate(rateStr)
	if err != nil {
		return fcpxml.Settings{}, err
	}
	settings.FrameRate = rate

	if settings.Width <= 0 || settings.Height <= 0 {
		return fcpxml.Settings{}, fmt.Errorf("width and height must be positive")
	}

	return settings, nil
}

// nearestFrameRate maps a probed fps to the closest supported rate.
func nearestFrameRate(fps float64) fcpxml.FrameRate {
	best := fcpxml.FrameRate30
	bestDiff := math.Inf(1)
	for _, rate := range fcpxml.FrameRates() {
		diff := math.Abs(rate.FPS() - fps)
		if diff < bestDiff {
			bestDiff = diff
			best = rate
		}
	}
	return best
}

// translateSegments runs the segment texts through a translation provider,
// preserving the timing.
func translateSegments(
	ctx context.Context,
	cmd *cobra.Command,
	segments []transcript.Segment,
	sourceLang, targetLang string,
) ([]transcript.Segment, error) {
	providerStr, _ := cmd.Flags().GetString("translate-provider")
	apiKey, _ := cmd.Flags().GetString("translate-api-key")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	provider := translate.Provider(strings.ToLower(providerStr))
	if apiKey == "" {
		switch provider {
		case translate.ProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		case translate.ProviderAnthropic:
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		default:
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("translation API key is required: use --translate-api-key or the provider's env var")
	}

	translator, err := translate.Factory(ctx, provider, apiKey, translate.Options{
		InputLanguage:  sourceLang,
		TargetLanguage: targetLang,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}

	items := make([]translate.TranslationItem, len(segments))
	for i, seg := range segments {
		items[i] = translate.TranslationItem{Index: i, Text: seg.Text}
	}

	logger.Infow("Translating segments",
		"target_language", targetLang,
		"count", len(items),
	)

	results, err := translator.TranslateWithConcurrency(ctx, items, concurrency)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	translated := make([]transcript.Segment, len(segments))
	copy(translated, segments)
	for _, r := range results {
		if r.Index >= 0 && r.Index < len(translated) && r.Text != "" {
			translated[r.Index].Text = r.Text
		}
	}

	return translated, nil
}
