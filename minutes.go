package minutes

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/bredow/minutes/core/keyword"
	"github.com/bredow/minutes/core/pipeline"
	"github.com/bredow/minutes/helper"
	"github.com/bredow/minutes/model"
)

// Analyzer provides a unified interface to the transcript analysis pipeline:
// tokenization, part-of-speech tagging, action item extraction, keyword
// extraction and frequency-based summarization. One Analyzer is built per
// process and shared; individual calls are independent.
type Analyzer struct {
	Tagger   *pipeline.Tagger
	Pipeline *pipeline.Pipeline
	// Logging
	log *slog.Logger
}

// NewAnalyzer creates an Analyzer from config. A nil config selects the
// defaults. The tagger lexicon is loaded once here and reused across calls.
func NewAnalyzer(config *model.AnalyzerConfig) (*Analyzer, error) {
	if config == nil {
		config = model.DefaultAnalyzerConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, helper.NewError("validate analyzer config", err)
	}

	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: logLevel(config.LogLevel),
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	tagger, err := pipeline.NewTagger()
	if err != nil {
		return nil, helper.NewError("create tagger", err)
	}

	p := pipeline.NewPipeline(
		pipeline.WordTokenizer(),
		tagger.Tag,
		pipeline.VerbActionItems(),
		keywordFunc(config),
		pipeline.FrequencySummarizer(),
	)
	p.SummarySentences = config.SummarySentences

	return &Analyzer{
		Tagger:   tagger,
		Pipeline: p,
		log:      logger,
	}, nil
}

// keywordFunc selects the worker bridge when a worker command is configured
// and the in-process extractor otherwise. Both satisfy the same contract,
// so the pipeline never knows which one it talks to.
func keywordFunc(config *model.AnalyzerConfig) pipeline.KeywordFunc {
	if config.WorkerCommand == "" {
		return keyword.NewRakeExtractor(10).Extract
	}
	return keyword.NewWorkerBridge(config.WorkerCommand, config.WorkerArgs, config.WorkerTimeout()).Extract
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetPipeline replaces the analysis pipeline, e.g. to swap single stages
func (a *Analyzer) SetPipeline(p *pipeline.Pipeline) {
	a.Pipeline = p
}

// Analyze produces the structured analysis for one transcript. Empty text
// returns a zeroed result without spawning a worker process. A keyword
// extraction failure fails the whole call with a *keyword.ExtractionError;
// no partial result is returned.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*model.AnalysisResult, error) {
	callID := uuid.New()
	a.log.Debug("analyzing transcript", "call", callID, "chars", len(text))

	result, err := a.Pipeline.Analyze(ctx, text)
	if err != nil {
		a.log.Error("analysis failed", "call", callID, "error", err)
		return nil, err
	}

	a.log.Info("analysis complete",
		"call", callID,
		"word_count", result.WordCount,
		"action_items", len(result.ActionItems),
		"keywords", len(result.Keywords),
	)
	return result, nil
}

// Summarize produces the summary for one transcript. It never fails; the
// summarizer converts internal failures to sentinel strings.
func (a *Analyzer) Summarize(text string) string {
	return a.Pipeline.Summarize(text)
}

// Process runs Analyze and Summarize for one saved transcript and assembles
// the record the caller persists. Analysis failures abort the call;
// summarization by contract cannot.
func (a *Analyzer) Process(ctx context.Context, text string) (*model.TranscriptRecord, error) {
	analysis, err := a.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	summary := a.Summarize(text)

	return model.NewTranscriptRecord(text, analysis, summary), nil
}
