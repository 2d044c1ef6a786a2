package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nba-voice-stats/config"
	"nba-voice-stats/internal/application"
	"nba-voice-stats/internal/infra/audio"
	"nba-voice-stats/internal/infra/bbref"
	"nba-voice-stats/internal/infra/cache"
	"nba-voice-stats/internal/infra/openai"
	"nba-voice-stats/internal/infra/pushover"
	"nba-voice-stats/internal/infra/speech"
	"nba-voice-stats/internal/infra/whispercpp"
	"nba-voice-stats/internal/matching"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	name := flag.String("name", "", "player name to look up, skipping recording and transcription")
	refresh := flag.Bool("refresh", false, "ignore the cached table and fetch it again")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	if err := run(ctx, cfg, *name, *refresh, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("assistant error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, name string, refresh bool, logger *slog.Logger) error {
	tableCache, closeCache, err := createCache(cfg.Stats, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	loader := application.NewStatsLoader(
		createTableSource(cfg.Stats, logger),
		tableCache,
		cfg.Stats.URL,
		logger,
	).WithRefresh(refresh)

	scorer, err := matching.NewScorer(cfg.Match.Scorer)
	if err != nil {
		return err
	}
	resolver := application.NewNameResolver(scorer, cfg.Match.ThresholdOrDefault())

	speaker, err := createSpeaker(cfg, logger)
	if err != nil {
		return err
	}

	var notifier application.Notifier
	if cfg.Pushover.Enabled {
		notifier = pushover.NewClient(cfg.Pushover.Token, cfg.Pushover.UserKey)
	} else {
		notifier = &application.NoopNotifier{}
	}

	// Capture and transcription are only needed when no name was given.
	var (
		capture     application.AudioCapture
		transcriber application.Transcriber = &application.NoopTranscriber{}
	)
	if name == "" {
		capture = createCapture(cfg.Audio, logger)

		stt, closeSTT, err := createTranscriber(cfg, logger)
		if err != nil {
			return err
		}
		defer closeSTT()
		transcriber = stt
	}

	assistant := application.NewAssistant(
		loader,
		capture,
		transcriber,
		resolver,
		speaker,
		notifier,
		recordingConfig(cfg.Audio, logger),
		logger,
	)

	logger.Info("starting nba stats assistant",
		"fetcher", cfg.Stats.Fetcher,
		"cache", cfg.Stats.Cache,
		"speech", cfg.Speech.Provider,
	)

	var utterance string
	if name != "" {
		utterance, err = assistant.RunWithName(ctx, name)
	} else {
		utterance, err = assistant.Run(ctx)
	}
	if err != nil {
		return err
	}

	logger.Info("done", "utterance", utterance)
	return nil
}

func createTableSource(cfg config.StatsConfig, logger *slog.Logger) application.TableSource {
	switch cfg.Fetcher {
	case "http":
		return bbref.NewClient(cfg.TableID)
	case "browser":
		return bbref.NewBrowserClient(cfg.TableID)
	default:
		logger.Warn("unknown fetcher, using http", "fetcher", cfg.Fetcher)
		return bbref.NewClient(cfg.TableID)
	}
}

func createCache(cfg config.StatsConfig, logger *slog.Logger) (application.TableCache, func(), error) {
	switch cfg.Cache {
	case "redis":
		ttl := parseDuration(cfg.RedisTTL, 0, logger)
		rc, err := cache.NewRedisCache(cfg.RedisURL, cfg.RedisKey, ttl)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return rc, func() { _ = rc.Close() }, nil
	case "file":
	default:
		logger.Warn("unknown cache, using file", "cache", cfg.Cache)
	}
	return cache.NewFileCache(cfg.CachePath), func() {}, nil
}

func createCapture(cfg config.AudioConfig, logger *slog.Logger) application.AudioCapture {
	switch cfg.Source {
	case "microphone":
		return audio.NewMicrophoneCapture(logger)
	case "file":
		return audio.NewFileCapture(cfg.InputFile)
	default:
		logger.Warn("unknown audio source, using microphone", "source", cfg.Source)
		return audio.NewMicrophoneCapture(logger)
	}
}

func createTranscriber(cfg *config.Config, logger *slog.Logger) (application.Transcriber, func(), error) {
	switch cfg.Transcriber.Provider {
	case "whispercpp":
		t, err := whispercpp.New(cfg.Transcriber.ModelPath, cfg.Transcriber.Language, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("loading whisper model: %w", err)
		}
		return t, func() { _ = t.Close() }, nil
	case "openai":
	default:
		logger.Warn("unknown transcriber, using openai", "provider", cfg.Transcriber.Provider)
	}
	return openai.NewWhisperClient(cfg.OpenAI.APIKey, cfg.OpenAI.Language), func() {}, nil
}

func createSpeaker(cfg *config.Config, logger *slog.Logger) (application.SpeechOutput, error) {
	switch cfg.Speech.Provider {
	case "openai":
		tts := openai.NewTTSClient(cfg.OpenAI.APIKey, cfg.OpenAI.TTSModel, cfg.OpenAI.TTSVoice)
		return speech.NewSynthSpeaker(tts, audio.NewPlayer()), nil
	case "stdout":
		return speech.NewWriterSpeaker(os.Stdout), nil
	case "command":
	default:
		logger.Warn("unknown speech provider, using command", "provider", cfg.Speech.Provider)
	}

	speaker, err := speech.NewCommandSpeaker(cfg.Speech.Command)
	if err != nil {
		logger.Warn("no speech command available, printing instead", "error", err)
		return speech.NewWriterSpeaker(os.Stdout), nil
	}
	return speaker, nil
}

func recordingConfig(cfg config.AudioConfig, logger *slog.Logger) application.RecordingConfig {
	format := application.DefaultAudioFormat()
	format.SampleRate = cfg.SampleRate
	format.Channels = cfg.Channels

	duration := parseDuration(cfg.Duration, application.DefaultRecordingDuration, logger)
	if duration <= 0 {
		duration = application.DefaultRecordingDuration
	}

	return application.RecordingConfig{
		Path:     cfg.Path,
		Format:   format,
		Duration: duration,
	}
}

// parseDuration returns fallback for an empty value and logs invalid ones.
func parseDuration(value string, fallback time.Duration, logger *slog.Logger) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn("invalid duration, using default", "error", err, "value", value)
		return fallback
	}
	return d
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
