package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/docsift/docsift/internal/classify"
	"github.com/docsift/docsift/internal/common"
	"github.com/docsift/docsift/internal/entities"
	"github.com/docsift/docsift/internal/extract"
	"github.com/docsift/docsift/internal/ner"
	"github.com/docsift/docsift/internal/pipeline"
)

type app struct {
	cfg    *common.Config
	log    *slog.Logger
	zlog   *zap.Logger
	rec    entities.Recognizer
	hugot  *ner.HugotRecognizer
	cached *entities.CachedRecognizer
	proc   *pipeline.Processor
}

func newRootCmd() *cobra.Command {
	var configPath string
	a := &app{}

	root := &cobra.Command{
		Use:           "docsift",
		Short:         "Extract structured fields from business-document text",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(configPath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (optional)")

	root.AddCommand(newExtractCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newWatchCmd(a))
	return root
}

func (a *app) init(configPath string) error {
	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	var sink io.Writer = os.Stderr
	if cfg.Logging.File != "" {
		sink = &lumberjack.Logger{
			Filename:   cfg.Logging.File,
			MaxSize:    cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		}
	}
	a.log = slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: slogLevel(cfg.Logging.Level)}))

	zcore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(sink),
		zapLevel(cfg.Logging.Level),
	)
	a.zlog = zap.New(zcore)

	if cfg.NER.ModelPath != "" {
		hugotRec, err := ner.NewHugotRecognizer(cfg.NER.ModelPath, cfg.NER.OnnxFilename, a.zlog)
		if err != nil {
			return common.WrapError(err, "loading NER model")
		}
		a.hugot = hugotRec
		a.rec = entities.WithTimeout(hugotRec, cfg.NER.Timeout)
		if cfg.NER.CacheTTL > 0 {
			a.cached = entities.NewCachedRecognizer(a.rec, cfg.NER.CacheTTL, cfg.NER.CacheSize, a.log)
			a.rec = a.cached
		}
	} else {
		a.log.Warn("cmd.no_ner_model", "hint", "set ner.model_path; running regex-only")
	}

	agg := entities.NewAggregator(a.rec, a.log)
	ex := extract.New(agg, a.log)
	var cl classify.Classifier
	if cfg.Extraction.ClassifyUnknown {
		cl = classify.KeywordClassifier{}
	}
	a.proc = pipeline.NewProcessor(a.log, ex, cl, cfg.Extraction.Validate)
	return nil
}

func (a *app) close() {
	if a.cached != nil {
		a.cached.Stop()
	}
	if a.hugot != nil {
		_ = a.hugot.Close()
	}
	if a.zlog != nil {
		_ = a.zlog.Sync()
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func zapLevel(level string) zapcore.Level {
	if l, err := zapcore.ParseLevel(level); err == nil {
		return l
	}
	return zapcore.InfoLevel
}
