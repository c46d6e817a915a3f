package main

import (
	"flag"
	"fmt"
	"os"

	"DrawingBoard/internal/config"
	"DrawingBoard/internal/export"
	"DrawingBoard/internal/gallery"
	"DrawingBoard/internal/logging"
	"DrawingBoard/internal/session"
	"DrawingBoard/internal/state"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	out := flag.String("out", "sample.pdf", "export file name, written under export_dir")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "drawingboard: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "drawingboard: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	if err := sketch(cfg, logger, *out); err != nil {
		logger.Error("sketch failed", zap.Error(err))
		return 1
	}
	return 0
}

// sketch draws a sample page, keeps it in a gallery and exports it.
func sketch(cfg config.Config, logger *zap.Logger, name string) error {
	doc, err := state.New(cfg.DocumentSize, state.WithHistoryLimit(cfg.HistoryLimit))
	if err != nil {
		return err
	}

	sess := session.New(doc, logger.Named("session"))
	sess.OnChange = func(version int) {
		logger.Debug("document changed", zap.Int("version", version))
	}

	s := float64(cfg.DocumentSize)
	sess.Draw([]state.Point{{X: s * 0.1, Y: s * 0.1}, {X: s * 0.9, Y: s * 0.9}}, 8, export.Black)
	sess.Draw([]state.Point{{X: s * 0.9, Y: s * 0.1}, {X: s * 0.1, Y: s * 0.9}}, 8, export.Red)
	mistake := sess.Draw([]state.Point{{X: s * 0.5, Y: 0}, {X: s * 0.5, Y: s}}, 2, export.Blue)
	sess.EraseStroke(mistake.ID)
	sess.Undo()
	sess.Redo()

	store := gallery.New(logger.Named("gallery"))
	id := store.Insert(sess.Detach())
	sess.Save()

	saved, err := store.Get(id)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := cfg.ExportPath(name)
	if err := export.PDFFile(path, saved, export.Options{Title: "DrawingBoard sample", Background: export.White}); err != nil {
		return err
	}

	if err := writeSummary(path+".txt", saved); err != nil {
		return err
	}

	logger.Info("exported drawing",
		zap.String("path", path),
		zap.Int64("gallery_id", int64(id)),
		zap.Int("strokes", saved.Len()),
		zap.Bool("unsaved_changes", sess.IsChanged()),
	)
	return nil
}

func writeSummary(path string, doc *state.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary: %w", err)
	}
	defer f.Close()
	return export.Summary(f, doc)
}
