package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"DrawingBoard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSketch_WritesExports(t *testing.T) {
	cfg := config.Default()
	cfg.DocumentSize = 200
	cfg.HistoryLimit = 8
	cfg.ExportDir = filepath.Join(t.TempDir(), "exports")

	require.NoError(t, sketch(cfg, zap.NewNop(), "out.pdf"))

	pdf, err := os.ReadFile(filepath.Join(cfg.ExportDir, "out.pdf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))

	summary, err := os.ReadFile(filepath.Join(cfg.ExportDir, "out.pdf.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Total strokes: 2\n")
	assert.Contains(t, string(summary), "Color: red")
}
