package converter

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"speech-studio/internal/app/model"
	"speech-studio/internal/app/pipeline"
	"speech-studio/internal/app/util/files"
)

// Intaker runs the intake pipeline for one recording
type Intaker interface {
	IntakeAt(ctx context.Context, up pipeline.Upload, at time.Time) (*model.Transcription, error)
}

// ImportResult reports the outcome for one source file
type ImportResult struct {
	Source     string
	Recording  string
	Transcript string
	Err        error
}

// Importer feeds local WAV files through the intake pipeline. Recordings
// are named after the source file's modification time.
type Importer struct {
	intaker  Intaker
	logger   *zap.Logger
	progress *ProgressManager
}

func NewImporter(intaker Intaker, logger *zap.Logger, progress ProgressConfig) *Importer {
	return &Importer{
		intaker:  intaker,
		logger:   logger,
		progress: NewProgressManager(progress),
	}
}

// ImportDir imports every allow-listed file of dir, oldest first
func (im *Importer) ImportDir(ctx context.Context, dir string, allowed []string) ([]ImportResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return filepath.Join(dir, e.Name()), !e.IsDir() && files.HasAllowedExt(e.Name(), allowed)
	})
	im.logger.Info("Found files to import", zap.String("dir", dir), zap.Int("count", len(paths)))
	return im.ImportFiles(ctx, paths)
}

// ImportFiles imports the given files one at a time. Each file is sent to
// the speech service once; a failure is recorded and the batch continues.
// Files sharing a modification second are spaced one second apart so they
// do not overwrite each other.
func (im *Importer) ImportFiles(ctx context.Context, paths []string) ([]ImportResult, error) {
	type source struct {
		path    string
		modTime time.Time
	}

	sources := make([]source, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{path: p, modTime: info.ModTime()})
	}
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].modTime.Before(sources[j].modTime)
	})

	bar := im.progress.CreateBar(len(sources), "Transcribing")
	defer im.progress.Wait()
	defer bar.Complete()

	used := make(map[string]bool, len(sources))
	results := make([]ImportResult, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		at := src.modTime
		for used[files.TimestampName(at)] {
			at = at.Add(time.Second)
		}
		used[files.TimestampName(at)] = true

		start := time.Now()
		result := im.importOne(ctx, src.path, at)
		results = append(results, result)
		bar.Increment(time.Since(start))
	}
	return results, nil
}

func (im *Importer) importOne(ctx context.Context, path string, at time.Time) ImportResult {
	result := ImportResult{Source: path}

	content, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		im.logger.Error("Failed to read file", zap.String("file", path), zap.Error(err))
		return result
	}

	t, err := im.intaker.IntakeAt(ctx, pipeline.Upload{Filename: filepath.Base(path), Content: content}, at)
	if t != nil {
		result.Recording = t.Recording
		result.Transcript = t.TranscriptName
	}
	if err != nil {
		result.Err = err
		im.logger.Error("Failed to import file", zap.String("file", path), zap.Error(err))
		return result
	}

	im.logger.Debug("Imported file", zap.String("file", path), zap.String("recording", t.Recording))
	return result
}

// Failed returns the results that carry an error
func Failed(results []ImportResult) []ImportResult {
	return lo.Filter(results, func(r ImportResult, _ int) bool {
		return r.Err != nil
	})
}
