// Package site renders whole site trees ahead of time and serves them with
// pages rendered per request.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/sitefill/internal/dom"
	"github.com/ziadkadry99/sitefill/internal/logger"
	"github.com/ziadkadry99/sitefill/internal/progress"
	"github.com/ziadkadry99/sitefill/internal/render"
	"github.com/ziadkadry99/sitefill/internal/walker"
)

// Builder renders the pages of a site tree into an output directory and
// copies every other file verbatim.
type Builder struct {
	SiteDir   string
	OutputDir string
	Include   []string
	Exclude   []string
	Env       render.Env
	Reporter  progress.Reporter
	Log       *logger.Logger
}

// Build walks the site tree and writes the rendered site. Returns the number
// of pages rendered.
func (b *Builder) Build(ctx context.Context) (int, error) {
	siteDir, err := filepath.Abs(b.SiteDir)
	if err != nil {
		return 0, fmt.Errorf("resolving site dir: %w", err)
	}
	outputDir, err := filepath.Abs(b.OutputDir)
	if err != nil {
		return 0, fmt.Errorf("resolving output dir: %w", err)
	}
	if siteDir == outputDir {
		return 0, fmt.Errorf("output dir %s must differ from site dir", outputDir)
	}

	log := b.Log
	if log == nil {
		log = b.Env.Log
	}
	if log == nil {
		log = logger.Discard()
	}
	reporter := b.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if rel, err := filepath.Rel(siteDir, outputDir); err == nil && filepath.IsLocal(rel) {
		log.Warn("output dir is inside the site dir, excluding it from the walk", "output", outputDir)
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir:  siteDir,
		Include:  b.Include,
		Exclude:  b.Exclude,
		SkipDirs: []string{outputDir},
	})
	if err != nil {
		return 0, fmt.Errorf("walking site dir: %w", err)
	}

	pages := walker.Pages(files)
	if len(pages) == 0 {
		return 0, fmt.Errorf("no pages found in %s", b.SiteDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, err
	}

	// Copy assets first so the output is complete even if a page fails.
	for _, f := range files {
		if f.IsPage {
			continue
		}
		if err := copyFile(f.Path, filepath.Join(outputDir, filepath.FromSlash(f.RelPath))); err != nil {
			return 0, fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
	}

	env := b.Env
	reporter.Start(len(pages))
	defer reporter.Finish()

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		env.Log = log.With("page", page.RelPath)
		if err := b.renderPage(ctx, env, page, filepath.Join(outputDir, filepath.FromSlash(page.RelPath))); err != nil {
			return i, fmt.Errorf("rendering %s: %w", page.RelPath, err)
		}
		reporter.Update(i+1, page.RelPath)
	}

	log.Info("site rendered", "pages", len(pages), "assets", len(files)-len(pages), "output", outputDir)
	return len(pages), nil
}

// renderPage parses one page, bootstraps it and writes the result.
func (b *Builder) renderPage(ctx context.Context, env render.Env, page walker.FileInfo, outPath string) error {
	f, err := os.Open(page.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return err
	}

	render.Bootstrap(ctx, doc, env)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
