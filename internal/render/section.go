// Package render fills page containers with markup built from the fetched
// news, gallery and credits documents.
package render

import (
	"context"
	"time"

	"github.com/ziadkadry99/sitefill/internal/datefmt"
	"github.com/ziadkadry99/sitefill/internal/dom"
	"github.com/ziadkadry99/sitefill/internal/fetch"
	"github.com/ziadkadry99/sitefill/internal/logger"
	"golang.org/x/text/language"
)

// Env is what a renderer needs besides the document.
type Env struct {
	Fetcher *fetch.Fetcher
	Dates   *datefmt.Formatter
	Now     func() time.Time
	Log     *logger.Logger
}

func (e Env) withDefaults() Env {
	if e.Dates == nil {
		e.Dates = datefmt.New(language.AmericanEnglish, nil)
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Log == nil {
		e.Log = logger.Discard()
	}
	if e.Fetcher == nil {
		e.Fetcher = fetch.New(nil, e.Log)
	}
	return e
}

// Renderer populates one container of a document.
type Renderer interface {
	Name() string
	Render(ctx context.Context, doc *dom.Document, env Env)
}

// Section renders a JSON list into a container, one rendering per item.
type Section[T any] struct {
	Label       string
	ContainerID string
	Resource    string
	// Limit caps the rendered items. Zero renders all of them.
	Limit int
	// Empty replaces the container's contents when there is nothing to show.
	Empty string
	// Item appends the nodes for one item.
	Item func(env Env, c *dom.Container, item T)
}

// Name implements Renderer.
func (s Section[T]) Name() string {
	return s.Label
}

// Render implements Renderer.
func (s Section[T]) Render(ctx context.Context, doc *dom.Document, env Env) {
	env = env.withDefaults()
	if !doc.Has(s.ContainerID) {
		env.Log.Debug("container absent, skipping", "container", s.ContainerID)
		return
	}

	items, ok := fetch.Load[[]T](ctx, env.Fetcher, s.Resource)

	doc.Update(s.ContainerID, func(c *dom.Container) {
		if !ok || len(items) == 0 {
			c.SetHTML(s.Empty)
			return
		}
		c.Clear()
		for _, item := range head(items, s.Limit) {
			s.Item(env, c, item)
		}
	})
	env.Log.Debug("section rendered", "container", s.ContainerID, "items", len(head(items, s.Limit)), "data", ok)
}

func head[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
