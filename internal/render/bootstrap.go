package render

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/sitefill/internal/dom"
)

// Bootstrap runs every renderer against one document, the way a page-load
// event would. Renderers fetch concurrently; each owns its container and
// skips silently when the page does not have it.
func Bootstrap(ctx context.Context, doc *dom.Document, env Env, renderers ...Renderer) {
	if len(renderers) == 0 {
		renderers = Default()
	}
	env = env.withDefaults()
	env.Log = env.Log.With("run", uuid.NewString())

	start := time.Now()
	var wg sync.WaitGroup
	for _, r := range renderers {
		wg.Add(1)
		go func(r Renderer) {
			defer wg.Done()
			scoped := env
			scoped.Log = env.Log.With("section", r.Name())
			if scoped.Fetcher != nil {
				scoped.Fetcher = scoped.Fetcher.WithLogger(scoped.Log)
			}
			r.Render(ctx, doc, scoped)
		}(r)
	}
	wg.Wait()

	env.Log.Debug("page rendered", "renderers", len(renderers), "duration", time.Since(start))
}
