package render

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/sitefill/internal/content"
	"github.com/ziadkadry99/sitefill/internal/dom"
	"github.com/ziadkadry99/sitefill/internal/escape"
	"github.com/ziadkadry99/sitefill/internal/fetch"
)

// Container ids consumed from pages.
const (
	NewsGridID    = "newsGrid"
	NewsListID    = "newsList"
	GalleryGridID = "galleryGrid"
	GalleryListID = "galleryList"
	CreditsGridID = "creditsGrid"
	LastUpdateID  = "lastUpdate"
)

// Preview sizes.
const (
	NewsPreviewLimit    = 3
	GalleryPreviewLimit = 6
)

// Empty states.
const (
	EmptyNewsPreview = `<div class="muted">No news found.</div>`
	EmptyNewsPage    = `<div class="muted">No news available.</div>`
	EmptyGallery     = `<div class="muted">No gallery yet.</div>`
	EmptyCredits     = `<div class="muted">No credits found.</div>`
)

// Default returns every renderer in page-load order.
func Default() []Renderer {
	return []Renderer{
		NewsPreview(),
		NewsPage(),
		GalleryPreview(),
		GalleryPage(),
		CreditsPage(),
		BuildTime(),
	}
}

// NewsPreview renders the latest three news items on the landing page.
func NewsPreview() Section[content.NewsItem] {
	return Section[content.NewsItem]{
		Label:       "news-preview",
		ContainerID: NewsGridID,
		Resource:    content.NewsResource,
		Limit:       NewsPreviewLimit,
		Empty:       EmptyNewsPreview,
		Item:        newsItem,
	}
}

// NewsPage renders every news item.
func NewsPage() Section[content.NewsItem] {
	return Section[content.NewsItem]{
		Label:       "news-page",
		ContainerID: NewsListID,
		Resource:    content.NewsResource,
		Empty:       EmptyNewsPage,
		Item:        newsItem,
	}
}

func newsItem(env Env, c *dom.Container, item content.NewsItem) {
	c.AppendHTML(fmt.Sprintf(
		`<div class="news-item"><h3>%s</h3><div class="muted">%s</div><p>%s</p></div>`,
		escape.HTML(item.Title),
		escape.HTML(env.Dates.Format(item.Date.String())),
		escape.HTML(item.Content),
	))
}

// GalleryPreview renders the first six images. The image URL and caption are
// assigned as attribute values of a created element rather than interpolated
// into markup; serialization escapes them.
func GalleryPreview() Section[content.GalleryItem] {
	return Section[content.GalleryItem]{
		Label:       "gallery-preview",
		ContainerID: GalleryGridID,
		Resource:    content.GalleryResource,
		Limit:       GalleryPreviewLimit,
		Empty:       EmptyGallery,
		Item: func(_ Env, c *dom.Container, g content.GalleryItem) {
			c.AppendElement("img",
				dom.Attr{Key: "src", Val: g.Image.String()},
				dom.Attr{Key: "alt", Val: g.AltText()},
				dom.Attr{Key: "loading", Val: "lazy"},
			)
		},
	}
}

// GalleryPage renders every image as a captioned card.
func GalleryPage() Section[content.GalleryItem] {
	return Section[content.GalleryItem]{
		Label:       "gallery-page",
		ContainerID: GalleryListID,
		Resource:    content.GalleryResource,
		Empty:       EmptyGallery,
		Item: func(_ Env, c *dom.Container, g content.GalleryItem) {
			c.AppendHTML(fmt.Sprintf(
				`<div class="news-item"><img src="%s" alt="%s" style="width:100%%;border-radius:8px"/><div style="padding-top:8px">%s</div></div>`,
				escape.HTML(g.Image),
				escape.HTML(g.AltText()),
				escape.HTML(g.CaptionText()),
			))
		},
	}
}

// CreditsPage renders one card per person across all groups.
func CreditsPage() Section[content.CreditGroup] {
	return Section[content.CreditGroup]{
		Label:       "credits-page",
		ContainerID: CreditsGridID,
		Resource:    content.CreditsResource,
		Empty:       EmptyCredits,
		Item: func(_ Env, c *dom.Container, group content.CreditGroup) {
			for _, p := range group.People {
				c.AppendHTML(fmt.Sprintf(
					`<div class="person-card"><div class="avatar">%s</div><div><div style="font-weight:800">%s</div><div class="muted">%s</div><div style="margin-top:8px">%s</div></div></div>`,
					escape.HTML(p.Avatar()),
					escape.HTML(p.Name),
					escape.HTML(group.Role),
					escape.HTML(p.CreditText()),
				))
			}
		},
	}
}

// LastUpdate shows when the site content last changed: the date of the
// latest news item, or the current time when there is no news.
type LastUpdate struct {
	ContainerID string
	Resource    string
}

// BuildTime returns the LastUpdate renderer bound to its default container.
func BuildTime() LastUpdate {
	return LastUpdate{ContainerID: LastUpdateID, Resource: content.NewsResource}
}

// Name implements Renderer.
func (LastUpdate) Name() string {
	return "build-time"
}

// Render implements Renderer.
func (b LastUpdate) Render(ctx context.Context, doc *dom.Document, env Env) {
	env = env.withDefaults()
	if !doc.Has(b.ContainerID) {
		return
	}

	items, ok := fetch.Load[[]content.NewsItem](ctx, env.Fetcher, b.Resource)

	var text string
	if ok && len(items) > 0 {
		text = env.Dates.Format(items[0].Date.String())
	} else {
		text = env.Dates.FormatTime(env.Now())
	}

	doc.Update(b.ContainerID, func(c *dom.Container) {
		c.SetText(text)
	})
}
