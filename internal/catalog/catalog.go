// Package catalog implements the client-side product browser: it pulls
// pages from the product API (category and sort are applied server-side)
// and layers the price, condition and brand filters plus search on top of
// the fetched set, the way the web storefront does.
package catalog

import (
	"context"
	"strings"

	"github.com/fumio65/Thrift-Clothing/internal/models"
)

// DefaultPageSize matches the storefront's 12-card grid.
const DefaultPageSize = 12

// ProductSource fetches one page of products. Implemented by
// pkg/apiclient against the HTTP API and by fakes in tests.
type ProductSource interface {
	FetchPage(ctx context.Context, limit, offset int, category, sort string) ([]models.Product, int64, error)
}

// Filters is the full client-side filter state. Category and Sort travel
// to the server; PriceMin/PriceMax, Condition and Brand are applied only
// to the fetched window.
type Filters struct {
	Category  string
	PriceMin  float64
	PriceMax  float64
	Condition string
	Brand     string
	Sort      string
}

// DefaultFilters returns the storefront's initial filter state.
func DefaultFilters() Filters {
	return Filters{
		Category:  "all",
		PriceMin:  0,
		PriceMax:  10000,
		Condition: "all",
		Brand:     "all",
		Sort:      "newest",
	}
}

// Browser holds the catalog browsing state: the server-fetched window,
// the filtered view derived from it, and pagination counters.
type Browser struct {
	source   ProductSource
	filters  Filters
	pageSize int

	products []models.Product
	filtered []models.Product
	page     int
	total    int64
}

// NewBrowser creates a Browser over the given source with default filters.
func NewBrowser(source ProductSource) *Browser {
	return &Browser{
		source:   source,
		filters:  DefaultFilters(),
		pageSize: DefaultPageSize,
	}
}

// Load fetches the current page. With appendPage the new products extend
// the fetched window (load more); otherwise they replace it. Either way the
// filtered view is re-derived from the full window.
func (b *Browser) Load(ctx context.Context, appendPage bool) error {
	products, total, err := b.source.FetchPage(ctx, b.pageSize, b.page*b.pageSize, b.filters.Category, b.filters.Sort)
	if err != nil {
		return err
	}

	b.total = total
	if appendPage {
		b.products = append(b.products, products...)
	} else {
		b.products = products
	}
	b.ApplyFilters()
	return nil
}

// ApplyFilters re-derives the visible set from the fetched window. A
// product passes when its price is inside [PriceMin, PriceMax], the
// condition matches (or the filter is "all"), and the brand matches (or
// the filter is "all", or the product carries no brand at all — unbranded
// items are never filtered out by brand). Category is not re-checked here;
// the server already applied it.
func (b *Browser) ApplyFilters() {
	filtered := make([]models.Product, 0, len(b.products))
	for _, p := range b.products {
		if p.Price < b.filters.PriceMin || p.Price > b.filters.PriceMax {
			continue
		}
		if b.filters.Condition != "all" && !strings.EqualFold(p.Condition, b.filters.Condition) {
			continue
		}
		if b.filters.Brand != "all" && p.Brand != "" && !strings.EqualFold(p.Brand, b.filters.Brand) {
			continue
		}
		filtered = append(filtered, p)
	}
	b.filtered = filtered
}

// Search replaces the visible set with a case-insensitive substring match
// over name, description and brand. Search is NOT composed with the other
// filters: whichever of Search and ApplyFilters ran last wins, matching
// the storefront's behavior. An empty query falls back to the filters.
func (b *Browser) Search(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		b.ApplyFilters()
		return
	}

	term := strings.ToLower(query)
	matched := make([]models.Product, 0, len(b.products))
	for _, p := range b.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			(p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), term)) {
			matched = append(matched, p)
		}
	}
	b.filtered = matched
}

// LoadMore advances to the next page and appends it to the window.
func (b *Browser) LoadMore(ctx context.Context) error {
	b.page++
	return b.Load(ctx, true)
}

// HasMore reports whether another page remains; it drives the load-more
// control's visibility.
func (b *Browser) HasMore() bool {
	return int64((b.page+1)*b.pageSize) < b.total
}

// Visible returns the current filtered view.
func (b *Browser) Visible() []models.Product {
	return b.filtered
}

// Total returns the server-reported total for the current category filter.
func (b *Browser) Total() int64 {
	return b.total
}

// Filters returns the current filter state.
func (b *Browser) Filters() Filters {
	return b.filters
}

// SetCategory changes the server-side category filter and reloads from the
// first page.
func (b *Browser) SetCategory(ctx context.Context, category string) error {
	b.filters.Category = category
	b.page = 0
	return b.Load(ctx, false)
}

// SetSort changes the server-side sort order and reloads from the first
// page.
func (b *Browser) SetSort(ctx context.Context, sort string) error {
	b.filters.Sort = sort
	b.page = 0
	return b.Load(ctx, false)
}

// SetPriceRange updates the client-side price filter and re-filters the
// already fetched window. No server round-trip.
func (b *Browser) SetPriceRange(min, max float64) {
	b.filters.PriceMin = min
	b.filters.PriceMax = max
	b.ApplyFilters()
}

// SetCondition updates the client-side condition filter and re-filters.
func (b *Browser) SetCondition(condition string) {
	b.filters.Condition = condition
	b.ApplyFilters()
}

// SetBrand updates the client-side brand filter and re-filters.
func (b *Browser) SetBrand(brand string) {
	b.filters.Brand = brand
	b.ApplyFilters()
}

// ClearFilters resets every filter to its default and reloads from the
// first page.
func (b *Browser) ClearFilters(ctx context.Context) error {
	b.filters = DefaultFilters()
	b.page = 0
	return b.Load(ctx, false)
}
