package httpx

import (
	"context"
	"net/http"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/manytooh/catalog-admin/internal/domain/model"
)

const dashboardRecentProducts = 5

// Index redirects the root path to the dashboard. Unauthenticated visitors
// get bounced to the login page by the auth middleware before reaching it.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Dashboard renders the landing page with collection counts and the most
// recently added products. The four collections fetch concurrently; a
// failure in any of them degrades the page to an error banner.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{
			Title:       "Catalog Admin - Dashboard",
			PageTitle:   "Dashboard",
			CurrentPage: PageDashboard,
		},
		Fetch: h.fetchDashboardData,
	})
}

func (h *UIHandlers) fetchDashboardData(ctx context.Context, data map[string]any) error {
	var (
		brands     []model.Brand
		categories []model.ProductCategory
		types      []model.ProductType
		products   []model.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		brands, err = h.BrandSvc.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.CategorySvc.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = h.TypeSvc.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = h.ProductSvc.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger().ErrorContext(ctx, "dashboard fetch failed", "error", err)
		return err
	}

	data["BrandCount"] = len(brands)
	data["CategoryCount"] = len(categories)
	data["TypeCount"] = len(types)
	data["ProductCount"] = len(products)
	data["RecentProducts"] = recentProducts(products, dashboardRecentProducts)
	data["DangerousCount"] = countDangerous(products)
	return nil
}

// recentProducts returns the n most recently created products. Records
// without a creation timestamp sort last.
func recentProducts(products []model.Product, n int) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].CreatedAt, sorted[j].CreatedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func countDangerous(products []model.Product) int {
	count := 0
	for _, p := range products {
		if p.Dangerous() {
			count++
		}
	}
	return count
}
