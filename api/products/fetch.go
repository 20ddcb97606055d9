package products

import (
	"errors"
	"net/http"

	"giftingstudio_server/handling"
	"giftingstudio_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListProducts handles GET /products with category, subcategory and sort filters
func (prm *ProductRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts := handling.ParseCatalogListOptions(r)

	prm.logger.Debug("Fetching catalog",
		gecho.Field("category", opts.Category),
		gecho.Field("subcategory", opts.Subcategory),
		gecho.Field("sort", string(opts.Sort)),
	)

	products, err := prm.catalogService.ListProducts(ctx, opts)
	if err != nil {
		prm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
			"filters": map[string]string{
				"category":    opts.Category,
				"subcategory": opts.Subcategory,
				"sort":        string(opts.Sort),
			},
		}),
		gecho.Send(),
	)
}

// GetProduct handles GET /products/{id}
func (prm *ProductRoutesManager) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		prm.logger.Warn("Invalid product ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.catalogService.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to fetch product by ID", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchOne"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// ListReviews handles GET /products/{id}/reviews
func (prm *ProductRoutesManager) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	reviews, err := prm.reviewService.GetReviewsByProduct(ctx, id)
	if err != nil {
		prm.logger.Error("Failed to fetch reviews", gecho.Field("product_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.reviews.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"reviews": reviews,
			"count":   len(reviews),
		}),
		gecho.Send(),
	)
}

// ListCategories handles GET /categories
func (prm *ProductRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := prm.catalogService.GetCategories(r.Context())
	if err != nil {
		prm.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.categories.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
		}),
		gecho.Send(),
	)
}
