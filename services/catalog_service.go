package services

import (
	"context"
	"errors"
	"fmt"
	"giftingstudio_server/catalog"
	"giftingstudio_server/database"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// CatalogListOptions contains the catalog page query: an optional category
// label, an optional subcategory label (only honored alongside a category)
// and a sort key
type CatalogListOptions struct {
	Category    string          `json:"category,omitempty"`
	Subcategory string          `json:"subcategory,omitempty"`
	Sort        catalog.SortKey `json:"sort"`
}

func (o *CatalogListOptions) cacheKey() string {
	return fmt.Sprintf("%s|%s|%s", o.Category, o.Subcategory, o.Sort)
}

// ListProducts resolves a catalog page: products whose free-text category
// field contains the leading token of the requested label, narrowed by
// subcategory when given, in the requested order. An empty category
// returns the whole catalog.
func (cs *CatalogService) ListProducts(ctx context.Context, opts *CatalogListOptions) ([]tables.Product, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &CatalogListOptions{Sort: catalog.SortDefault}
	}

	cached, err := cs.cacheService.GetProductListFromCache(opts.cacheKey())
	if err != nil {
		cs.logger.Warn("Failed to read product listing from cache", gecho.Field("error", err))
	} else if cached != nil {
		cs.logger.Debug("Product listing served from cache",
			gecho.Field("category", opts.Category),
			gecho.Field("count", len(cached)),
			gecho.Field("duration", time.Since(startTime)),
		)
		return cached, nil
	}

	query := database.Query[tables.Product](cs.db).
		OrderBy("created_at", database.DESC).
		Timeout(10 * time.Second)

	// The database narrows on the leading token; the in-memory pass below
	// re-checks under full Unicode case folding, which ILIKE only
	// approximates for non-ASCII labels.
	if token := catalog.FirstToken(opts.Category); token != "" {
		query = query.WhereILike("category", "%"+token+"%")
	}

	products, err := query.All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch catalog products",
			gecho.Field("error", err),
			gecho.Field("category", opts.Category),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	matched := catalog.Filter(products, opts.Category, opts.Subcategory)
	sorted := catalog.SortProducts(matched, opts.Sort)

	go func() {
		if err := cs.cacheService.SetProductListInCache(opts.cacheKey(), sorted); err != nil {
			cs.logger.Warn("Failed to cache product listing", gecho.Field("error", err))
		}
	}()

	cs.logger.Debug("Catalog resolved",
		gecho.Field("category", opts.Category),
		gecho.Field("subcategory", opts.Subcategory),
		gecho.Field("sort", string(opts.Sort)),
		gecho.Field("fetched", len(products)),
		gecho.Field("matched", len(matched)),
		gecho.Field("duration", time.Since(startTime)),
	)

	return sorted, nil
}

// GetProductByID retrieves a single product by ID
func (cs *CatalogService) GetProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	startTime := time.Now()

	product, err := database.Query[tables.Product](cs.db).
		Where("id", id).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch product by ID",
			gecho.Field("id", id),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	if product == nil {
		cs.logger.Warn("Product not found", gecho.Field("id", id))
		return nil, lib.ErrNotFound
	}

	return product, nil
}

// GetCategories returns the taxonomy with subcategories preloaded
func (cs *CatalogService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		Relation("Subcategories").
		OrderBy("name", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// CreateProduct inserts a new product and drops the listing cache
func (cs *CatalogService) CreateProduct(ctx context.Context, product *tables.Product) (*tables.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	created, err := database.Query[tables.Product](cs.db).Insert(ctx, product)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		cs.logger.Error("Failed to create product", gecho.Field("error", mappedErr), gecho.Field("name", product.Name))
		return nil, mappedErr
	}

	cs.invalidateListings()
	cs.logger.Info("Product created", gecho.Field("id", created.ID), gecho.Field("name", created.Name))
	return created, nil
}

// UpdateProduct applies a partial update to a product and drops the listing cache
func (cs *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now()

	affected, err := database.UpdateByID[tables.Product](cs.db, ctx, id, fields)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		cs.logger.Error("Failed to update product", gecho.Field("error", mappedErr), gecho.Field("id", id))
		return mappedErr
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateListings()
	return nil
}

// DeleteProduct removes a product and drops the listing cache
func (cs *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Product](cs.db, ctx, id)
	if err != nil {
		cs.logger.Error("Failed to delete product", gecho.Field("error", err), gecho.Field("id", id))
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateListings()
	cs.logger.Info("Product deleted", gecho.Field("id", id))
	return nil
}

// AdjustStock changes a product's stock by delta and reports whether the
// product dropped under its low-stock threshold
func (cs *CatalogService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*tables.Product, error) {
	product, err := cs.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStock := product.Stock + delta
	if newStock < 0 {
		newStock = 0
	}

	err = cs.UpdateProduct(ctx, id, map[string]any{"stock": newStock})
	if err != nil {
		return nil, err
	}

	product.Stock = newStock
	if product.LowStock() {
		cs.logger.Warn("Product below low-stock threshold",
			gecho.Field("id", id),
			gecho.Field("name", product.Name),
			gecho.Field("stock", newStock),
		)
	}

	return product, nil
}

// ListLowStock returns products at or under their low-stock threshold,
// lowest stock first
func (cs *CatalogService) ListLowStock(ctx context.Context) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](cs.db).
		WhereRaw("stock <= low_stock_threshold").
		OrderBy("stock", database.ASC).
		Timeout(10 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch low-stock products", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// CreateCategory inserts a taxonomy entry
func (cs *CatalogService) CreateCategory(ctx context.Context, category *tables.Category) (*tables.Category, error) {
	created, err := database.Query[tables.Category](cs.db).Insert(ctx, category)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		cs.logger.Error("Failed to create category", gecho.Field("error", mappedErr), gecho.Field("name", category.Name))
		return nil, mappedErr
	}
	return created, nil
}

// CreateSubcategory inserts a subcategory under its owning category
func (cs *CatalogService) CreateSubcategory(ctx context.Context, subcategory *tables.Subcategory) (*tables.Subcategory, error) {
	created, err := database.Create(cs.db, ctx, subcategory)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		cs.logger.Error("Failed to create subcategory", gecho.Field("error", mappedErr), gecho.Field("name", subcategory.Name))
		return nil, mappedErr
	}
	return created, nil
}

// DeleteCategory removes a category and its subcategories in one
// transaction. Subcategories go first; the schema has no ON DELETE CASCADE.
func (cs *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*tables.Subcategory)(nil)).
			Where("category_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*tables.Category)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			return lib.ErrNotFound
		}
		cs.logger.Error("Failed to delete category", gecho.Field("error", err), gecho.Field("id", id))
		return lib.MapPgError(err)
	}

	cs.logger.Info("Category deleted", gecho.Field("id", id))
	return nil
}

func (cs *CatalogService) invalidateListings() {
	go func() {
		if err := cs.cacheService.InvalidateProductCache(); err != nil {
			cs.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err))
		}
	}()
}
