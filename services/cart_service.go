package services

import (
	"context"
	"fmt"
	"giftingstudio_server/database"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CartService owns the cart and wishlist merge rules. Every mutation is
// followed by a full reload of the owning user's collection so the caller
// always receives the stored truth, not a locally patched copy. The one
// exception is Clear, which returns the empty set directly on success.
type CartService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCartService(logger *gecho.Logger, db *database.DB) *CartService {
	return &CartService{
		logger: logger,
		db:     db,
	}
}

// LineMatches reports whether a stored line matches an add request. The
// match key is the exact (product, color) pair; a line with no color only
// matches an add with no color.
func LineMatches(line *tables.CartLine, productID uuid.UUID, color string) bool {
	return line.ProductID == productID && line.Color == color
}

// FindMatchingLine returns the first line matching (product, color), nil
// when none does
func FindMatchingLine(lines []tables.CartLine, productID uuid.UUID, color string) *tables.CartLine {
	for i := range lines {
		if LineMatches(&lines[i], productID, color) {
			return &lines[i]
		}
	}
	return nil
}

// GetCart loads the user's full cart with products preloaded
func (cs *CartService) GetCart(ctx context.Context, userID uuid.UUID) ([]tables.CartLine, error) {
	lines, err := database.Query[tables.CartLine](cs.db).
		Where("user_id", userID).
		Relation("Product").
		OrderBy("created_at", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to load cart", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return lines, nil
}

// AddToCart adds one unit of (product, color) to the user's cart. An
// existing matching line is incremented through the same quantity-update
// path an explicit increment uses; otherwise a new line starts at 1.
// Returns the reloaded cart.
func (cs *CartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, color string) ([]tables.CartLine, error) {
	lines, err := cs.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing := FindMatchingLine(lines, productID, color); existing != nil {
		return cs.UpdateQuantity(ctx, userID, existing.ID, existing.Quantity+1)
	}

	line := &tables.CartLine{
		UserID:    userID,
		ProductID: productID,
		Color:     color,
		Quantity:  1,
		CreatedAt: time.Now(),
	}
	_, err = database.Query[tables.CartLine](cs.db).Insert(ctx, line)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		cs.logger.Error("Failed to add cart line",
			gecho.Field("error", mappedErr),
			gecho.Field("user_id", userID),
			gecho.Field("product_id", productID),
		)
		return nil, mappedErr
	}

	return cs.GetCart(ctx, userID)
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are silently
// ignored and the current cart is returned unchanged. Returns the reloaded
// cart.
func (cs *CartService) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) ([]tables.CartLine, error) {
	if quantity < 1 {
		cs.logger.Debug("Ignoring quantity update below 1",
			gecho.Field("line_id", lineID),
			gecho.Field("quantity", quantity),
		)
		return cs.GetCart(ctx, userID)
	}

	affected, err := database.Query[tables.CartLine](cs.db).
		Where("id", lineID).
		Where("user_id", userID).
		Update(ctx, map[string]any{"quantity": quantity})
	if err != nil {
		cs.logger.Error("Failed to update cart quantity",
			gecho.Field("error", err),
			gecho.Field("line_id", lineID),
			gecho.Field("user_id", userID),
		)
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	return cs.GetCart(ctx, userID)
}

// RemoveFromCart deletes one line and returns the reloaded cart
func (cs *CartService) RemoveFromCart(ctx context.Context, userID, lineID uuid.UUID) ([]tables.CartLine, error) {
	affected, err := database.Query[tables.CartLine](cs.db).
		Where("id", lineID).
		Where("user_id", userID).
		Delete(ctx)
	if err != nil {
		cs.logger.Error("Failed to remove cart line",
			gecho.Field("error", err),
			gecho.Field("line_id", lineID),
			gecho.Field("user_id", userID),
		)
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	return cs.GetCart(ctx, userID)
}

// Clear deletes every line the user owns. On success the caller should
// treat the cart as empty without another read.
func (cs *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := database.Query[tables.CartLine](cs.db).
		Where("user_id", userID).
		Delete(ctx)
	if err != nil {
		cs.logger.Error("Failed to clear cart", gecho.Field("error", err), gecho.Field("user_id", userID))
		return lib.MapPgError(err)
	}
	return nil
}

// GetWishlist loads the user's wishlist with products preloaded
func (cs *CartService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]tables.WishlistEntry, error) {
	entries, err := database.Query[tables.WishlistEntry](cs.db).
		Where("user_id", userID).
		Relation("Product").
		OrderBy("created_at", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to load wishlist", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}
	return entries, nil
}

// AddToWishlist adds a product to the wishlist. Adding an already present
// product is a no-op. Returns the reloaded wishlist.
func (cs *CartService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) ([]tables.WishlistEntry, error) {
	present, err := cs.IsInWishlist(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if !present {
		entry := &tables.WishlistEntry{
			UserID:    userID,
			ProductID: productID,
			CreatedAt: time.Now(),
		}
		_, err = database.Query[tables.WishlistEntry](cs.db).Insert(ctx, entry)
		if err != nil {
			mappedErr := lib.MapPgError(err)
			// The unique constraint can still fire on a concurrent add;
			// treat that as the no-op it is
			if !lib.IsUniqueViolation(mappedErr) {
				cs.logger.Error("Failed to add wishlist entry",
					gecho.Field("error", mappedErr),
					gecho.Field("user_id", userID),
					gecho.Field("product_id", productID),
				)
				return nil, mappedErr
			}
		}
	}

	return cs.GetWishlist(ctx, userID)
}

// RemoveFromWishlist deletes a product from the wishlist and returns the
// reloaded wishlist
func (cs *CartService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) ([]tables.WishlistEntry, error) {
	_, err := database.Query[tables.WishlistEntry](cs.db).
		Where("user_id", userID).
		Where("product_id", productID).
		Delete(ctx)
	if err != nil {
		cs.logger.Error("Failed to remove wishlist entry",
			gecho.Field("error", err),
			gecho.Field("user_id", userID),
			gecho.Field("product_id", productID),
		)
		return nil, lib.MapPgError(err)
	}

	return cs.GetWishlist(ctx, userID)
}

// IsInWishlist is the membership test behind the heart toggle
func (cs *CartService) IsInWishlist(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	exists, err := database.Query[tables.WishlistEntry](cs.db).
		Where("user_id", userID).
		Where("product_id", productID).
		Exists(ctx)
	if err != nil {
		cs.logger.Error("Failed to check wishlist membership",
			gecho.Field("error", err),
			gecho.Field("user_id", userID),
			gecho.Field("product_id", productID),
		)
		return false, lib.MapPgError(err)
	}
	return exists, nil
}
