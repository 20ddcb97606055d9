package admin

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"giftingstudio_server/lib"
	"giftingstudio_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UpdateProductRequest struct {
	Name              *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string   `json:"description"`
	Price             *int64    `json:"price" validate:"omitempty,gt=0"`
	Category          *string   `json:"category" validate:"omitempty,min=1,max=100"`
	Subcategory       *string   `json:"subcategory" validate:"omitempty,max=100"`
	Image             *string   `json:"image" validate:"omitempty,url"`
	Images            *[]string `json:"images" validate:"omitempty,dive,url"`
	Colors            *[]string `json:"colors"`
	Stock             *int      `json:"stock" validate:"omitempty,gte=0"`
	LowStockThreshold *int      `json:"low_stock_threshold" validate:"omitempty,gte=0"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

func (arm *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Product](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidProductBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if body.Name == "" || body.Price <= 0 || body.Category == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.productFieldsRequired"),
			gecho.Send(),
		)
		return
	}

	// Colors are stored lowercase so cart line matching stays exact
	for i, color := range body.Colors {
		body.Colors[i] = strings.ToLower(color)
	}

	created, err := arm.catalogService.CreateProduct(r.Context(), body)
	if err != nil {
		arm.logger.Error("Failed to create product", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.productCreationFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.productCreated"),
		gecho.WithData(created),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[UpdateProductRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidProductBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	fields := map[string]any{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if body.Price != nil {
		fields["price"] = *body.Price
	}
	if body.Category != nil {
		fields["category"] = *body.Category
	}
	if body.Subcategory != nil {
		fields["subcategory"] = *body.Subcategory
	}
	if body.Image != nil {
		fields["image"] = *body.Image
	}
	if body.Images != nil {
		fields["images"] = *body.Images
	}
	if body.Colors != nil {
		colors := make([]string, len(*body.Colors))
		for i, color := range *body.Colors {
			colors[i] = strings.ToLower(color)
		}
		fields["colors"] = colors
	}
	if body.Stock != nil {
		fields["stock"] = *body.Stock
	}
	if body.LowStockThreshold != nil {
		fields["low_stock_threshold"] = *body.LowStockThreshold
	}

	if len(fields) == 0 {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.noFieldsToUpdate"),
			gecho.Send(),
		)
		return
	}

	if err := arm.catalogService.UpdateProduct(r.Context(), id, fields); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to update product", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.productUpdateFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.productUpdated"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	if err := arm.catalogService.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to delete product", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.productDeletionFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.productDeleted"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) AdjustStock(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[AdjustStockRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidStockBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := arm.catalogService.AdjustStock(r.Context(), id, body.Delta)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to adjust stock", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.stockAdjustmentFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product":   product,
			"low_stock": product.LowStock(),
		}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) ListLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := arm.catalogService.ListLowStock(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list low-stock products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.lowStockFetchFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// UploadProductImage accepts a multipart form with a single "image" part
// and stores it in the object bucket
func (arm *AdminRoutesManager) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	// Object storage is optional at boot; uploads are the only routes needing it
	if arm.storageService == nil {
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("error.admin.storageUnavailable"),
			gecho.Send(),
		)
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidMultipartForm"),
			gecho.Send(),
		)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.imageFileRequired"),
			gecho.Send(),
		)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		arm.logger.Error("Failed to read uploaded image", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.imageUploadFailed"),
			gecho.Send(),
		)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.unsupportedImageType"),
			gecho.Send(),
		)
		return
	}

	url, err := arm.storageService.UploadImage(r.Context(), "products", header.Filename, contentType, data)
	if err != nil {
		arm.logger.Error("Failed to upload image", gecho.Field("error", err), gecho.Field("filename", header.Filename))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.imageUploadFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.imageUploaded"),
		gecho.WithData(map[string]string{"url": url}),
		gecho.Send(),
	)
}
