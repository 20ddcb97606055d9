package admin

import (
	"errors"
	"net/http"

	"giftingstudio_server/lib"
	"giftingstudio_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Slug  string `json:"slug" validate:"required,min=1,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
}

type CreateSubcategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Slug  string `json:"slug" validate:"required,min=1,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
}

func (arm *AdminRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[CreateCategoryRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidCategoryBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	category, err := arm.catalogService.CreateCategory(r.Context(), &tables.Category{
		Name:  body.Name,
		Slug:  body.Slug,
		Image: body.Image,
	})
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("error.admin.categoryExists"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to create category", gecho.Field("error", err), gecho.Field("name", body.Name))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.categoryCreationFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.categoryCreated"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	categoryIdStr := chi.URLParam(r, "id")
	categoryId, err := uuid.Parse(categoryIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidCategoryId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[CreateSubcategoryRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidCategoryBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	subcategory, err := arm.catalogService.CreateSubcategory(r.Context(), &tables.Subcategory{
		CategoryID: categoryId,
		Name:       body.Name,
		Slug:       body.Slug,
		Image:      body.Image,
	})
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("error.admin.subcategoryExists"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to create subcategory",
			gecho.Field("error", err),
			gecho.Field("category_id", categoryId),
			gecho.Field("name", body.Name),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.subcategoryCreationFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.subcategoryCreated"),
		gecho.WithData(subcategory),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryIdStr := chi.URLParam(r, "id")
	categoryId, err := uuid.Parse(categoryIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidCategoryId"),
			gecho.Send(),
		)
		return
	}

	if err := arm.catalogService.DeleteCategory(r.Context(), categoryId); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.admin.categoryNotFound"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to delete category", gecho.Field("error", err), gecho.Field("category_id", categoryId))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.categoryDeletionFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.categoryDeleted"),
		gecho.Send(),
	)
}
