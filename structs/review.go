package structs

type CreateReviewRequest struct {
	Rating  int      `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string   `json:"comment" validate:"omitempty,max=2000"`
	Photos  []string `json:"photos" validate:"omitempty,max=5,dive,url"`
}
