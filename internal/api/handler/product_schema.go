package handler

type createProductRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price"       validate:"required,gt=0"`
	ImageURL    string `json:"imageUrl"    validate:"required"`
}

// updateProductRequest is a partial update: nil fields are left
// unchanged. Range checks on present fields happen in the service.
type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	ImageURL    *string `json:"imageUrl"`
}
