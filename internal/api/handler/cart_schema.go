package handler

// cartItemRequest carries one cart line. No validate tags: lines are
// normalized first (quantity <= 0 drops the line) and the service
// validates whatever survives, so a zero-quantity line with a bogus
// price is dropped, not rejected.
type cartItemRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
}

type replaceCartRequest struct {
	Items []cartItemRequest `json:"items"`
}
