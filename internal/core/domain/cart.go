package domain

// CartItem is one line of a user's cart. Name, Price and ImageURL are
// snapshots taken when the product was added, so a later catalog edit
// does not silently reprice a cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
}

// NormalizeCart returns the canonical form of a cart line sequence:
// lines with quantity <= 0 are dropped, and duplicate product ids are
// merged into the first occurrence by summing quantities. Order of first
// occurrence is preserved. A stored cart never violates either rule.
func NormalizeCart(items []CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if i, seen := index[item.ProductID]; seen {
			out[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(out)
		out = append(out, item)
	}
	return out
}
