package storeservice

// Store is the store configuration record served by StoreService.
type Store struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse is the error payload returned by StoreService.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
