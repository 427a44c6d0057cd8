package gin

import "encoding/json"

// numbers are kept as json.Number so that they can be validated without float rounding

type gigRequest struct {
	Caller string      `json:"caller" binding:"required"`
	GigID  json.Number `json:"gigId" binding:"required"`
}

type sellerListRequest struct {
	gigRequest
	Deadline json.Number `json:"deadline" binding:"required"`
	Price    json.Number `json:"price" binding:"required"`
}

type buyerRequest struct {
	gigRequest
	Seller string `json:"seller" binding:"required"`
}

type buyerOrderRequest struct {
	buyerRequest
	Payment json.Number `json:"payment" binding:"required"`
}

type connectResponse struct {
	Status  string `json:"status"`
	Address string `json:"address,omitempty"`
}
