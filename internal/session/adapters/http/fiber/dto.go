package fiber

type SaveContextRequest struct {
	Name            string `json:"name" example:"Bangalore cabs"`
	MerchantID      string `json:"merchant_id" example:"m-001"`
	City            string `json:"city,omitempty"`
	VehicleCategory string `json:"vehicle_category,omitempty"`
	Metric          string `json:"metric,omitempty" example:"completedRides"`
	Cumulative      bool   `json:"cumulative"`
	TopN            int    `json:"top_n,omitempty"`
}

type ContextResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MerchantID      string `json:"merchant_id"`
	City            string `json:"city,omitempty"`
	VehicleCategory string `json:"vehicle_category,omitempty"`
	Metric          string `json:"metric,omitempty"`
	Cumulative      bool   `json:"cumulative"`
	TopN            int    `json:"top_n"`
	Active          bool   `json:"active"`
	CreatedAt       string `json:"created_at"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"context_not_found"`
	Message string `json:"message,omitempty"`
}
