package dto

// CreatedResponse is returned by every create endpoint
type CreatedResponse struct {
	Message string `json:"message" example:"Starship created successfully"`
	ID      int64  `json:"id" example:"42"`
}

// MessageResponse is returned by delete endpoints
type MessageResponse struct {
	Message string `json:"message" example:"Starship deleted successfully"`
}

// EndpointInfo describes one registered route
type EndpointInfo struct {
	Method string `json:"method" example:"GET"`
	Path   string `json:"path" example:"/naves/:id"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}
