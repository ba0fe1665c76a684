package dto

// CreateApplicationResponse extends the command envelope with the stored
// credential pair. This is the only place the app key is ever returned, so
// generated credentials must be saved by the caller at registration time.
type CreateApplicationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	AppID   string `json:"app_id"`
	AppKey  string `json:"app_key"`
	Status  string `json:"status"`
}

// PendingApplicationResponse is the summary view of one pending application.
// The app key is never exposed in listings.
type PendingApplicationResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	AppID  string `json:"app_id"`
}

// ListPendingApplicationsResponse represents the pending applications listing.
type ListPendingApplicationsResponse struct {
	Data []PendingApplicationResponse `json:"data"`
}
