package domain

// AuthPayload is what the bearer token tells about the caller
type AuthPayload struct {
	AccountID int64 `json:"accountId"`
}
