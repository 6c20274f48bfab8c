package errors

// DetailResponse is the error body of the gateway contract: {"detail": "..."}.
type DetailResponse struct {
	Detail string `json:"detail"`
}
