package contextkeys

type key string

const (
	RequestIDKey key = "request_id"
)
