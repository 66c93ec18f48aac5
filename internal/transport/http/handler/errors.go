package handler

// User-facing error messages. The two 404 cases on the car endpoints are
// distinguished by message only, never by status code.
const (
	errInternalServer = "服务器内部错误"
	errCarNotFound    = "车型不存在"
	errCarNoDealer    = "该车型没有关联经销商"
	errTokenInvalid   = "Token is invalid or expired"
)
