package constant

import "net/http"

type CustomError struct {
	StatusCode int
	Message    string
}

func NewCError(StatusCode int, Message string) CustomError {
	return CustomError{StatusCode: StatusCode, Message: Message}
}

func (err CustomError) Error() string {
	return err.Message
}

var (
	ErrEmailRequired       = NewCError(http.StatusBadRequest, "email required")
	ErrInvalidUserID       = NewCError(http.StatusBadRequest, "invalid user id")
	ErrUserNotFound        = NewCError(http.StatusNotFound, "User not found")
	ErrFundIDRequired      = NewCError(http.StatusBadRequest, "fund_id required")
	ErrFundNotFound        = NewCError(http.StatusNotFound, "Fund not found")
	ErrNoFundRecords       = NewCError(http.StatusNotFound, "No records found")
	ErrStockIDRequired     = NewCError(http.StatusBadRequest, "stock_id required")
	ErrInvalidStockID      = NewCError(http.StatusBadRequest, "invalid stock_id")
	ErrStockNotFound       = NewCError(http.StatusNotFound, "Stock not found")
	ErrTimelineNotFound    = NewCError(http.StatusNotFound, "Timeline not found")
	ErrUserIDRequired      = NewCError(http.StatusBadRequest, "userId required")
	ErrFavoriteKeyRequired = NewCError(http.StatusBadRequest, "userId and type required")
	ErrFavoriteNotFound    = NewCError(http.StatusNotFound, "Favorite not found")
	ErrInvalidBody         = NewCError(http.StatusBadRequest, "invalid JSON body")
	ErrInvalidQuery        = NewCError(http.StatusBadRequest, "invalid query parameters")
	ErrRequestTimeout      = NewCError(http.StatusGatewayTimeout, "request timed out")
)
