package constant

const (
	ServiceName    = "mf-api"
	ServiceTitle   = "Mutual Fund API"
	ServiceVersion = "1.0.0"

	StatusSuccess = "success"
	StatusError   = "error"

	// order= value for descending listings
	OrderDesc = "desc"
)
