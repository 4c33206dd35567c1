package response

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	MessageSuccess      = "Success"
	MessageBadRequest   = "Bad request"
	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
	MessageInternal     = "Something went wrong"

	codeSuccess = 0
)
