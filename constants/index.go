package constants

const (
	ERROR_INPUT              = "Invalid input"
	ERROR_INTERNAL_ERROR     = "Internal error"
	DATA_INPUT_IS_NOT_NUMBER = "Param must be a number"
	NOT_ADMIN                = "Admin privileges required"
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Wrong password"
	USERNAME_TAKEN           = "Username is already taken"
	PASSWORDS_DO_NOT_MATCH   = "Passwords do not match"
	UNAUTHENTICATED          = "Authentication required"
	SESSION_EXPIRED          = "Session expired, please log in again"
)
