package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

const (
	LOCALS_USER    = "user"
	LOCALS_ID      = "inputId"
	LOCALS_DELETE  = "deleteIds"
	LOCALS_INPUT   = "input"
	ACCESS_COOKIE  = "access_token"
	MENU_CACHE_KEY = "menu"
)
