package constants

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read request data"
	ERROR_CREATE               = "Could not create record"
	ERROR_EDIT                 = "Could not update record"
	ERROR_DELETE               = "Could not delete record"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	NOT_FOUND_RECORDS          = "Record not found"
	EMPTY_DELETE_IDS           = "The list of ids to delete must not be empty"

	MISSING_LOGIN_INPUT = "Username and password are required"
	INVALID_CREDENTIALS = "Invalid username or password"
	ACCOUNT_NOT_ACTIVE  = "Account is not active"
	NOT_STAFF           = "Staff permission required"
	MISSING_TOKEN       = "Missing token"
	INVALID_TOKEN       = "Invalid token"

	ORDER_VALIDATION_FAILED = "Order validation failed"
	ORDER_NOT_FOUND         = "Order not found"
	PRODUCT_NOT_FOUND       = "Product not found"
	CATEGORY_NOT_FOUND      = "Category not found"
	INGREDIENT_NOT_FOUND    = "Ingredient not found"
	PRICING_RULE_NOT_FOUND  = "Product ingredient not found"
	CONTENT_NOT_FOUND       = "No active content found"
	SEARCH_QUERY_REQUIRED   = "Search parameter 'q' is required"
	EXTRA_IDS_MUST_BE_LIST  = "extra_ids must be a list"
	IMAGE_UPLOAD_FAILED     = "Image upload failed"
	IMAGE_REQUIRED          = "An image file is required"
	IMAGE_TOO_LARGE         = "Image exceeds 5MB"
	QR_GENERATION_FAILED    = "Could not generate QR code"
)
