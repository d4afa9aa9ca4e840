package dto

// ErrorResponse cuerpo de error HTTP. Code usa la taxonomía del dominio
// (VALIDATION, CROSS_COUNTRY_ACCESS, ROLE_FORBIDDEN, NOT_AUTHORIZED,
// ORDER_NOT_FOUND, MENU_ITEM_NOT_FOUND, EMPTY_ITEM_LIST, INVALID_STATE, ...).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
