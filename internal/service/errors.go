package service

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductFetchFailed   = errors.New("product fetch failed")
	ErrProductInvalid       = errors.New("product invalid")
	ErrCartNotFound         = errors.New("cart not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidSelection     = errors.New("invalid selection")
	ErrInvalidAmountStep    = errors.New("invalid amount step")
	ErrOrderAddressRequired = errors.New("order address required")
	ErrOrderPhoneInvalid    = errors.New("order phone invalid")
	ErrOrderForwardFailed   = errors.New("order forward failed")
	ErrQueueUnavailable     = errors.New("queue unavailable")
)
