package database

import "errors"

// ErrSaleNotFound indicates a sale lookup by ID matched no row.
var ErrSaleNotFound = errors.New("sale not found")
