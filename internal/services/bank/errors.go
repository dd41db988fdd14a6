package bank

import "errors"

// Directory errors
var (
	ErrBankNotFound = errors.New("bank not found in directory")
	ErrNoRecords    = errors.New("directory source contains no usable records")
	ErrNoLoader     = errors.New("directory has no reloadable source")
)
