package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrBackendUnavailable = errors.New("Backend unavailable")
var ErrUnsupportedByDriver = errors.New("Operation not supported by this backend driver")
var ErrDuplicateTransfer = errors.New("Duplicate transfer")
