package application

import "errors"

var ErrNoRecords = errors.New("no records extracted")
