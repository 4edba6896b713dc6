package search

import "errors"

var ErrEmptyQuery = errors.New("empty search query")
