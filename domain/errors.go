package domain

import "errors"

var (
	// ErrInvalidYDomain is returned when a partial custom y domain does not
	// overlap the data extent of its group.
	ErrInvalidYDomain = errors.New("domain: invalid custom y domain")

	// ErrInvalidAxisDomain is returned when an axis declares min > max.
	ErrInvalidAxisDomain = errors.New("domain: invalid axis domain")
)
