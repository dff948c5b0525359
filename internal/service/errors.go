package service

import "errors"

// Centralized service layer errors.
// Catalog lookups report "not found" and "no results" as ordinary outcomes,
// so every error here is a load-time failure.

// ===== Catalog Load Errors =====
var (
	ErrInvalidRetreat = errors.New("invalid retreat")
	ErrDuplicateSlug  = errors.New("duplicate retreat slug")
	ErrUnknownType    = errors.New("retreat type not in taxonomy")
	ErrNoTaxonomy     = errors.New("taxonomy is required")
)
