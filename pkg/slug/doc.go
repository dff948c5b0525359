// Package slug provides URL-safe identifiers for the retreat catalog.
//
// The slug package turns display strings (retreat names, free-text type labels)
// into lower-case, hyphen-separated ASCII identifiers suitable for URLs.
//
// # Normalization
//
// Accented letters are folded to their base letter before separation, so
// "Abadía de Montserrat" becomes "abadia-de-montserrat" rather than
// "abad-a-de-montserrat":
//
//	slug.Make("Abbey of Gethsemani") // "abbey-of-gethsemani"
//	slug.Make("  Zen -- Monastery ") // "zen-monastery"
//
// # Properties
//
// Make is deterministic and idempotent: Make(Make(s)) == Make(s) for every s.
// The result contains only [a-z0-9] and single interior hyphens; it is empty
// when the input has no alphanumeric characters.
package slug
