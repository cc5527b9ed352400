package catalog

// CatalogError is a custom error type for catalog errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidCharacter   CatalogError = "invalid character"
	ErrDuplicateCharacter CatalogError = "duplicate character id"
	ErrUnknownCharacter   CatalogError = "unknown character"
	ErrInvalidRoster      CatalogError = "invalid roster"
)
