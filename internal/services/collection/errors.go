package collection

// CollectionError represents an error in the collection service
type CollectionError string

func (e CollectionError) Error() string {
	return string(e)
}

const (
	// ErrNoPacksLeft is returned when the owner has no packs to open
	ErrNoPacksLeft CollectionError = "no packs left"

	ErrNilConfig          CollectionError = "config cannot be nil"
	ErrNilRepository      CollectionError = "collection repository cannot be nil"
	ErrNilCharacterSource CollectionError = "character source cannot be nil"
	ErrNilRoller          CollectionError = "roller cannot be nil"
	ErrInvalidPackSize    CollectionError = "pack size must be at least 1"
	ErrInvalidPacks       CollectionError = "starting packs cannot be negative"
)
