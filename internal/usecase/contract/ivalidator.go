package usecasecontract

// IValidator validates user supplied identifiers.
type IValidator interface {
	ValidateSlug(slug string) error
}
