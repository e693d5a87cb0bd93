package contract

// IRandomGenerator produces random identifiers.
type IRandomGenerator interface {
	// GenerateSuffix returns n random lowercase base36 characters.
	GenerateSuffix(n int) (string, error)
}
