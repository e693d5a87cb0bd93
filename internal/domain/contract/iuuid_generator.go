package contract

// IUUIDGenerator generates and validates UUID strings.
type IUUIDGenerator interface {
	NewUUID() string
	Valid(id string) bool
}
