package badgerfx

// Entity is a value stored by Repository.
type Entity interface {
	// StorageID identifies the entity within its repository prefix.
	StorageID() string
	// StorageIndexes returns full index keys pointing at the entity.
	StorageIndexes() []string

	MarshalStorage() ([]byte, error)
	UnmarshalStorage(data []byte) error
}
