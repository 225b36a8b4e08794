package badgerfx

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var ErrNotFound = errors.New("entity not found")

type EntityFactory[T Entity] func() T

// Repository stores entities of one kind under "<prefix>id:<StorageID>" and
// maintains the index keys each entity declares.
type Repository[T Entity] struct {
	prefix  string
	zero    T
	factory EntityFactory[T]
}

func NewRepository[T Entity](prefix string, factory EntityFactory[T]) *Repository[T] {
	var zero T
	return &Repository[T]{
		prefix:  prefix,
		zero:    zero,
		factory: factory,
	}
}

// Key returns the primary storage key for id.
func (r *Repository[T]) Key(id string) string {
	return r.prefix + "id:" + id
}

// IndexPrefix returns the key prefix for the named index.
func (r *Repository[T]) IndexPrefix(name string) string {
	return r.prefix + name + ":"
}

// List returns all entities in primary key order.
func (r *Repository[T]) List(txn *badger.Txn, options badger.IteratorOptions) ([]T, error) {
	var entities []T

	err := r.iterate(txn, r.Key(""), options, func(item *badger.Item) error {
		entity, err := r.decode(item)
		if err != nil {
			return err
		}

		entities = append(entities, entity)
		return nil
	})

	return entities, err
}

// ListByIndex returns the entities referenced by index keys starting with
// indexPrefix.
func (r *Repository[T]) ListByIndex(txn *badger.Txn, indexPrefix string, options badger.IteratorOptions) ([]T, error) {
	var entities []T

	err := r.iterate(txn, indexPrefix, options, func(item *badger.Item) error {
		key, err := item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("failed to get entity key: %w", err)
		}

		entity, err := r.readKey(txn, key)
		if err != nil {
			return err
		}

		entities = append(entities, entity)
		return nil
	})

	return entities, err
}

func (r *Repository[T]) iterate(
	txn *badger.Txn,
	prefix string,
	options badger.IteratorOptions,
	fn func(*badger.Item) error,
) error {
	validPrefix := []byte(prefix)
	seekPrefix := []byte(prefix)
	if options.Reverse {
		seekPrefix = append(seekPrefix, SeekEnd)
	}

	it := txn.NewIterator(options)
	defer it.Close()

	for it.Seek(seekPrefix); it.ValidForPrefix(validPrefix); it.Next() {
		if err := fn(it.Item()); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository[T]) Read(txn *badger.Txn, id string) (T, error) {
	return r.readKey(txn, []byte(r.Key(id)))
}

func (r *Repository[T]) ReadByIndex(txn *badger.Txn, index string) (T, error) {
	item, err := txn.Get([]byte(index))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return r.zero, fmt.Errorf("%w: %s", ErrNotFound, index)
	}
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity: %w", err)
	}

	key, err := item.ValueCopy(nil)
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity key: %w", err)
	}

	return r.readKey(txn, key)
}

func (r *Repository[T]) readKey(txn *badger.Txn, key []byte) (T, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return r.zero, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity: %w", err)
	}

	return r.decode(item)
}

func (r *Repository[T]) decode(item *badger.Item) (T, error) {
	entity := r.factory()
	if err := item.Value(func(val []byte) error {
		return entity.UnmarshalStorage(val)
	}); err != nil {
		return r.zero, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	return entity, nil
}

// Write stores entity and replaces the indexes of its previous version.
func (r *Repository[T]) Write(txn *badger.Txn, entity T) error {
	data, err := entity.MarshalStorage()
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	previous, err := r.Read(txn, entity.StorageID())
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return err
	default:
		if indexErr := r.DeleteIndexes(txn, previous); indexErr != nil {
			return indexErr
		}
	}

	if indexErr := r.CreateIndexes(txn, entity); indexErr != nil {
		return indexErr
	}

	if setErr := txn.Set([]byte(r.Key(entity.StorageID())), data); setErr != nil {
		return fmt.Errorf("failed to update entity: %w", setErr)
	}

	return nil
}

func (r *Repository[T]) Delete(txn *badger.Txn, id string) error {
	entity, err := r.Read(txn, id)
	if err != nil {
		return err
	}

	if indexErr := r.DeleteIndexes(txn, entity); indexErr != nil {
		return indexErr
	}

	if delErr := txn.Delete([]byte(r.Key(id))); delErr != nil {
		return fmt.Errorf("failed to delete entity: %w", delErr)
	}

	return nil
}

func (r *Repository[T]) CreateIndexes(txn *badger.Txn, entity T) error {
	key := []byte(r.Key(entity.StorageID()))
	for _, index := range entity.StorageIndexes() {
		if err := txn.Set([]byte(index), key); err != nil {
			return fmt.Errorf("failed to set entity index: %w", err)
		}
	}

	return nil
}

func (r *Repository[T]) DeleteIndexes(txn *badger.Txn, entity T) error {
	for _, index := range entity.StorageIndexes() {
		if err := txn.Delete([]byte(index)); err != nil {
			return fmt.Errorf("failed to delete entity index: %w", err)
		}
	}

	return nil
}
