//go:generate go run go.uber.org/mock/mockgen -source=mosaic_definition.go -destination=../mocks/mock_mosaic_definition_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"mosaic-lab/domain"
	"mosaic-lab/errors"
	"mosaic-lab/serialization"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

type IMosaicDefinitionRepository interface {
	CreateDefinition(definition domain.MosaicDefinition) error
	GetDefinition(id domain.MosaicID) (domain.MosaicDefinition, error)
	ListDefinitions(namespaceID domain.NamespaceID) ([]domain.MosaicDefinition, error)
}

type MosaicDefinitionRepository struct {
	db  *badger.DB
	log *slog.Logger
	ctx serialization.DeserializationContext
}

func NewMosaicDefinitionRepository(db *badger.DB, log *slog.Logger, ctx serialization.DeserializationContext) MosaicDefinitionRepository {
	return MosaicDefinitionRepository{db: db, log: log, ctx: ctx}
}

// CreateDefinition stores the serialized definition under
// "mosaic:{namespace}:{lower-cased name}", so two ids differing only by name
// casing collide and the second one is rejected.
func (r MosaicDefinitionRepository) CreateDefinition(definition domain.MosaicDefinition) error {
	data, err := domain.MarshalMosaicDefinition(definition)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	key := definitionKey(definition.ID())
	err = r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return errors.ErrMosaicDefinitionAlreadyExists
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return err
	}
	r.log.Debug("Mosaic definition stored", "id", definition.ID().String(), "bytes", len(data))
	return nil
}

func (r MosaicDefinitionRepository) GetDefinition(id domain.MosaicID) (domain.MosaicDefinition, error) {
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(definitionKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrMosaicDefinitionNotFound
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return domain.MosaicDefinition{}, err
	}
	return domain.UnmarshalMosaicDefinition(data, r.ctx)
}

// ListDefinitions returns the definitions of exactly one namespace, ordered by
// lower-cased name. Child namespaces are not included.
func (r MosaicDefinitionRepository) ListDefinitions(namespaceID domain.NamespaceID) ([]domain.MosaicDefinition, error) {
	var values [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := namespacePrefix(namespaceID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	definitions := make([]domain.MosaicDefinition, 0, len(values))
	for _, value := range values {
		definition, err := domain.UnmarshalMosaicDefinition(value, r.ctx)
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}
	return definitions, nil
}

func namespacePrefix(namespaceID domain.NamespaceID) []byte {
	return []byte(fmt.Sprintf("mosaic:%s:", namespaceID))
}

func definitionKey(id domain.MosaicID) []byte {
	return append(namespacePrefix(id.NamespaceID()), strings.ToLower(id.Name())...)
}
