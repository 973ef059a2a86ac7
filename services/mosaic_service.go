package services

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"mosaic-lab/domain"
	"mosaic-lab/errors"
	"mosaic-lab/repositories"
	"mosaic-lab/serialization"
)

type IMosaicService interface {
	Register(definition domain.MosaicDefinition) error
	ImportSeed(definitions []domain.MosaicDefinition) (int, error)
	RegisterJSON(data []byte) (domain.MosaicDefinition, error)
	Get(displayID string) (domain.MosaicDefinition, error)
	List(namespace string) ([]domain.MosaicDefinition, error)
}

type MosaicService struct {
	log        *slog.Logger
	repository repositories.IMosaicDefinitionRepository
	ctx        serialization.DeserializationContext
}

func NewMosaicService(log *slog.Logger, repository repositories.IMosaicDefinitionRepository, ctx serialization.DeserializationContext) *MosaicService {
	return &MosaicService{log: log, repository: repository, ctx: ctx}
}

func (s *MosaicService) Register(definition domain.MosaicDefinition) error {
	if err := s.repository.CreateDefinition(definition); err != nil {
		s.log.Warn("Mosaic definition rejected", "id", definition.String(), "error", err)
		return fmt.Errorf("register %s: %w", definition, err)
	}
	s.log.Info("Mosaic definition registered",
		"id", definition.String(),
		"creator", definition.Creator().String(),
		"transfer_fee", definition.IsTransferFeeAvailable())
	return nil
}

// ImportSeed registers every definition and returns how many were stored.
// Definitions that already exist are skipped; any other failure stops the import.
func (s *MosaicService) ImportSeed(definitions []domain.MosaicDefinition) (int, error) {
	imported := 0
	for _, definition := range definitions {
		err := s.Register(definition)
		if stderrors.Is(err, errors.ErrMosaicDefinitionAlreadyExists) {
			continue
		}
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// RegisterJSON deserializes a definition in its wire form and registers it.
func (s *MosaicService) RegisterJSON(data []byte) (domain.MosaicDefinition, error) {
	definition, err := domain.UnmarshalMosaicDefinition(data, s.ctx)
	if err != nil {
		return domain.MosaicDefinition{}, err
	}
	return definition, s.Register(definition)
}

// Get looks a definition up by its "<namespace> * <name>" form.
func (s *MosaicService) Get(displayID string) (domain.MosaicDefinition, error) {
	id, err := domain.ParseMosaicID(displayID)
	if err != nil {
		return domain.MosaicDefinition{}, err
	}
	return s.repository.GetDefinition(id)
}

func (s *MosaicService) List(namespace string) ([]domain.MosaicDefinition, error) {
	namespaceID, err := domain.NewNamespaceID(namespace)
	if err != nil {
		return nil, err
	}
	definitions, err := s.repository.ListDefinitions(namespaceID)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Mosaic definitions listed", "namespace", namespace, "count", len(definitions))
	return definitions, nil
}
