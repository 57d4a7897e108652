package services

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/utils"
)

var ErrPartnerNotFound = errors.New("partner not found")

// PartnerService is CRUD over the partner registry.
type PartnerService struct {
	storage  partnerStorage
	validate *validator.Validate
	mu       sync.Mutex
}

type partnerStorage interface {
	GetPartners() ([]models.Partner, error)
	SaveAllPartners(partners []models.Partner) error
}

func NewPartnerService(storage partnerStorage) *PartnerService {
	return &PartnerService{storage: storage, validate: newValidator()}
}

// ListPartners returns the registry newest first.
func (s *PartnerService) ListPartners(ctx context.Context) ([]models.Partner, error) {
	partners, err := s.storage.GetPartners()
	if err != nil {
		return nil, err
	}

	reversed := make([]models.Partner, len(partners))
	for i, p := range partners {
		reversed[len(partners)-1-i] = p
	}
	return reversed, nil
}

func (s *PartnerService) CreatePartner(ctx context.Context, input models.PartnerInput, actor string) (models.Partner, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return models.Partner{}, err
	}

	entryDates := input.EntryDates
	if entryDates == nil {
		entryDates = []string{}
	}

	partner := models.Partner{
		ID:          uuid.NewString(),
		CompanyName: input.CompanyName,
		Country:     input.Country,
		Phone:       input.Phone,
		EntryDates:  entryDates,
		ShortDesc:   input.ShortDesc,
		FullDesc:    input.FullDesc,
		Notes:       input.Notes,
		CreatedAt:   utils.NowStamp(),
		CreatedBy:   actor,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	partners, err := s.storage.GetPartners()
	if err != nil {
		return models.Partner{}, err
	}
	partners = append(partners, partner)
	if err := s.storage.SaveAllPartners(partners); err != nil {
		return models.Partner{}, err
	}
	return partner, nil
}

// UpdatePartner merges the recognized fields onto the stored record. The id
// never changes and entryDates always ends up an array.
func (s *PartnerService) UpdatePartner(ctx context.Context, id string, update models.PartnerUpdate, actor string) (models.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	partners, err := s.storage.GetPartners()
	if err != nil {
		return models.Partner{}, err
	}

	idx := -1
	for i, p := range partners {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Partner{}, ErrPartnerNotFound
	}

	p := &partners[idx]
	if update.CompanyName != nil {
		p.CompanyName = *update.CompanyName
	}
	if update.Country != nil {
		p.Country = *update.Country
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.EntryDates != nil {
		p.EntryDates = *update.EntryDates
	}
	if p.EntryDates == nil {
		p.EntryDates = []string{}
	}
	if update.ShortDesc != nil {
		p.ShortDesc = *update.ShortDesc
	}
	if update.FullDesc != nil {
		p.FullDesc = *update.FullDesc
	}
	if update.Notes != nil {
		p.Notes = *update.Notes
	}
	p.UpdatedAt = utils.NowStamp()
	p.UpdatedBy = actor

	if err := s.storage.SaveAllPartners(partners); err != nil {
		return models.Partner{}, err
	}
	return *p, nil
}

func (s *PartnerService) DeletePartner(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	partners, err := s.storage.GetPartners()
	if err != nil {
		return err
	}

	remaining := make([]models.Partner, 0, len(partners))
	for _, p := range partners {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(partners) {
		return ErrPartnerNotFound
	}
	return s.storage.SaveAllPartners(remaining)
}
