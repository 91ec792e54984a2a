package services

import (
	"boutique/internal/domain"
	"boutique/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) ListByCategory(cat domain.Category, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.ListByCategory(cat, pageSize, offset)
}

func (s *CatalogService) Search(q string, cat domain.Category, size domain.Size, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.Search(q, cat, size, pageSize, offset)
}

// Availability classifies a product's stock level for display.
func (s *CatalogService) Availability(productID string) (domain.Availability, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return domain.Availability{}, err
	}

	status := "agotado"
	switch {
	case !p.Available:
		status = "agotado"
	case p.Stock >= 5:
		status = "disponible"
	case p.Stock > 0:
		status = "pocas_unidades"
	}
	return domain.Availability{Status: status, Qty: p.Stock}, nil
}
