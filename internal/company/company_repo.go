package company

import (
	"context"
	"strings"

	"go-reestr/internal/registryapi"
)

//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	List(ctx context.Context, skip, limit int) ([]Company, error)
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByINN(ctx context.Context, inn string) (*Company, error)
	// Create stores c and fills c.ID with the id assigned by the store.
	Create(ctx context.Context, c *Company) error
}

// RegistryClient is the subset of the registry API client the repository uses
type RegistryClient interface {
	ListCompanies(ctx context.Context, skip, limit int) ([]registryapi.Company, error)
	GetCompany(ctx context.Context, id int64) (*registryapi.Company, error)
	GetCompanyByINN(ctx context.Context, inn string) (*registryapi.Company, error)
	CreateCompany(ctx context.Context, req registryapi.CreateCompanyRequest) (*registryapi.Company, error)
}

type apiRepository struct {
	client RegistryClient
}

func NewAPIRepository(client RegistryClient) Repository {
	return &apiRepository{client: client}
}

func (r *apiRepository) List(ctx context.Context, skip, limit int) ([]Company, error) {
	rows, err := r.client.ListCompanies(ctx, skip, limit)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	companies := make([]Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, fromRegistry(row))
	}
	return companies, nil
}

func (r *apiRepository) GetByID(ctx context.Context, id int64) (*Company, error) {
	row, err := r.client.GetCompany(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	comp := fromRegistry(*row)
	return &comp, nil
}

func (r *apiRepository) GetByINN(ctx context.Context, inn string) (*Company, error) {
	row, err := r.client.GetCompanyByINN(ctx, inn)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	comp := fromRegistry(*row)
	return &comp, nil
}

func (r *apiRepository) Create(ctx context.Context, c *Company) error {
	created, err := r.client.CreateCompany(ctx, registryapi.CreateCompanyRequest{
		Name:   c.Name,
		INN:    c.INN,
		OGRN:   c.OGRN,
		Reestr: c.Reestr,
	})
	if err != nil {
		return mapRepositoryError(err)
	}

	c.ID = created.ID
	if strings.TrimSpace(created.Name) != "" {
		c.Name = created.Name
	}
	return nil
}

func fromRegistry(row registryapi.Company) Company {
	return Company{
		ID:                row.ID,
		Name:              row.Name,
		INN:               row.INN,
		OGRN:              row.OGRN,
		KPP:               row.KPP,
		Address:           row.Address,
		Status:            row.Status,
		Reestr:            row.Reestr,
		RegistrationDate:  row.RegistrationDate,
		AuthorizedCapital: row.AuthorizedCapital,
		MainActivity:      row.MainActivity,
		TaxesValue:        row.TaxesValue,
		TaxesFull:         row.TaxesFull,
		Source:            row.Source,
		ParsedAt:          row.ParsedAt,
	}
}
