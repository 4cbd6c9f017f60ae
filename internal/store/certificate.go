package store

import (
	"context"
	"fmt"

	"github.com/walkinmyshoes/wims/ent"
	"github.com/walkinmyshoes/wims/ent/certificate"
)

// certRepo implements CertRepo using the ent client.
type certRepo struct {
	client *ent.Client
}

func (r *certRepo) Add(ctx context.Context, data CertificateData) error {
	_, err := r.client.Certificate.Create().
		SetCertID(data.CertID).
		SetUserName(data.UserName).
		SetScore(data.Score).
		SetDate(data.Date).
		SetScenariosCompleted(data.ScenariosCompleted).
		SetBadge(data.Badge).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("certificate %s already exists: %w", data.CertID, err)
		}
		return fmt.Errorf("save certificate: %w", err)
	}
	return nil
}

func (r *certRepo) List(ctx context.Context) ([]CertificateRecord, error) {
	certs, err := r.client.Certificate.Query().
		Order(ent.Desc(certificate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query certificates: %w", err)
	}

	records := make([]CertificateRecord, len(certs))
	for i, c := range certs {
		records[i] = CertificateRecord{
			CertID:             c.CertID,
			UserName:           c.UserName,
			Score:              c.Score,
			Date:               c.Date,
			ScenariosCompleted: c.ScenariosCompleted,
			Badge:              c.Badge,
			CreatedAt:          c.CreatedAt,
		}
	}
	return records, nil
}

func (r *certRepo) Get(ctx context.Context, certID string) (*CertificateRecord, error) {
	c, err := r.client.Certificate.Query().
		Where(certificate.CertID(certID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query certificate %s: %w", certID, err)
	}
	return &CertificateRecord{
		CertID:             c.CertID,
		UserName:           c.UserName,
		Score:              c.Score,
		Date:               c.Date,
		ScenariosCompleted: c.ScenariosCompleted,
		Badge:              c.Badge,
		CreatedAt:          c.CreatedAt,
	}, nil
}
