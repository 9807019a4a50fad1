package mocks

import (
	"context"

	"donation_terminal_backend/internals/features/donations/donations/model"
)

type DonationRepositoryMock struct {
	AppendFunc func(ctx context.Context, d *model.Donation) error

	Appended []model.Donation
}

func (m *DonationRepositoryMock) Append(ctx context.Context, d *model.Donation) error {
	if m.AppendFunc != nil {
		if err := m.AppendFunc(ctx, d); err != nil {
			return err
		}
	}
	m.Appended = append(m.Appended, *d)
	return nil
}
