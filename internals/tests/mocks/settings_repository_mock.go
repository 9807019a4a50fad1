package mocks

import (
	"context"

	"donation_terminal_backend/internals/features/donations/settings/model"
)

type SettingsRepositoryMock struct {
	GetFunc func(ctx context.Context) (*model.DonationSettings, error)
	SetFunc func(ctx context.Context, mode model.DonationMode, option1, option2 *int64) error

	SetCalls int
}

func (m *SettingsRepositoryMock) Get(ctx context.Context) (*model.DonationSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	opt := int64(500)
	return &model.DonationSettings{
		ID:      1,
		Mode:    model.DonationModeSingle,
		Option1: &opt,
	}, nil
}

func (m *SettingsRepositoryMock) Set(ctx context.Context, mode model.DonationMode, option1, option2 *int64) error {
	m.SetCalls++
	if m.SetFunc != nil {
		return m.SetFunc(ctx, mode, option1, option2)
	}
	return nil
}
