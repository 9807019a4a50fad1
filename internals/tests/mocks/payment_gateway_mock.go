package mocks

import (
	"context"

	"donation_terminal_backend/internals/features/payment/gateway"
)

type PaymentGatewayMock struct {
	CreateIntentFunc          func(ctx context.Context, amount int64, idempotencyKey string) (*gateway.PaymentHandle, error)
	CreateConnectionTokenFunc func(ctx context.Context, idempotencyKey string) (*gateway.TokenHandle, error)

	IntentKeys []string
	TokenKeys  []string
}

func (m *PaymentGatewayMock) Provider() string { return "mock" }

func (m *PaymentGatewayMock) CreateIntent(ctx context.Context, amount int64, idempotencyKey string) (*gateway.PaymentHandle, error) {
	m.IntentKeys = append(m.IntentKeys, idempotencyKey)
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, amount, idempotencyKey)
	}
	return &gateway.PaymentHandle{ID: "pi_mock", ClientSecret: "pi_mock_secret_mock"}, nil
}

func (m *PaymentGatewayMock) CreateConnectionToken(ctx context.Context, idempotencyKey string) (*gateway.TokenHandle, error) {
	m.TokenKeys = append(m.TokenKeys, idempotencyKey)
	if m.CreateConnectionTokenFunc != nil {
		return m.CreateConnectionTokenFunc(ctx, idempotencyKey)
	}
	return &gateway.TokenHandle{Secret: "pst_mock"}, nil
}
