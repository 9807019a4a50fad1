package gateway

import (
	"context"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

const midtransProvider = "midtrans"

// MidtransGateway memakai Snap: order_id = idempotency key (Midtrans menolak order_id ganda),
// snap token dikembalikan sebagai client secret.
type MidtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(serverKey string, useProduction bool) *MidtransGateway {
	g := &MidtransGateway{}
	if useProduction {
		g.client.New(serverKey, midtrans.Production)
	} else {
		g.client.New(serverKey, midtrans.Sandbox)
	}
	return g
}

func (g *MidtransGateway) Provider() string { return midtransProvider }

func (g *MidtransGateway) CreateIntent(_ context.Context, amount int64, idempotencyKey string) (*PaymentHandle, error) {
	resp, merr := g.client.CreateTransaction(newSnapRequest(amount, idempotencyKey))
	if merr != nil {
		return nil, merr
	}
	return &PaymentHandle{ID: idempotencyKey, ClientSecret: resp.Token}, nil
}

// Midtrans tidak punya konsep terminal connection token.
func (g *MidtransGateway) CreateConnectionToken(context.Context, string) (*TokenHandle, error) {
	return nil, ErrConnectionTokenUnsupported
}

func newSnapRequest(amount int64, orderID string) *snap.Request {
	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "donation",
				Price: amount,
				Qty:   1,
				Name:  "Donation",
			},
		},
	}
}
