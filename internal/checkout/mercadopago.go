package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

const currencyARS = "ARS"

var ErrNotPayable = errors.New("payment is not pending")

// LinkProvider gera um link de pagamento para uma cobrança em aberto.
type LinkProvider interface {
	PaymentLink(ctx context.Context, p models.Payment) (string, error)
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type MercadoPago struct {
	preferences preferenceCreator
	sandbox     bool
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{
		preferences: preference.NewClient(cfg),
		// credenciais de teste começam com TEST-
		sandbox: strings.HasPrefix(accessToken, "TEST-"),
	}, nil
}

// PaymentLink cria uma preferência de checkout com o valor do pagamento.
// A referência externa é o id do pagamento.
func (m *MercadoPago) PaymentLink(ctx context.Context, p models.Payment) (string, error) {
	if p.Status == models.PaymentPaid {
		return "", ErrNotPayable
	}

	title := "Cuota de entrenamiento"
	if p.ClientName != "" {
		title += " - " + p.ClientName
	}

	res, err := m.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         strconv.FormatUint(uint64(p.ID), 10),
				Title:      title,
				Quantity:   1,
				UnitPrice:  p.Amount,
				CurrencyID: currencyARS,
			},
		},
		ExternalReference: strconv.FormatUint(uint64(p.ID), 10),
	})
	if err != nil {
		return "", fmt.Errorf("mercadopago preference: %w", err)
	}

	if m.sandbox && res.SandboxInitPoint != "" {
		return res.SandboxInitPoint, nil
	}
	return res.InitPoint, nil
}

// Compile-time check
var _ LinkProvider = (*MercadoPago)(nil)
