package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/whatsapp"
)

const (
	PaymentsSheet = "Pagos"
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var paymentHeaders = []string{
	"ID", "Cliente", "Teléfono", "Monto", "Vencimiento", "Fecha de pago", "Estado", "Método", "Notas",
}

var statusLabels = map[models.PaymentStatus]string{
	models.PaymentPaid:    "Pagado",
	models.PaymentPending: "Pendiente",
	models.PaymentOverdue: "Vencido",
}

func StatusLabel(s models.PaymentStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// PaymentsXLSX gera a planilha de pagamentos, uma linha por pagamento,
// na ordem recebida.
func PaymentsXLSX(payments []models.Payment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(PaymentsSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, header := range paymentHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(PaymentsSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, p := range payments {
		row := i + 2
		values := []any{
			p.ID,
			p.ClientName,
			whatsapp.Format(p.ClientPhone),
			p.Amount,
			whatsapp.Date(p.DueDate),
			paidDate(p.PaidDate),
			StatusLabel(p.Status),
			p.PaymentMethod,
			p.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(PaymentsSheet, cell, v); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		}
	}

	if err := f.SetColWidth(PaymentsSheet, "B", "B", 24); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// carimbo RFC3339 ou data simples → d/m/aaaa
func paidDate(v string) string {
	if len(v) >= 10 {
		return whatsapp.Date(v[:10])
	}
	return v
}
