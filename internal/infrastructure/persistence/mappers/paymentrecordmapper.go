package mappers

import (
	"fmt"

	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/domain/payment"
	vo "github.com/vendra-inc/vendra/internal/domain/payment/valueobjects"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
)

func PaymentRecordToModel(r *payment.Record) (*models.PaymentRecordModel, error) {
	metadata, err := mapToJSON(r.Metadata())
	if err != nil {
		return nil, err
	}

	return &models.PaymentRecordModel{
		ID:               r.ID(),
		SID:              r.SID(),
		ClientID:         r.ClientID(),
		PackageID:        r.PackageID(),
		Amount:           r.Amount().AmountInPaise(),
		Currency:         r.Amount().Currency(),
		GatewayOrderID:   r.GatewayOrderID(),
		GatewayPaymentID: r.GatewayPaymentID(),
		GatewaySignature: r.GatewaySignature(),
		Status:           r.Status().String(),
		Metadata:         metadata,
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}, nil
}

func PaymentRecordToDomain(model *models.PaymentRecordModel) (*payment.Record, error) {
	status := vo.PaymentStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", model.Status)
	}

	metadata, err := jsonToMap(model.Metadata)
	if err != nil {
		return nil, err
	}

	return payment.ReconstructRecord(payment.ReconstructRecordParams{
		ID:               model.ID,
		SID:              model.SID,
		ClientID:         model.ClientID,
		PackageID:        model.PackageID,
		Amount:           cvo.NewMoney(model.Amount, model.Currency),
		GatewayOrderID:   model.GatewayOrderID,
		GatewayPaymentID: model.GatewayPaymentID,
		GatewaySignature: model.GatewaySignature,
		Status:           status,
		Metadata:         metadata,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
}
