package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successEnvelope(checkoutRequestID, receipt string) *models.STKCallbackEnvelope {
	var envelope models.STKCallbackEnvelope
	envelope.Body.StkCallback = models.STKCallback{
		MerchantRequestID: "mer-1",
		CheckoutRequestID: checkoutRequestID,
		ResultCode:        0,
		ResultDesc:        "The service request is processed successfully.",
		CallbackMetadata: &models.STKCallbackMetadata{
			Item: []models.STKCallbackItem{
				{Name: "Amount", Value: 100.0},
				{Name: "MpesaReceiptNumber", Value: receipt},
				{Name: "PhoneNumber", Value: 254712345678.0},
			},
		},
	}
	return &envelope
}

func failureEnvelope(checkoutRequestID string) *models.STKCallbackEnvelope {
	var envelope models.STKCallbackEnvelope
	envelope.Body.StkCallback = models.STKCallback{
		MerchantRequestID: "mer-1",
		CheckoutRequestID: checkoutRequestID,
		ResultCode:        1032,
		ResultDesc:        "Request cancelled by user",
	}
	return &envelope
}

func pendingTransaction() *models.Transaction {
	return &models.Transaction{
		ID:            "txn_abc123def456",
		AccountID:     "acct-1",
		Amount:        10000,
		Currency:      "KES",
		Phone:         "254712345678",
		PaymentMethod: models.ProviderMpesa,
		Status:        models.TransactionStatusPending,
		FeeAmount:     2250,
		Metadata:      models.Metadata{"mode": "live", "checkout_request_id": "ws_CO_123"},
	}
}

func TestIngestCallbackSuccess(t *testing.T) {
	f := newChargeFixture(t)
	txn := pendingTransaction()

	f.repo.EXPECT().MarkCallbackProcessed(gomock.Any(), "ws_CO_123").Return(true, nil)
	f.repo.EXPECT().GetTransactionByCheckoutRequestID(gomock.Any(), "ws_CO_123").Return(txn, nil)
	f.repo.EXPECT().
		MergeTransactionMetadata(gomock.Any(), txn.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch models.Metadata) error {
			assert.Equal(t, 0, patch["callback_result_code"])
			assert.Equal(t, "SGH3KL2M1N", patch["mpesa_receipt"])
			assert.Equal(t, 254712345678.0, patch["mpesa_phone"])
			return nil
		})
	f.repo.EXPECT().
		FinalizeTransaction(gomock.Any(), txn.ID, models.TransactionStatusSuccess, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, ref *string) error {
			require.NotNil(t, ref)
			assert.Equal(t, "SGH3KL2M1N", *ref)
			return nil
		})
	f.gw.EXPECT().PublishChargeEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := f.uc.IngestCallback(context.Background(), successEnvelope("ws_CO_123", "SGH3KL2M1N"))

	require.NoError(t, err)
	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, models.EventChargeSuccess, f.dispatcher.events[0])
	assert.Equal(t, "SGH3KL2M1N", f.dispatcher.data[0]["provider_ref"])
}

func TestIngestCallbackFailure(t *testing.T) {
	f := newChargeFixture(t)
	txn := pendingTransaction()

	f.repo.EXPECT().MarkCallbackProcessed(gomock.Any(), "ws_CO_123").Return(true, nil)
	f.repo.EXPECT().GetTransactionByCheckoutRequestID(gomock.Any(), "ws_CO_123").Return(txn, nil)
	f.repo.EXPECT().
		MergeTransactionMetadata(gomock.Any(), txn.ID, models.Metadata{
			"callback_result_code": 1032,
			"callback_result_desc": "Request cancelled by user",
		}).
		Return(nil)
	f.repo.EXPECT().
		FinalizeTransaction(gomock.Any(), txn.ID, models.TransactionStatusFailed, gomock.Nil()).
		Return(nil)
	f.repo.EXPECT().
		MergeTransactionMetadata(gomock.Any(), txn.ID, models.Metadata{"failure_reason": "Request cancelled by user"}).
		Return(nil)
	f.gw.EXPECT().PublishChargeEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := f.uc.IngestCallback(context.Background(), failureEnvelope("ws_CO_123"))

	require.NoError(t, err)
	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, models.EventChargeFailed, f.dispatcher.events[0])
	assert.Equal(t, "Request cancelled by user", f.dispatcher.data[0]["failure_reason"])
}

func TestIngestCallbackDuplicate(t *testing.T) {
	f := newChargeFixture(t)

	f.repo.EXPECT().MarkCallbackProcessed(gomock.Any(), "ws_CO_123").Return(false, nil)

	err := f.uc.IngestCallback(context.Background(), successEnvelope("ws_CO_123", "SGH3KL2M1N"))

	assert.NoError(t, err)
	assert.Empty(t, f.dispatcher.events)
}

func TestIngestCallbackAlreadyFinalized(t *testing.T) {
	f := newChargeFixture(t)
	txn := pendingTransaction()
	txn.Status = models.TransactionStatusSuccess

	f.repo.EXPECT().MarkCallbackProcessed(gomock.Any(), "ws_CO_123").Return(true, nil)
	f.repo.EXPECT().GetTransactionByCheckoutRequestID(gomock.Any(), "ws_CO_123").Return(txn, nil)

	err := f.uc.IngestCallback(context.Background(), successEnvelope("ws_CO_123", "SGH3KL2M1N"))

	assert.NoError(t, err)
	assert.Empty(t, f.dispatcher.events)
}

func TestIngestCallbackUnknownTransaction(t *testing.T) {
	f := newChargeFixture(t)

	f.repo.EXPECT().MarkCallbackProcessed(gomock.Any(), "ws_CO_999").Return(true, nil)
	f.repo.EXPECT().
		GetTransactionByCheckoutRequestID(gomock.Any(), "ws_CO_999").
		Return(nil, models.ErrNotFound)
	f.repo.EXPECT().ReleaseCallbackClaim(gomock.Any(), "ws_CO_999").Return(nil)

	err := f.uc.IngestCallback(context.Background(), successEnvelope("ws_CO_999", "SGH3KL2M1N"))

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIngestCallbackLookupFailureKeepsRetryAlive(t *testing.T) {
	f := newChargeFixture(t)

	// First delivery claims the dedup key, then the lookup fails
	// transiently. The claim must be given back or every gateway retry
	// inside the dedup TTL is dropped as a duplicate.
	f.repo.EXPECT().MarkCallbackProcessed(gomock.Any(), "ws_CO_123").Return(true, nil)
	f.repo.EXPECT().
		GetTransactionByCheckoutRequestID(gomock.Any(), "ws_CO_123").
		Return(nil, assert.AnError)
	f.repo.EXPECT().ReleaseCallbackClaim(gomock.Any(), "ws_CO_123").Return(nil)

	err := f.uc.IngestCallback(context.Background(), successEnvelope("ws_CO_123", "SGH3KL2M1N"))
	require.Error(t, err)
	assert.Empty(t, f.dispatcher.events)

	// The retry claims afresh and finalizes normally
	txn := pendingTransaction()
	f.repo.EXPECT().MarkCallbackProcessed(gomock.Any(), "ws_CO_123").Return(true, nil)
	f.repo.EXPECT().GetTransactionByCheckoutRequestID(gomock.Any(), "ws_CO_123").Return(txn, nil)
	f.repo.EXPECT().MergeTransactionMetadata(gomock.Any(), txn.ID, gomock.Any()).Return(nil)
	f.repo.EXPECT().
		FinalizeTransaction(gomock.Any(), txn.ID, models.TransactionStatusSuccess, gomock.Any()).
		Return(nil)
	f.gw.EXPECT().PublishChargeEvent(gomock.Any(), gomock.Any()).Return(nil)

	err = f.uc.IngestCallback(context.Background(), successEnvelope("ws_CO_123", "SGH3KL2M1N"))

	require.NoError(t, err)
	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, models.EventChargeSuccess, f.dispatcher.events[0])
}

func TestIngestCallbackFinalizeFailureReleasesClaim(t *testing.T) {
	f := newChargeFixture(t)
	txn := pendingTransaction()

	f.repo.EXPECT().MarkCallbackProcessed(gomock.Any(), "ws_CO_123").Return(true, nil)
	f.repo.EXPECT().GetTransactionByCheckoutRequestID(gomock.Any(), "ws_CO_123").Return(txn, nil)
	f.repo.EXPECT().MergeTransactionMetadata(gomock.Any(), txn.ID, gomock.Any()).Return(nil)
	f.repo.EXPECT().
		FinalizeTransaction(gomock.Any(), txn.ID, models.TransactionStatusSuccess, gomock.Any()).
		Return(assert.AnError)
	f.repo.EXPECT().ReleaseCallbackClaim(gomock.Any(), "ws_CO_123").Return(nil)

	err := f.uc.IngestCallback(context.Background(), successEnvelope("ws_CO_123", "SGH3KL2M1N"))

	require.Error(t, err)
	assert.Empty(t, f.dispatcher.events)
}

func TestIngestCallbackMissingCorrelationID(t *testing.T) {
	f := newChargeFixture(t)

	err := f.uc.IngestCallback(context.Background(), &models.STKCallbackEnvelope{})

	assert.Error(t, err)
}
