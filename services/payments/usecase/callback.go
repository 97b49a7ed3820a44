package usecase

import (
	"context"
	"fmt"

	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
)

// mpesaReceiptItem is the callback metadata entry carrying the receipt number
const mpesaReceiptItem = "MpesaReceiptNumber"

// IngestCallback processes an STK push confirmation posted by the gateway.
// Replays and confirmations for already-finalized transactions are dropped
// silently; the gateway is acked by the handler either way.
func (u *paymentUC) IngestCallback(ctx context.Context, envelope *models.STKCallbackEnvelope) error {
	cb := envelope.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return fmt.Errorf("callback missing CheckoutRequestID")
	}

	claimed, err := u.repo.MarkCallbackProcessed(ctx, cb.CheckoutRequestID)
	if err != nil {
		return fmt.Errorf("failed to claim callback: %w", err)
	}
	if !claimed {
		logger.Info("Duplicate callback dropped",
			logger.String("checkout_request_id", cb.CheckoutRequestID))
		return nil
	}

	txn, err := u.repo.GetTransactionByCheckoutRequestID(ctx, cb.CheckoutRequestID)
	if err != nil {
		// Give the claim back so the gateway's retry is not dropped:
		// on a live charge the correlation id may not be stored yet,
		// and lookups can fail transiently
		u.releaseCallbackClaim(ctx, cb.CheckoutRequestID)
		return fmt.Errorf("failed to resolve callback transaction: %w", err)
	}
	if txn.Status != models.TransactionStatusPending {
		logger.Info("Callback for finalized transaction dropped",
			logger.String("transaction_id", txn.ID),
			logger.String("status", txn.Status))
		return nil
	}

	success := cb.ResultCode == 0
	providerRef := ""
	failureReason := ""

	patch := models.Metadata{
		"callback_result_code": cb.ResultCode,
		"callback_result_desc": cb.ResultDesc,
	}
	if success {
		receipt, txnDate, payerPhone := callbackItems(cb.CallbackMetadata)
		providerRef = receipt
		patch["mpesa_receipt"] = receipt
		patch["mpesa_transaction_date"] = txnDate
		patch["mpesa_phone"] = payerPhone
	} else {
		failureReason = cb.ResultDesc
	}
	if err := u.repo.MergeTransactionMetadata(ctx, txn.ID, patch); err != nil {
		logger.Error("Failed to record callback metadata",
			logger.String("transaction_id", txn.ID),
			logger.Err(err))
	}

	logger.Info("STK callback received",
		logger.String("transaction_id", txn.ID),
		logger.String("checkout_request_id", cb.CheckoutRequestID),
		logger.Int("result_code", cb.ResultCode))

	if err := u.finalizeCharge(ctx, txn, success, providerRef, failureReason); err != nil {
		u.releaseCallbackClaim(ctx, cb.CheckoutRequestID)
		return fmt.Errorf("failed to finalize callback transaction: %w", err)
	}
	return nil
}

// releaseCallbackClaim is best effort: when the delete itself fails, the
// claim expires with its TTL and only retries inside that window are lost
func (u *paymentUC) releaseCallbackClaim(ctx context.Context, checkoutRequestID string) {
	if err := u.repo.ReleaseCallbackClaim(ctx, checkoutRequestID); err != nil {
		logger.Error("Failed to release callback claim",
			logger.String("checkout_request_id", checkoutRequestID),
			logger.Err(err))
	}
}

// callbackItems pulls the receipt, transaction date and payer phone out of
// the callback's name/value item list
func callbackItems(metadata *models.STKCallbackMetadata) (receipt string, txnDate, payerPhone interface{}) {
	if metadata == nil {
		return "", nil, nil
	}
	for _, item := range metadata.Item {
		switch item.Name {
		case mpesaReceiptItem:
			if ref, ok := item.Value.(string); ok {
				receipt = ref
			}
		case "TransactionDate":
			txnDate = item.Value
		case "PhoneNumber":
			payerPhone = item.Value
		}
	}
	return receipt, txnDate, payerPhone
}
