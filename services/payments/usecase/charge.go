package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/utils"
)

// DefaultCurrency is assumed when a charge omits the currency
const DefaultCurrency = "KES"

// Charge initiates a mobile-money collection. The transaction is persisted
// as PENDING before any gateway call; the outcome arrives asynchronously.
func (u *paymentUC) Charge(ctx context.Context, account *models.Account, mode models.Mode, req *models.ChargeRequest) (*models.ChargeResponse, error) {
	if req.Amount < MinChargeAmount {
		return nil, models.ErrInvalidAmount
	}

	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	provider, err := utils.DetectProvider(phone)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	fee := CalculateFee(req.Amount)
	transactionID := utils.GenerateID("txn")
	merchant := merchantName(account, req)
	checkoutURL := buildCheckoutURL(u.cfg.Checkout.AppURL, transactionID, merchant, mode, req)

	clientIP := req.ClientIP
	if clientIP == "" {
		clientIP = "unknown"
	}

	txn := &models.Transaction{
		ID:            transactionID,
		AccountID:     account.ID,
		Amount:        req.Amount,
		Currency:      currency,
		Phone:         phone,
		PaymentMethod: provider,
		Status:        models.TransactionStatusPending,
		FeeAmount:     fee,
		FeePercentage: FeePercentage,
		MerchantName:  merchant,
		CheckoutURL:   checkoutURL,
		Metadata: models.Metadata{
			"mode":     string(mode),
			"provider": provider,
			"ip":       clientIP,
		},
	}
	if req.Description != "" {
		txn.Description = &req.Description
	}
	if req.ExternalRef != "" {
		txn.ExternalRef = &req.ExternalRef
	}
	if req.RedirectURL != "" {
		txn.RedirectURL = &req.RedirectURL
	}
	if req.CancelURL != "" {
		txn.CancelURL = &req.CancelURL
	}

	resp := &models.ChargeResponse{
		TransactionID: transactionID,
		CheckoutURL:   checkoutURL,
		Status:        models.TransactionStatusPending,
		Mode:          mode,
		Amount:        req.Amount,
		Currency:      currency,
		Fee:           fee,
		NetAmount:     req.Amount - fee,
		PaymentMethod: provider,
	}

	if mode == models.ModeSandbox {
		return u.chargeSandbox(ctx, txn, resp)
	}
	return u.chargeLive(ctx, txn, resp)
}

// chargeSandbox persists the transaction and hands the outcome to the
// in-process simulator. No external gateway is touched.
func (u *paymentUC) chargeSandbox(ctx context.Context, txn *models.Transaction, resp *models.ChargeResponse) (*models.ChargeResponse, error) {
	checkoutRequestID := fmt.Sprintf("SANDBOX_%d", u.now().UnixMilli())
	txn.Metadata["checkout_request_id"] = checkoutRequestID

	if err := u.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.Info("Sandbox charge initiated",
		logger.String("transaction_id", txn.ID),
		logger.String("phone", utils.MaskPhone(txn.Phone)),
		logger.Int64("amount", txn.Amount))

	u.simulator.ScheduleChargeOutcome(func(success bool) {
		providerRef := ""
		failureReason := ""
		if success {
			providerRef = checkoutRequestID
		} else {
			failureReason = "Sandbox simulated failure"
		}
		u.finalizeCharge(context.Background(), txn, success, providerRef, failureReason)
	})

	resp.CheckoutRequestID = checkoutRequestID
	resp.Message = "Payment initiated. Awaiting customer authorization."
	return resp, nil
}

// chargeLive persists the transaction and fires a real STK push. A gateway
// rejection finalizes the transaction as FAILED immediately.
func (u *paymentUC) chargeLive(ctx context.Context, txn *models.Transaction, resp *models.ChargeResponse) (*models.ChargeResponse, error) {
	if txn.PaymentMethod != models.ProviderMpesa {
		return nil, fmt.Errorf("%w: only M-Pesa is supported for live payments", models.ErrUnsupportedPhone)
	}

	if err := u.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	push, err := u.stk.InitiatePush(ctx, &models.STKPushRequest{
		Phone:       txn.Phone,
		Amount:      txn.Amount,
		AccountRef:  txn.ID,
		Description: txn.MerchantName,
		CallbackURL: u.cfg.Daraja.CallbackURL,
	})
	if err != nil {
		logger.Error("STK push initiation failed",
			logger.String("transaction_id", txn.ID),
			logger.Err(err))

		if ferr := u.repo.FinalizeTransaction(ctx, txn.ID, models.TransactionStatusFailed, nil); ferr != nil {
			logger.Error("Failed to finalize rejected transaction", logger.Err(ferr))
		}
		return nil, fmt.Errorf("%w: %v", models.ErrGatewayFailure, err)
	}

	patch := models.Metadata{
		"checkout_request_id": push.CheckoutRequestID,
		"merchant_request_id": push.MerchantRequestID,
	}
	if err := u.repo.MergeTransactionMetadata(ctx, txn.ID, patch); err != nil {
		logger.Error("Failed to store gateway correlation ids",
			logger.String("transaction_id", txn.ID),
			logger.Err(err))
	}

	logger.Info("STK push sent",
		logger.String("transaction_id", txn.ID),
		logger.String("checkout_request_id", push.CheckoutRequestID),
		logger.String("phone", utils.MaskPhone(txn.Phone)))

	resp.CheckoutRequestID = push.CheckoutRequestID
	resp.Message = push.CustomerMessage
	if resp.Message == "" {
		resp.Message = "Payment initiated. Awaiting customer authorization."
	}
	return resp, nil
}

// finalizeCharge flips the transaction to its terminal status and fans out
// the webhook and broker notifications. The status flip is guarded in the
// database: when another ingest already finalized the transaction, the
// notifications are skipped rather than fired twice. Notification failures
// are logged, never propagated; the persisted status is the source of truth.
func (u *paymentUC) finalizeCharge(ctx context.Context, txn *models.Transaction, success bool, providerRef, failureReason string) error {
	status := models.TransactionStatusFailed
	event := models.EventChargeFailed
	if success {
		status = models.TransactionStatusSuccess
		event = models.EventChargeSuccess
	}

	var refPtr *string
	if providerRef != "" {
		refPtr = &providerRef
	}
	if err := u.repo.FinalizeTransaction(ctx, txn.ID, status, refPtr); err != nil {
		if errors.Is(err, models.ErrInvalidState) {
			logger.Info("Transaction already finalized, skipping notifications",
				logger.String("transaction_id", txn.ID),
				logger.String("status", status))
			return nil
		}
		logger.Error("Failed to finalize transaction",
			logger.String("transaction_id", txn.ID),
			logger.String("status", status),
			logger.Err(err))
		return err
	}
	if failureReason != "" {
		if err := u.repo.MergeTransactionMetadata(ctx, txn.ID, models.Metadata{"failure_reason": failureReason}); err != nil {
			logger.Error("Failed to record failure reason", logger.Err(err))
		}
	}

	logger.Info("Transaction finalized",
		logger.String("transaction_id", txn.ID),
		logger.String("status", status),
		logger.String("provider_ref", providerRef))

	data := map[string]interface{}{
		"transaction_id": txn.ID,
		"amount":         txn.Amount,
		"currency":       txn.Currency,
		"fee":            txn.FeeAmount,
		"net_amount":     txn.Amount - txn.FeeAmount,
		"phone":          utils.MaskPhone(txn.Phone),
		"payment_method": txn.PaymentMethod,
		"status":         status,
	}
	if providerRef != "" {
		data["provider_ref"] = providerRef
	}
	if txn.ExternalRef != nil {
		data["external_ref"] = *txn.ExternalRef
	}
	if failureReason != "" {
		data["failure_reason"] = failureReason
	}
	if err := u.dispatcher.Dispatch(ctx, txn.AccountID, event, data); err != nil {
		logger.Error("Failed to dispatch charge webhook",
			logger.String("transaction_id", txn.ID),
			logger.Err(err))
	}

	mode := models.ModeLive
	if m, ok := txn.Metadata["mode"].(string); ok {
		mode = models.Mode(m)
	}
	chargeEvent := &models.ChargeEvent{
		TransactionID: txn.ID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Phone:         utils.MaskPhone(txn.Phone),
		Status:        status,
		ProviderRef:   providerRef,
		Mode:          mode,
		Timestamp:     u.now(),
	}
	if err := u.gw.PublishChargeEvent(ctx, chargeEvent); err != nil {
		logger.Error("Failed to publish charge event",
			logger.String("transaction_id", txn.ID),
			logger.Err(err))
	}

	return nil
}

func merchantName(account *models.Account, req *models.ChargeRequest) string {
	if req.MerchantName != "" {
		return req.MerchantName
	}
	return account.BusinessName
}

// buildCheckoutURL assembles the hosted checkout page URL. The page renders
// from the query parameters alone, so everything it shows travels here.
func buildCheckoutURL(appURL, transactionID, merchant string, mode models.Mode, req *models.ChargeRequest) string {
	if merchant == "" {
		merchant = "Merchant"
	}

	params := url.Values{}
	params.Set("txn", transactionID)
	params.Set("amount", strconv.FormatInt(req.Amount, 10))
	params.Set("merchant", merchant)
	params.Set("desc", req.Description)
	params.Set("mode", string(mode))
	if req.RedirectURL != "" {
		params.Set("redirect", req.RedirectURL)
	}
	if req.CancelURL != "" {
		params.Set("cancel", req.CancelURL)
	}

	return fmt.Sprintf("%s/checkout?%s", appURL, params.Encode())
}
