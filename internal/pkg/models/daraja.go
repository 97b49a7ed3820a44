package models

// STKPushRequest represents an STK push initiation. Amount is in minor
// currency units; the gateway client converts to whole KES. AccountRef is
// truncated to 12 characters and Description to 13 by the gateway.
type STKPushRequest struct {
	Phone       string
	Amount      int64
	AccountRef  string
	Description string
	CallbackURL string
}

// STKPushResponse is the Daraja response to a push initiation
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// STKQueryResponse is the Daraja response to a push status query
type STKQueryResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
}

// DarajaTokenResponse is the OAuth token grant response
type DarajaTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// STKCallbackEnvelope is the asynchronous confirmation Daraja posts to the
// registered callback URL after an STK push resolves.
type STKCallbackEnvelope struct {
	Body struct {
		StkCallback STKCallback `json:"stkCallback"`
	} `json:"Body"`
}

// STKCallback carries the push outcome. ResultCode 0 means success.
type STKCallback struct {
	MerchantRequestID string               `json:"MerchantRequestID"`
	CheckoutRequestID string               `json:"CheckoutRequestID"`
	ResultCode        int                  `json:"ResultCode"`
	ResultDesc        string               `json:"ResultDesc"`
	CallbackMetadata  *STKCallbackMetadata `json:"CallbackMetadata,omitempty"`
}

// STKCallbackMetadata holds the name/value items present on success
type STKCallbackMetadata struct {
	Item []STKCallbackItem `json:"Item"`
}

// STKCallbackItem is one metadata entry (receipt number, amount, payer phone)
type STKCallbackItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value,omitempty"`
}

// CallbackAck is the acknowledgment Daraja expects regardless of internal
// outcome; anything else triggers gateway-side retries.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}
