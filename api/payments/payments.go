package payments

import (
	"errors"
	"net/http"

	"giftingstudio_server/lib"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreatePaymentOrder handles POST /payments/orders. The amount arrives in
// major units and is converted before it reaches the provider.
func (prm *PaymentRoutesManager) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreatePaymentOrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.payment.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := prm.paymentService.CreateOrder(r.Context(), body.Amount)
	if err != nil {
		prm.logger.Error("Failed to create payment order", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.payment.orderCreationFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

// VerifyPayment handles POST /payments/verify with an exact signature check
func (prm *PaymentRoutesManager) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.VerifyPaymentRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.payment.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if err := prm.paymentService.VerifyPayment(body); err != nil {
		if errors.Is(err, lib.ErrInvalidSignature) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.payment.signatureMismatch"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Payment verification failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.payment.verificationFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.payment.verified"),
		gecho.WithData(map[string]any{
			"provider_order_id": body.OrderID,
			"payment_id":        body.PaymentID,
			"verified":          true,
		}),
		gecho.Send(),
	)
}
