package validation

import (
	"sync"

	"shrijee_plots/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var once sync.Once

// Register adds the domain binding rules to gin's validator. Safe to call
// more than once.
//
//   - payment_type: full | installment
//   - payment_mode: cash | bank_transfer | upi | cheque | online
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			logrus.Warn("[http][validation] gin validator engine is not go-playground; custom rules skipped")
			return
		}
		_ = v.RegisterValidation("payment_type", paymentType)
		_ = v.RegisterValidation("payment_mode", paymentMode)
	})
}

func paymentType(fl validator.FieldLevel) bool {
	switch entities.PaymentType(fl.Field().String()) {
	case entities.PaymentTypeFull, entities.PaymentTypeInstallment:
		return true
	}
	return false
}

func paymentMode(fl validator.FieldLevel) bool {
	switch entities.PaymentMode(fl.Field().String()) {
	case entities.PaymentModeCash, entities.PaymentModeBankTransfer, entities.PaymentModeUPI, entities.PaymentModeCheque, entities.PaymentModeOnline:
		return true
	}
	return false
}
