package request

import (
	"math"
	"regexp"
	"strconv"
	"sync"

	"fabar_drinks/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the quote form rules to gin's validator engine.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = RegisterOn(v)
	})
	return err
}

// RegisterOn registers the rules on v.
func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"event_type":     func(fl validator.FieldLevel) bool { return entities.IsEventType(fl.Field().String()) },
		"payment_method": func(fl validator.FieldLevel) bool { return entities.IsPaymentMethod(fl.Field().String()) },
		"beverage_type":  func(fl validator.FieldLevel) bool { return entities.IsBeverageType(fl.Field().String()) },
		"service":        func(fl validator.FieldLevel) bool { return entities.IsService(fl.Field().String()) },
		"guest_count":    validGuestCount,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// floatNumber is the number syntax a browser number input submits, so "1e2"
// and ".5" parse while "+5" and "1." do not.
var floatNumber = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?$`)

// validGuestCount accepts what a number input with min="1" and the default
// step accepts: a whole value of at least one, in any number notation.
func validGuestCount(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !floatNumber.MatchString(s) {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) {
		return false
	}
	return n >= 1 && n == math.Trunc(n)
}
