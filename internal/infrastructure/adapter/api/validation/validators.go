package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
)

// centsPattern accepts a non-negative integer count of cents that fits in an int64
var centsPattern = regexp.MustCompile(`^(0|[1-9]\d{0,17})$`)

// RegisterValidators adds the ledger tags to gin's binding validator
func RegisterValidators() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	return Register(engine)
}

// Register adds the ledger tags to a validator
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("cents", validateCents); err != nil {
		return fmt.Errorf("register cents validator: %w", err)
	}
	if err := v.RegisterValidation("gamecode", validateGameCode); err != nil {
		return fmt.Errorf("register gamecode validator: %w", err)
	}
	return nil
}

func validateCents(fl validator.FieldLevel) bool {
	return centsPattern.MatchString(fl.Field().String())
}

func validateGameCode(fl validator.FieldLevel) bool {
	_, err := entity.ParseGameCode(fl.Field().String())
	return err == nil
}

// Describe turns a binding error into a short message for the caller
func Describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	return strings.Join(details, "; ")
}
