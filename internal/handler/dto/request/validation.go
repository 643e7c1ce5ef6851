package request

import (
	"sync"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagISODate validates YYYY-MM-DD strings.
const TagISODate = "isodate"

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator engine.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errs.New("unexpected binding validator engine")
			return
		}
		err = v.RegisterValidation(TagISODate, validateISODate)
	})
	return err
}

func validateISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := calendar.ParseDay(s)
	return err == nil
}

func parseDay(field, value string) (time.Time, error) {
	d, err := calendar.ParseDay(value)
	if err != nil {
		return time.Time{}, errs.Wrapf(errs.ErrInvalidDates, "%s: %q is not a YYYY-MM-DD date", field, value)
	}
	return d, nil
}
