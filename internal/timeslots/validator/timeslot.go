package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"salonbook/pkg/duration"
	"salonbook/pkg/logger"
	"salonbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type TimeSlotValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewTimeSlotValidator(log *logger.Logger) *TimeSlotValidator {
	v := validator.New()

	if err := v.RegisterValidation("hhmm", ValidateHHMM); err != nil {
		log.Fatal("Failed to register 'hhmm' validator", "error", err)
	}
	if err := v.RegisterValidation("ymd", ValidateYMD); err != nil {
		log.Fatal("Failed to register 'ymd' validator", "error", err)
	}

	return &TimeSlotValidator{
		validate: v,
		logger:   log,
	}
}

// ValidateHHMM accepts zero-padded 24-hour wall times ("09:05").
func ValidateHHMM(fl validator.FieldLevel) bool {
	_, err := duration.ParseClock(fl.Field().String())
	return err == nil
}

// ValidateYMD accepts calendar days in "YYYY-MM-DD".
func ValidateYMD(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func (v *TimeSlotValidator) Validate(slot *model.TimeSlot) error {
	if err := v.validate.Struct(slot); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}

	if slot.EndTime <= slot.StartTime {
		return ValidationErrors{
			ValidationError{
				Field:   "EndTime",
				Message: "endTime must be after startTime",
			},
		}
	}
	return nil
}

func translate(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "hhmm":
			message = fmt.Sprintf("%s must be in HH:MM 24-hour format", err.Field())
		case "ymd":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
