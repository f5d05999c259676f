package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/eventquery"
)

// registerValidators adds the custom binding rules to gin's validator.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("calendardate", isCalendarDate); err != nil {
		slog.Error("Failed to register calendardate validation", slog.String("error", err.Error()))
	}
}

// isCalendarDate accepts YYYY-MM-DD strings naming a real day.
func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(eventquery.CalendarDateLayout, fl.Field().String())
	return err == nil
}
