package api

import (
	"log/slog"
	"sync"

	"flosscast.app/pkg/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators adds the coordinate tags used by request bindings.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("lat", validateLatitude); err != nil {
			slog.Warn("Failed to register latitude validator", "error", err)
		}
		if err := v.RegisterValidation("lon", validateLongitude); err != nil {
			slog.Warn("Failed to register longitude validator", "error", err)
		}
	})
}

func validateLatitude(fl validator.FieldLevel) bool {
	return validation.IsValidLatitude(fl.Field().Float())
}

func validateLongitude(fl validator.FieldLevel) bool {
	return validation.IsValidLongitude(fl.Field().Float())
}
