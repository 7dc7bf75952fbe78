package http

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskdesk/internal/shared/utils"
)

// RegisterValidators installs the form-cell validation tags on gin's
// binding engine so request DTOs can carry them in binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("datecell", utils.DateCellValidation); err != nil {
		return fmt.Errorf("failed to register datecell validation: %w", err)
	}
	if err := v.RegisterValidation("clocktime", utils.ClockTimeValidation); err != nil {
		return fmt.Errorf("failed to register clocktime validation: %w", err)
	}
	return nil
}
