// Package validation checks configuration structs before a run starts.
//
// Struct tags cover most rules:
//
//	type Workload struct {
//	    Size   int `mapstructure:"size" validate:"gte=1"`
//	    Repeat int `mapstructure:"repeat" validate:"gte=1,lte=1000"`
//	}
//	err := validation.Validate(w)
//
// Cross-field rules use the collecting Validator:
//
//	v := validation.New()
//	v.Custom(rows <= size, "rows", "must not exceed size")
//	if appErr := v.Validate(); appErr != nil { ... }
//
// Both return errors.AppError with code VALIDATION_ERROR and one detail entry
// per offending field.
package validation
