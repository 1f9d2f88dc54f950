package request_models

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ruralplanner/pkg/utils"
)

// validate reuses the `binding` tag, so the Parse helpers below enforce
// exactly the constraints gin applies in c.ShouldBindJSON.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate unmarshals raw JSON into out and checks the binding
// constraints. Failures come back as *utils.ValidationError naming the
// offending field and the constraint it violated.
func decodeAndValidate(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		// Field-aware unmarshalers (UserID) already name the offending field.
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			return vErr
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &utils.ValidationError{
				Field:      typeErr.Field,
				Constraint: "must be of type " + typeErr.Type.String(),
			}
		}
		return &utils.ValidationError{Constraint: err.Error()}
	}
	if err := validate.Struct(out); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &utils.ValidationError{
				Field:      fieldErrs[0].Field(),
				Constraint: fieldErrs[0].Tag(),
			}
		}
		return &utils.ValidationError{Constraint: err.Error()}
	}
	return nil
}

func ParseSlotQuery(data []byte) (*SlotQuery, error) {
	var q SlotQuery
	if err := decodeAndValidate(data, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func ParseRecommendationRequest(data []byte) (*RecommendationRequest, error) {
	var r RecommendationRequest
	if err := decodeAndValidate(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func ParseRecommendRequest(data []byte) (*RecommendRequest, error) {
	var r RecommendRequest
	if err := decodeAndValidate(data, &r); err != nil {
		return nil, err
	}
	r.Normalize()
	return &r, nil
}

func ParseFeedbackRequest(data []byte) (*FeedbackRequest, error) {
	var f FeedbackRequest
	if err := decodeAndValidate(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
