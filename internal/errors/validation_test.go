package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("die", "is invalid")
	ve.AddFieldErrorf("rows", "must have at least %d entries", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "die: is invalid")
	s.Assert().Contains(ve.Error(), "rows: must have at least 1 entries")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("table", "is required").
		Fieldf("seed", "must be between %d and %d", 0, 100).
		RequiredField("region").
		InvalidField("terrain", "not a known terrain")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedTimes := []string{"day", "night"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("time", "dusk", allowedTimes, vb)
	errors.ValidateEnum("other_time", "day", allowedTimes, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["time"][0], "must be one of: day, night")
	s.Assert().NotContains(validationErrors, "other_time")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	// Simulate validating an encounter lookup request
	type LookupInput struct {
		Table   string
		Region  string
		Terrain string
	}

	input := LookupInput{
		Table:   "",
		Region:  "high-wold",
		Terrain: "swamp",
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("table", input.Table, vb)
	errors.ValidateRequired("region", input.Region, vb)
	errors.ValidateEnum("terrain", input.Terrain, []string{"road", "offroad"}, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "table")
	s.Assert().Contains(validationErrors, "terrain")
	s.Assert().NotContains(validationErrors, "region")
}
