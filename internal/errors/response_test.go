package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(ExpenseNotFound, "trace-123")

	s.Equal("EXPENSE_001", resp.Error.Code)
	s.Equal("Expense not found", resp.Error.Message)
	s.Equal("trace-123", resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	resp := NewErrorResponse(ValidationGeneral, "trace-456",
		WithDetails("period: must be one of weekly, monthly, all, explicit"),
		WithMessage("Bad request"))

	s.Equal("Bad request", resp.Error.Message)
	s.Len(resp.Error.Details, 1)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{
		"amount": "must be positive",
	}, "trace-789")

	s.Equal(string(ValidationGeneral), resp.Error.Code)
	s.Contains(resp.Error.Details, "amount: must be positive")
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetails() {
	internal := json.Unmarshal([]byte("{"), &struct{}{})
	resp, err := WrapSystemError(internal, "trace-000")

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), resp.Error.Code)
	s.NotContains(resp.Error.Message, "unexpected end")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		name   string
		code   ErrorCode
		status int
	}{
		{"validation is 400", ValidationInvalidPeriod, http.StatusBadRequest},
		{"invalid date is 400", ValidationInvalidDate, http.StatusBadRequest},
		{"missing token is 401", AuthMissingToken, http.StatusUnauthorized},
		{"no identity is 401", AuthNoUserIdentity, http.StatusUnauthorized},
		{"expense not found is 404", ExpenseNotFound, http.StatusNotFound},
		{"settings conflict is 409", SettingsAlreadyExists, http.StatusConflict},
		{"rate limit is 429", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"system is 500", SystemInternalError, http.StatusInternalServerError},
		{"unknown defaults to 500", ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestIsClientError() {
	s.True(NewErrorResponse(ExpenseNotFound, "t").IsClientError())
	s.False(NewErrorResponse(SystemDatabaseError, "t").IsClientError())
}

func (s *ResponseTestSuite) TestToJSON_ShapeIsStable() {
	resp := NewErrorResponse(ValidationInvalidPeriod, "trace-1")
	raw, err := resp.ToJSON()
	s.NoError(err)

	var decoded map[string]map[string]interface{}
	s.NoError(json.Unmarshal(raw, &decoded))
	s.Equal("VALIDATION_005", decoded["error"]["code"])
	s.Equal("trace-1", decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
	s.True(IsValidErrorCode(ExpenseNotFound))
}
