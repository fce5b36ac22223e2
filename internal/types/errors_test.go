package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewGameError() {
	// Setup
	code := ErrShoeUnderflow
	message := "cannot draw 5 cards, only 2 remain"

	// Execute
	err := NewGameError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrInternalError
	message := "wallet error"
	underlying := errors.New("repository unavailable")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewGameError(ErrInvalidArgument, "shoe requires at least 1 deck, got 0"),
			expected: "INVALID_ARGUMENT: shoe requires at least 1 deck, got 0",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrInternalError, "wallet error", errors.New("repository unavailable")),
			expected: "INTERNAL_ERROR: wallet error (repository unavailable)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestIsGameError() {
	underflow := NewGameError(ErrShoeUnderflow, "cannot draw 3 cards, only 1 remains")

	s.True(IsGameError(underflow, ErrShoeUnderflow), "Should match the error's own code")
	s.False(IsGameError(underflow, ErrInvalidArgument), "Should not match a different code")
	s.False(IsGameError(nil, ErrShoeUnderflow), "Nil error should never match")
	s.False(IsGameError(errors.New("plain error"), ErrShoeUnderflow), "Plain errors should not match")
}

func (s *ErrorTestSuite) TestIsGameErrorWrappedChain() {
	underflow := NewGameError(ErrShoeUnderflow, "cannot draw 3 cards, only 1 remains")
	wrapped := fmt.Errorf("dealing failed: %w", underflow)

	s.True(IsGameError(wrapped, ErrShoeUnderflow), "Should follow the wrapped error chain")
}

func (s *ErrorTestSuite) TestUnwrap() {
	underlying := errors.New("repository unavailable")
	err := WrapError(ErrInternalError, "wallet error", underlying)

	s.Equal(underlying, errors.Unwrap(err), "Unwrap should return the underlying error")
}
