package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Unknown, "Unknown"},
		{Catalog, "Catalog"},
		{Route, "Route"},
		{Validation, "Validation"},
		{Inventory, "Inventory"},
		{VinDecode, "VinDecode"},
		{Estimate, "Estimate"},
		{Appraisal, "Appraisal"},
		{Camera, "Camera"},
		{Network, "Network"},
		{Configuration, "Configuration"},
		{Timeout, "Timeout"},
		{NotFound, "NotFound"},
		{Code(99), "Code(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestError_Error_Formats(t *testing.T) {
	cause := stderrors.New("connection refused")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(Estimate, "estimate failed"),
			want: "estimate failed",
		},
		{
			name: "with op",
			err:  New(Estimate, "estimate failed").WithOp("dealer.GetTradeInEstimate"),
			want: "dealer.GetTradeInEstimate: estimate failed",
		},
		{
			name: "with cause",
			err:  Wrap(Network, "gateway unreachable", cause),
			want: "gateway unreachable: connection refused",
		},
		{
			name: "with op and cause",
			err:  Wrap(Network, "gateway unreachable", cause).WithOp("dealer.GetInventory"),
			want: "dealer.GetInventory: gateway unreachable: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(VinDecode, "vin %q rejected", "1GCRYDED5LZ100001")
	assert.Equal(t, VinDecode, err.Code)
	assert.Contains(t, err.Message, "1GCRYDED5LZ100001")
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrapf(Inventory, cause, "fetch attempt %d", 2)

	assert.Equal(t, Inventory, err.Code)
	assert.Equal(t, "fetch attempt 2", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(Appraisal, "request failed", cause)

	assert.True(t, stderrors.Is(err, cause))
}

func TestError_Is_MatchesByCode(t *testing.T) {
	err := Wrap(Timeout, "inventory fetch", stderrors.New("deadline"))

	assert.True(t, stderrors.Is(err, ErrTimeout))
	assert.False(t, stderrors.Is(err, ErrModelNotFound))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, Estimate, GetCode(New(Estimate, "x")))
	assert.Equal(t, Unknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, Unknown, GetCode(nil))
}

func TestGetCode_WrappedWithFmt(t *testing.T) {
	inner := New(Route, "bad step")
	wrapped := fmt.Errorf("parsing: %w", inner)

	assert.Equal(t, Route, GetCode(wrapped))
}

func TestIsCode(t *testing.T) {
	err := New(Camera, "no device")

	assert.True(t, IsCode(err, Camera))
	assert.False(t, IsCode(err, Network))
}

func TestSentinels(t *testing.T) {
	require.NotNil(t, ErrModelNotFound)
	require.NotNil(t, ErrCategoryNotFound)
	require.NotNil(t, ErrTimeout)
	require.NotNil(t, ErrCancelled)
	require.NotNil(t, ErrCameraBusy)

	assert.Equal(t, NotFound, ErrModelNotFound.Code)
	assert.Equal(t, Camera, ErrCameraBusy.Code)
}
