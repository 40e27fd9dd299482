package services

import (
	"context"
	"testing"
)

func TestRefreshService_NoFunctionConfigured(t *testing.T) {
	// With no function name the invoke is a no-op; displays poll instead.
	service := NewRefreshService(nil, "")

	err := service.InvokeDisplayRefresh(context.Background(), RefreshPayload{
		BoardKey:  "board/latest.json",
		RunID:     "run_ab12cd34",
		Mode:      "court",
		SlotCount: 18,
	})
	if err != nil {
		t.Errorf("Expected nil error with no function configured, got: %v", err)
	}

	if service.FunctionName() != "" {
		t.Errorf("FunctionName() = %q, want empty", service.FunctionName())
	}
}
