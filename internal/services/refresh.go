package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	lambdaclient "github.com/aws/aws-sdk-go-v2/service/lambda"
)

// RefreshService pokes the display-refresh function after a new board
// document lands, so wall displays repaint without waiting for their poll
// interval.
type RefreshService struct {
	client       *lambdaclient.Client
	functionName string
}

// RefreshPayload is the event body sent to the display-refresh function
type RefreshPayload struct {
	BoardKey  string `json:"board_key"`
	RunID     string `json:"run_id"`
	Mode      string `json:"mode"`
	SlotCount int    `json:"slot_count"`
}

// NewRefreshService creates a new refresh service instance
func NewRefreshService(client *lambdaclient.Client, functionName string) *RefreshService {
	return &RefreshService{
		client:       client,
		functionName: functionName,
	}
}

// InvokeDisplayRefresh asynchronously invokes the display-refresh function
func (r *RefreshService) InvokeDisplayRefresh(ctx context.Context, payload RefreshPayload) error {
	if r.functionName == "" {
		// Refresh is optional; displays fall back to polling
		return nil
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh payload: %w", err)
	}

	_, err = r.client.Invoke(ctx, &lambdaclient.InvokeInput{
		FunctionName:   aws.String(r.functionName),
		InvocationType: "Event", // Async invocation
		Payload:        payloadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to invoke display refresh: %w", err)
	}

	return nil
}

// FunctionName returns the configured refresh function name
func (r *RefreshService) FunctionName() string {
	return r.functionName
}
