package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rallied/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPointMessage returns commentary for a finished rally
	GetPointMessage(ctx context.Context, input *GetPointMessageInput) (*GetPointMessageOutput, error)

	// GetMatchStatusMessage returns a one-liner describing the score
	GetMatchStatusMessage(ctx context.Context, input *GetMatchStatusMessageInput) (*GetMatchStatusMessageOutput, error)

	// GetPackOpenedMessage returns the title and body shown after a pack is opened
	GetPackOpenedMessage(ctx context.Context, input *GetPackOpenedMessageInput) (*GetPackOpenedMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
