package ports

import "context"

//go:generate mockgen -source=device.go -destination=mocks/mock_device.go -package=mocks

// DeviceBridge talks to an attached device.
type DeviceBridge interface {
	// Push copies the contents of the local directory src into dst on the device.
	Push(ctx context.Context, src, dst string) error
	// Shell runs a command on the device.
	Shell(ctx context.Context, args []string) error
}
