package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const chromaImage = "chromadb/chroma:1.0.15"

type ChromaContainer struct {
	Container testcontainers.Container
	URL       string
}

// NewChromaContainer starts a Chroma server and terminates it when tb finishes.
func NewChromaContainer(ctx context.Context, tb testing.TB) *ChromaContainer {
	tb.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        chromaImage,
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor: wait.ForHTTP("/api/v2/heartbeat").
				WithPort("8000").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		tb.Fatalf("failed to start chroma container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("failed to terminate chroma container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		tb.Fatalf("failed to get chroma host: %v", err)
	}
	port, err := container.MappedPort(ctx, "8000")
	if err != nil {
		tb.Fatalf("failed to get chroma port: %v", err)
	}

	return &ChromaContainer{
		Container: container,
		URL:       fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}
