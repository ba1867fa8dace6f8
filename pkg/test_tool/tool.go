package testtool

import (
	"context"
	"strings"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
)

// SetupContainer 通用函式來啟動測試容器，回傳 host 與第一個 exposed port 的對應 port
func SetupContainer(ctx context.Context, req testcontainers.ContainerRequest) (testcontainers.Container, string, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, "", "", err
	}

	natPort, err := nat.NewPort("tcp", strings.TrimSuffix(req.ExposedPorts[0], "/tcp"))
	if err != nil {
		return nil, "", "", err
	}

	port, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return nil, "", "", err
	}

	return container, host, port.Port(), nil
}

// RequireContainer 啟動容器給單一測試使用，-short 或沒有 docker 時 skip
func RequireContainer(t *testing.T, req testcontainers.ContainerRequest) (string, string) {
	t.Helper()
	if testing.Short() {
		t.Skip("skip container test in short mode")
	}

	ctx := context.Background()
	container, host, port, err := SetupContainer(ctx, req)
	if err != nil {
		t.Skipf("container %s unavailable: %v", req.Image, err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})
	return host, port
}
