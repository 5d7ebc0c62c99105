// Where: cli/internal/container/run.go
// What: Container-mode server execution via the Docker SDK.
// Why: Run the server image with the same env contract as a local launch.
package container

import (
	"context"
	"fmt"
	"strconv"

	containertypes "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/go-connections/nat"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/grabdeck/cli/internal/constants"
)

// launcherLabel marks containers started by this CLI.
const launcherLabel = "io.grabdeck.launcher"

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ContainerCreate(
		ctx context.Context,
		config *containertypes.Config,
		hostConfig *containertypes.HostConfig,
		networkingConfig *network.NetworkingConfig,
		platform *ocispec.Platform,
		containerName string,
	) (containertypes.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options containertypes.StartOptions) error
	ContainerWait(
		ctx context.Context,
		containerID string,
		condition containertypes.WaitCondition,
	) (<-chan containertypes.WaitResponse, <-chan error)
	ContainerRemove(ctx context.Context, containerID string, options containertypes.RemoveOptions) error
}

// RunOptions configures a container-mode launch.
type RunOptions struct {
	Image      string
	Port       int
	PublicHost string
}

// RunServer creates, starts, and synchronously waits on the server container.
// The container gets PUBLIC_HOST in its environment and the server port
// published on all interfaces, mirroring a local launch. Returns the
// container's exit status; the container is removed afterwards.
func RunServer(ctx context.Context, client DockerClient, opts RunOptions) (int, error) {
	if client == nil {
		return 0, fmt.Errorf("docker client is nil")
	}
	if opts.Image == "" {
		return 0, fmt.Errorf("container image is required")
	}

	portKey, err := nat.NewPort("tcp", strconv.Itoa(opts.Port))
	if err != nil {
		return 0, fmt.Errorf("invalid port %d: %w", opts.Port, err)
	}

	config := &containertypes.Config{
		Image: opts.Image,
		Env:   []string{constants.EnvPublicHost + "=" + opts.PublicHost},
		ExposedPorts: nat.PortSet{
			portKey: struct{}{},
		},
		Labels: map[string]string{launcherLabel: "true"},
	}
	hostConfig := &containertypes.HostConfig{
		PortBindings: nat.PortMap{
			portKey: []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: strconv.Itoa(opts.Port)}},
		},
	}

	created, err := client.ContainerCreate(ctx, config, hostConfig, nil, nil, "")
	if err != nil {
		return 0, fmt.Errorf("create container: %w", err)
	}
	defer func() {
		_ = client.ContainerRemove(context.WithoutCancel(ctx), created.ID, containertypes.RemoveOptions{Force: true})
	}()

	if err := client.ContainerStart(ctx, created.ID, containertypes.StartOptions{}); err != nil {
		return 0, fmt.Errorf("start container: %w", err)
	}

	waitCh, errCh := client.ContainerWait(ctx, created.ID, containertypes.WaitConditionNotRunning)
	select {
	case resp := <-waitCh:
		if resp.Error != nil {
			return int(resp.StatusCode), fmt.Errorf("container wait: %s", resp.Error.Message)
		}
		return int(resp.StatusCode), nil
	case err := <-errCh:
		return -1, fmt.Errorf("container wait: %w", err)
	}
}
