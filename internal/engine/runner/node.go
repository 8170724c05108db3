package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rig/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the engine runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			exec, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(exec, log), nil
		},
	})
}
