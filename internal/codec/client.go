package codec

import (
	"context"
	"fmt"

	pb "github.com/kdriscoll/roadnav/go-commander/gen/nav"
	"github.com/kdriscoll/roadnav/go-commander/internal/commander"
	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct
// NavClient wraps the gRPC connection to the navigator bridge service.
type NavClient struct {
	conn   *grpc.ClientConn
	client pb.NavigatorBridgeClient
}

// #endregion client-struct

// #region constructor
// NewNavClient connects to the navigator bridge gRPC server.
func NewNavClient(addr string) (*NavClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &NavClient{
		conn:   conn,
		client: pb.NewNavigatorBridgeClient(conn),
	}, nil
}

// NewNavClientWithService creates a NavClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewNavClientWithService(svc pb.NavigatorBridgeClient) *NavClient {
	return &NavClient{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *NavClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region get-state
// GetState fetches the navigator's current snapshot for this cycle.
func (c *NavClient) GetState(ctx context.Context) (commander.NavigatorState, error) {
	resp, err := c.client.GetState(ctx, &pb.StateRequest{})
	if err != nil {
		return commander.NavigatorState{}, fmt.Errorf("get state rpc: %w", err)
	}

	return commander.NavigatorState{
		LastWaypt:   graph.ElementID(resp.LastWaypt),
		ReplanWaypt: graph.ElementID(resp.ReplanWaypt),
		RoadBlocked: resp.RoadBlocked,
	}, nil
}

// #endregion get-state

// #region publish-order
// PublishOrder sends the commander's order for this cycle to the
// navigator.
func (c *NavClient) PublishOrder(ctx context.Context, ord commander.Order) error {
	waypoints := make([]string, len(ord.Waypoints))
	for i, id := range ord.Waypoints {
		waypoints[i] = string(id)
	}

	resp, err := c.client.PublishOrder(ctx, &pb.Order{
		Behavior:  ord.Behavior.String(),
		Waypoints: waypoints,
	})
	if err != nil {
		return fmt.Errorf("publish order rpc: %w", err)
	}
	if !resp.Ok {
		return fmt.Errorf("publish order: navigator rejected %s", ord.Behavior)
	}
	return nil
}

// #endregion publish-order
