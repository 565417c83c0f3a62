package codec

import (
	"context"
	"errors"
	"testing"

	pb "github.com/kdriscoll/roadnav/go-commander/gen/nav"
	"github.com/kdriscoll/roadnav/go-commander/internal/commander"
	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
	"google.golang.org/grpc"
)

// #region mock
type mockBridgeService struct {
	pb.NavigatorBridgeClient

	stateResp *pb.NavigatorState
	stateErr  error

	publishResp *pb.PublishReply
	publishErr  error

	lastOrder *pb.Order
}

func (m *mockBridgeService) GetState(_ context.Context, _ *pb.StateRequest, _ ...grpc.CallOption) (*pb.NavigatorState, error) {
	return m.stateResp, m.stateErr
}

func (m *mockBridgeService) PublishOrder(_ context.Context, ord *pb.Order, _ ...grpc.CallOption) (*pb.PublishReply, error) {
	m.lastOrder = ord
	return m.publishResp, m.publishErr
}

// #endregion mock

// #region constructor-tests
func TestNewNavClientInvalidAddr(t *testing.T) {
	client, err := NewNavClient("localhost:0")
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	defer client.Close()
}

func TestNewNavClientWithService(t *testing.T) {
	c := NewNavClientWithService(&mockBridgeService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close without connection: %v", err)
	}
}

// #endregion constructor-tests

// #region get-state-tests
func TestGetState_Success(t *testing.T) {
	mock := &mockBridgeService{
		stateResp: &pb.NavigatorState{
			LastWaypt:   "w3",
			ReplanWaypt: "w5",
			RoadBlocked: true,
		},
	}
	c := &NavClient{client: mock}

	ns, err := c.GetState(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ns.LastWaypt != "w3" {
		t.Errorf("expected last waypoint w3, got %q", ns.LastWaypt)
	}
	if ns.ReplanWaypt != "w5" {
		t.Errorf("expected replan waypoint w5, got %q", ns.ReplanWaypt)
	}
	if !ns.RoadBlocked {
		t.Error("expected road blocked")
	}
}

func TestGetState_EmptyReplan(t *testing.T) {
	mock := &mockBridgeService{
		stateResp: &pb.NavigatorState{LastWaypt: "w1"},
	}
	c := &NavClient{client: mock}

	ns, err := c.GetState(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ns.ReplanWaypt.IsNone() {
		t.Errorf("expected none replan waypoint, got %q", ns.ReplanWaypt)
	}
}

func TestGetState_Error(t *testing.T) {
	mock := &mockBridgeService{
		stateErr: errors.New("rpc failed"),
	}
	c := &NavClient{client: mock}

	_, err := c.GetState(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.stateErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion get-state-tests

// #region publish-order-tests
func TestPublishOrder_Success(t *testing.T) {
	mock := &mockBridgeService{
		publishResp: &pb.PublishReply{Ok: true},
	}
	c := &NavClient{client: mock}

	ord := commander.Order{
		Behavior:  commander.BehaviorGo,
		Waypoints: []graph.ElementID{"w1", "w2", "w3"},
	}
	if err := c.PublishOrder(context.Background(), ord); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.lastOrder.Behavior != "GO" {
		t.Errorf("expected behavior GO on the wire, got %q", mock.lastOrder.Behavior)
	}
	if len(mock.lastOrder.Waypoints) != 3 || mock.lastOrder.Waypoints[0] != "w1" {
		t.Errorf("expected waypoints [w1 w2 w3], got %v", mock.lastOrder.Waypoints)
	}
}

func TestPublishOrder_Rejected(t *testing.T) {
	mock := &mockBridgeService{
		publishResp: &pb.PublishReply{Ok: false},
	}
	c := &NavClient{client: mock}

	err := c.PublishOrder(context.Background(), commander.Order{Behavior: commander.BehaviorQuit})
	if err == nil {
		t.Fatal("expected error when navigator rejects the order")
	}
}

func TestPublishOrder_Error(t *testing.T) {
	mock := &mockBridgeService{
		publishErr: errors.New("publish failed"),
	}
	c := &NavClient{client: mock}

	err := c.PublishOrder(context.Background(), commander.Order{Behavior: commander.BehaviorGo})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.publishErr) {
		t.Errorf("expected wrapped publish error, got: %v", err)
	}
}

// #endregion publish-order-tests
