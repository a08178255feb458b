package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"relay/config"
	"relay/internal/domain/constants"
	"relay/internal/domain/service"

	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.DeliveryEvent {
	return &service.DeliveryEvent{
		RequestID:  "req-1",
		Type:       service.EventOrderStatusLogged,
		SourceID:   "order-42",
		LogCount:   2,
		Status:     "SHIPPED",
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestGooglePubSubPublisher_PublishesOrderedBySource(t *testing.T) {
	ctx := context.Background()
	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	_, err := srv.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/relay-test/topics/deliveries"})
	require.NoError(t, err)

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	publisher, err := NewGooglePubSubPublisher(ctx, "relay-test", "deliveries", discardLogger(), option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	require.NoError(t, publisher.PublishDeliveryEvent(ctx, sampleEvent()))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "order-42", msgs[0].OrderingKey)
	assert.Equal(t, service.EventOrderStatusLogged, msgs[0].Attributes[constants.PubSubAttrEventType])
	assert.Equal(t, "req-1", msgs[0].Attributes[constants.PubSubAttrRequestID])

	var decoded service.DeliveryEvent
	require.NoError(t, json.Unmarshal(msgs[0].Data, &decoded))
	assert.Equal(t, 2, decoded.LogCount)
}

func TestGooglePubSubPublisher_MissingTopic(t *testing.T) {
	ctx := context.Background()
	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	_, err = NewGooglePubSubPublisher(ctx, "relay-test", "absent", discardLogger(), option.WithGRPCConn(conn))

	assert.ErrorContains(t, err, "failed to get topic absent")
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(endpoint.Close)

	publisher := NewLocalHTTPPublisher(endpoint.URL, discardLogger())

	require.NoError(t, publisher.PublishDeliveryEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, service.EventOrderStatusLogged, received.Message.Attributes[constants.PubSubAttrEventType])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.DeliveryEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "order-42", decoded.SourceID)
}

func TestLocalHTTPPublisher_RejectedPush(t *testing.T) {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(endpoint.Close)

	err := NewLocalHTTPPublisher(endpoint.URL, discardLogger()).PublishDeliveryEvent(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name:   "unconfigured drops events",
			pubsub: nil,
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, p)
			},
		},
		{
			name:   "local provider is bounded",
			pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push", PublishTimeout: time.Second},
			check: func(t *testing.T, p service.EventPublisher) {
				bounded, ok := p.(*boundedPublisher)
				require.True(t, ok)
				assert.Equal(t, time.Second, bounded.timeout)
			},
		},
		{
			name:    "local provider without endpoint",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google provider without topic",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
			wantErr: "topic ID is required",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, publisher)
		})
	}
}

func TestBoundedPublisher_AppliesDeadline(t *testing.T) {
	inner := &deadlineRecorder{}
	publisher := &boundedPublisher{EventPublisher: inner, timeout: time.Minute}

	require.NoError(t, publisher.PublishDeliveryEvent(context.Background(), sampleEvent()))

	assert.True(t, inner.hadDeadline)
}

type deadlineRecorder struct {
	hadDeadline bool
}

func (r *deadlineRecorder) PublishDeliveryEvent(ctx context.Context, _ *service.DeliveryEvent) error {
	_, r.hadDeadline = ctx.Deadline()

	return nil
}

func (r *deadlineRecorder) Close() error {
	return nil
}
