package app

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"video_transcode_trigger/internal/transcode/domain"

	"github.com/getsentry/sentry-go"
	"github.com/minio/minio-go/v7/pkg/notification"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJobSubmitter mock repository.JobSubmitter
type MockJobSubmitter struct {
	mock.Mock
}

func (m *MockJobSubmitter) Submit(ctx context.Context, job domain.JobSpec) (*domain.JobHandle, error) {
	args := m.Called(ctx, job)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.JobHandle), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMarkerRepo mock repository.MarkerRepo
type MockMarkerRepo struct {
	mock.Mock
}

func (m *MockMarkerRepo) SetTranscoding(ctx context.Context, groupKey string) error {
	args := m.Called(ctx, groupKey)
	return args.Error(0)
}

// MockTranscodeUseCase mock TranscodeUseCase
type MockTranscodeUseCase struct {
	mock.Mock
}

func (m *MockTranscodeUseCase) HandleNotification(ctx context.Context, n domain.Notification) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}

// fakeNotificationSource 回傳預先放好的 channel
type fakeNotificationSource struct {
	ch     chan notification.Info
	prefix string
	suffix string
}

func (f *fakeNotificationSource) ListenObjectCreated(ctx context.Context, prefix, suffix string) <-chan notification.Info {
	f.prefix = prefix
	f.suffix = suffix
	return f.ch
}

func notificationWithKeys(keys ...string) domain.Notification {
	n := domain.Notification{}
	for _, k := range keys {
		n.Records = append(n.Records, domain.NotificationRecord{
			EventName: "ObjectCreated:Put",
			S3: domain.S3Entity{
				Bucket: domain.S3Bucket{Name: "uploads"},
				Object: domain.S3Object{Key: k},
			},
		})
	}
	return n
}

var testPresets = domain.RenditionPresets{
	Web480p:      "1351620000001-000020",
	Generic720p:  "1351620000001-000010",
	Web720p:      "1351620000001-100070",
	Generic1080p: "1351620000001-000001",
}

const testPipelineID = "1111111111111-abcde1"

// sentryRecorder 記錄送往 sentry 的 event
type sentryRecorder struct {
	mu      sync.Mutex
	events  []*sentry.Event
	flushes int
}

func (r *sentryRecorder) Configure(options sentry.ClientOptions) {}

func (r *sentryRecorder) SendEvent(event *sentry.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *sentryRecorder) Flush(timeout time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushes++
	return true
}

func (r *sentryRecorder) FlushWithContext(ctx context.Context) bool {
	return r.Flush(0)
}

func (r *sentryRecorder) Close() {}

func (r *sentryRecorder) Events() []*sentry.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*sentry.Event(nil), r.events...)
}

func (r *sentryRecorder) Flushes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushes
}

// recordSentry 以 sentryRecorder 初始化 sentry，測試結束後解除
func recordSentry(t *testing.T) *sentryRecorder {
	t.Helper()
	rec := &sentryRecorder{}
	require.NoError(t, sentry.Init(sentry.ClientOptions{Transport: rec, SampleRate: 1.0}))
	t.Cleanup(func() {
		sentry.CurrentHub().BindClient(nil)
	})
	return rec
}

func requireExceptionEvent(t *testing.T, event *sentry.Event, message string) {
	t.Helper()
	require.NotEmpty(t, event.Exception)
	for _, e := range event.Exception {
		if strings.Contains(e.Value, message) {
			return
		}
	}
	t.Fatalf("no exception in event contains %q", message)
}
