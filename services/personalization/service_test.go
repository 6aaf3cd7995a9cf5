package personalization

import (
	"context"
	"errors"
	"sync"
	"testing"

	"coachly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSource records subscriptions and lets the test drive callbacks.
type fakeSource struct {
	mu       sync.Mutex
	active   int
	total    int
	onChange func(*models.AgencyConfigPatch)
	onError  func(error)
}

func (f *fakeSource) Subscribe(ctx context.Context, onChange func(*models.AgencyConfigPatch), onError func(error)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active++
	f.total++
	f.onChange = onChange
	f.onError = onError

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.active--
		})
	}
}

func (f *fakeSource) activeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

func (f *fakeSource) emit(patch *models.AgencyConfigPatch) {
	f.mu.Lock()
	cb := f.onChange
	f.mu.Unlock()
	cb(patch)
}

func (f *fakeSource) fail(err error) {
	f.mu.Lock()
	cb := f.onError
	f.mu.Unlock()
	cb(err)
}

func startedService(t *testing.T, source RemoteSource) *Service {
	t.Helper()
	svc := New(source, zap.NewNop())
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)
	return svc
}

func TestServiceWithoutIdentityServesDefaults(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)

	state := svc.Snapshot()
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
	assert.Equal(t, Defaults(), state.Config)
	assert.Equal(t, 0, source.activeCount(), "no identity, no subscription")
}

func TestServiceWithoutSourceServesDefaults(t *testing.T) {
	svc := New(nil, zap.NewNop())
	svc.Start(context.Background())
	defer svc.Stop()
	svc.SetIdentity("admin-1")

	state := svc.Snapshot()
	assert.False(t, state.Loading)
	assert.Equal(t, Defaults(), state.Config)
}

func TestServiceEntersLoadingThenReady(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)

	svc.SetIdentity("admin-1")
	require.Equal(t, 1, source.activeCount())
	assert.True(t, svc.Snapshot().Loading)

	source.emit(&models.AgencyConfigPatch{PrimaryColor: strPtr("#ff0000")})

	state := svc.Snapshot()
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
	assert.Equal(t, "#ff0000", state.Config.PrimaryColor)
	assert.Equal(t, "#25d408", state.Config.SecondaryColor, "unpatched fields keep defaults")
}

func TestServiceMissingDocumentServesDefaults(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)
	svc.SetIdentity("admin-1")

	// A nil patch means "no remote document", so defaults apply.
	source.emit(nil)

	state := svc.Snapshot()
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
	assert.Equal(t, "#2ff40a", state.Config.PrimaryColor)
}

func TestServiceDegradesToDefaultsOnError(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)
	svc.SetIdentity("admin-1")

	readErr := errors.New("permission denied")
	source.fail(readErr)

	state := svc.Snapshot()
	assert.False(t, state.Loading)
	assert.Equal(t, readErr, state.Err)
	assert.Equal(t, Defaults(), state.Config, "degraded state still renders with defaults")
}

func TestServiceIdentitySwitchReplacesSubscription(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)

	svc.SetIdentity("admin-1")
	svc.SetIdentity("admin-2")

	assert.Equal(t, 1, source.activeCount(), "old subscription torn down before the new one counts")
	assert.Equal(t, 2, source.total)
}

func TestServiceIgnoresStaleCallbacks(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)

	svc.SetIdentity("admin-1")
	staleEmit := source.onChange

	svc.SetIdentity("admin-2")
	source.emit(&models.AgencyConfigPatch{PrimaryColor: strPtr("#00ff00")})

	// A late event from the first subscription must not clobber state.
	staleEmit(&models.AgencyConfigPatch{PrimaryColor: strPtr("#bad000")})

	assert.Equal(t, "#00ff00", svc.Snapshot().Config.PrimaryColor)
}

func TestServiceSignOutFallsBackToDefaults(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)

	svc.SetIdentity("admin-1")
	source.emit(&models.AgencyConfigPatch{PrimaryColor: strPtr("#ff0000")})
	svc.SetIdentity("")

	state := svc.Snapshot()
	assert.Equal(t, Defaults(), state.Config)
	assert.Equal(t, 0, source.activeCount())
}

func TestServiceWatchDeliversUpdates(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)

	ch, cancel := svc.Watch()
	defer cancel()

	svc.SetIdentity("admin-1")
	source.emit(&models.AgencyConfigPatch{PrimaryColor: strPtr("#ff0000")})

	var last Resolved
	for len(ch) > 0 {
		last = <-ch
	}
	assert.Equal(t, "#ff0000", last.Config.PrimaryColor)
	assert.False(t, last.Loading)
}

func TestServiceSnapshotIsIsolated(t *testing.T) {
	source := &fakeSource{}
	svc := startedService(t, source)

	state := svc.Snapshot()
	state.Config.HomeSections[0].Enabled = false

	assert.True(t, svc.Snapshot().Config.HomeSections[0].Enabled,
		"mutating a snapshot must not leak into the service state")
}

func TestServiceStopClosesWatchers(t *testing.T) {
	source := &fakeSource{}
	svc := New(source, zap.NewNop())
	svc.Start(context.Background())

	ch, _ := svc.Watch()
	svc.Stop()

	_, open := <-ch
	assert.False(t, open)
}
