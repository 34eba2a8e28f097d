package searchbox

import (
	"testing"

	"github.com/jpl-au/juggler/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subscribe attaches a recorder to the box's update channel.
func subscribe(t *testing.T, b *Box) *[]string {
	t.Helper()
	var got []string
	b.Update().Subscribe(func(v string) error {
		got = append(got, v)
		return nil
	})
	return &got
}

func TestBox_MountEmitsEmptyOnce(t *testing.T) {
	b := New()
	got := subscribe(t, b)

	assert.Equal(t, StateUninitialized, b.State())
	assert.Empty(t, *got)

	require.NoError(t, b.Mount())
	assert.Equal(t, []string{""}, *got)
	assert.Equal(t, StateInitialized, b.State())

	require.NoError(t, b.Mount())
	assert.Equal(t, []string{""}, *got, "second mount must not emit")
	assert.Equal(t, int64(1), b.Emitted())
}

func TestBox_InteractionsFollowBaseline(t *testing.T) {
	b := New()
	got := subscribe(t, b)
	require.NoError(t, b.Mount())

	texts := []string{"k", "ka", "kaf", "ka", "ka"}
	for _, txt := range texts {
		require.NoError(t, b.Input(txt))
	}

	assert.Equal(t, append([]string{""}, texts...), *got)
	assert.Len(t, *got, len(texts)+1)
	assert.Equal(t, StateActive, b.State())
	assert.Equal(t, "ka", b.Value())
}

func TestBox_DistinctPolicy(t *testing.T) {
	b := New(WithPolicy(PolicyDistinct))
	got := subscribe(t, b)
	require.NoError(t, b.Mount())

	for _, txt := range []string{"", "s", "s", "st", ""} {
		require.NoError(t, b.Input(txt))
	}

	assert.Equal(t, []string{"", "s", "st", ""}, *got)
	assert.Equal(t, StateActive, b.State())
}

func TestBox_MultipleSubscribers(t *testing.T) {
	b := New()
	first := subscribe(t, b)
	second := subscribe(t, b)

	require.NoError(t, b.Mount())
	require.NoError(t, b.Input("zk"))

	assert.Equal(t, []string{"", "zk"}, *first)
	assert.Equal(t, []string{"", "zk"}, *second)
}

func TestBox_FailingSubscriberIsIsolated(t *testing.T) {
	var reported []*event.ConsumerError
	b := New(WithChannelOptions(event.WithErrorReporter(func(e *event.ConsumerError) {
		reported = append(reported, e)
	})))
	b.Update().Subscribe(func(string) error { panic("view crashed") })
	got := subscribe(t, b)

	require.NoError(t, b.Mount())
	require.NoError(t, b.Input("x"))

	assert.Equal(t, []string{"", "x"}, *got)
	assert.Len(t, reported, 2)
}

func TestBox_Lifecycle(t *testing.T) {
	b := New()
	got := subscribe(t, b)

	assert.ErrorIs(t, b.Input("early"), ErrNotMounted)
	assert.Empty(t, *got)

	require.NoError(t, b.Mount())
	b.Destroy()
	b.Destroy()

	assert.Equal(t, StateDestroyed, b.State())
	assert.True(t, b.Update().Closed())
	assert.ErrorIs(t, b.Input("late"), ErrDestroyed)
	assert.ErrorIs(t, b.Mount(), ErrDestroyed)
	assert.Equal(t, []string{""}, *got)
}

func TestBox_RemountFreshInstance(t *testing.T) {
	old := New()
	require.NoError(t, old.Mount())
	require.NoError(t, old.Input("providers"))
	old.Destroy()

	fresh := New()
	got := subscribe(t, fresh)
	assert.Equal(t, StateUninitialized, fresh.State())

	require.NoError(t, fresh.Mount())
	assert.Equal(t, StateInitialized, fresh.State())
	assert.Equal(t, []string{""}, *got)
	assert.Equal(t, "", fresh.Value())
}

func TestBox_Clear(t *testing.T) {
	b := New()
	got := subscribe(t, b)
	require.NoError(t, b.Mount())
	require.NoError(t, b.Input("abc"))
	require.NoError(t, b.Clear())

	assert.Equal(t, []string{"", "abc", ""}, *got)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyEveryInteraction, false},
		{"every", PolicyEveryInteraction, false},
		{"distinct", PolicyDistinct, false},
		{"debounce", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithPolicy_UnknownFallsBackToEvery(t *testing.T) {
	b := New(WithPolicy("sometimes"))
	assert.Equal(t, PolicyEveryInteraction, b.Policy())

	got := subscribe(t, b)
	require.NoError(t, b.Mount())
	require.NoError(t, b.Input("a"))
	require.NoError(t, b.Input("a"))
	assert.Equal(t, []string{"", "a", "a"}, *got)

	assert.Equal(t, PolicyDistinct, New(WithPolicy(PolicyDistinct)).Policy())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "State(9)", State(9).String())
}
