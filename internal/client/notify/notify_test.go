package notify

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FillsIDAndTime(t *testing.T) {
	n := New(VariantDefault, "Signed Out", "bye")

	_, err := uuid.Parse(n.ID)
	require.NoError(t, err)
	assert.False(t, n.CreatedAt.IsZero())
	assert.Equal(t, "Signed Out", n.Title)
	assert.False(t, n.IsDestructive())
	assert.True(t, Failure("Login Failed", "x").IsDestructive())
	assert.NotEqual(t, n.ID, Success("a", "b").ID)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[+] Welcome back!: Hello ana", Format(Success("Welcome back!", "Hello ana")))
	assert.Equal(t, "[!] Delete Failed: wrong password", Format(Failure("Delete Failed", "wrong password")))
	assert.Equal(t, "[+] Notice", Format(Success("Notice", "")))
}

func TestWriterNotifier_WritesOneLinePerNotification(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterNotifier(&buf)

	w.Notify(context.Background(), Success("A", "one"))
	w.Notify(context.Background(), Failure("B", "two"))

	assert.Equal(t, "[+] A: one\n[!] B: two\n", buf.String())
}

func TestRecorder_KeepsNewestWithinLimit(t *testing.T) {
	r := NewRecorder(2)
	ctx := context.Background()

	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(ctx, Success("1", ""))
	r.Notify(ctx, Success("2", ""))
	r.Notify(ctx, Success("3", ""))

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[0].Title)
	assert.Equal(t, "3", all[1].Title)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "3", last.Title)

	r.Reset()
	assert.Equal(t, 0, r.Len())
}

func TestRecorder_ConcurrentNotify(t *testing.T) {
	r := NewRecorder(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Notify(context.Background(), Success("x", ""))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, r.Len())
}

func TestFanout_DeliversToAllAndSkipsNil(t *testing.T) {
	a, b := NewRecorder(0), NewRecorder(0)
	var calls int
	f := Fanout{a, nil, b, NotifierFunc(func(context.Context, Notification) { calls++ })}

	f.Notify(context.Background(), Success("hi", ""))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, calls)
}
