package objectspace_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpare/objectspace"
)

type Task struct {
	Name     string
	Finished bool
	Start    int64
	End      int64
}

func TestWriteAndTryTake(t *testing.T) {
	s := objectspace.New()
	ctx := context.Background()

	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "build"}))

	task, ok, err := objectspace.TryTake[Task](ctx, s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "build", task.Name)

	_, ok, err = objectspace.TryTake[Task](ctx, s)
	require.NoError(t, err)
	assert.False(t, ok, "a second TryTake must not see the already-taken value")
}

func TestTryReadDoesNotRemove(t *testing.T) {
	s := objectspace.New()
	ctx := context.Background()
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "lint"}))

	first, ok, err := objectspace.TryRead[Task](ctx, s)
	require.NoError(t, err)
	require.True(t, ok)

	second, ok, err := objectspace.TryRead[Task](ctx, s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestHeterogeneousTypesAreDisjoint(t *testing.T) {
	s := objectspace.New()
	ctx := context.Background()
	type Ping struct{ N int }

	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "deploy"}))
	require.NoError(t, objectspace.Write(ctx, s, Ping{N: 1}))

	tasks, err := objectspace.ReadAll[Task](ctx, s)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	pings, err := objectspace.ReadAll[Ping](ctx, s)
	require.NoError(t, err)
	assert.Len(t, pings, 1)
}

func TestByValueMatchesOnlyEqualLeaf(t *testing.T) {
	s := objectspace.New()
	ctx := context.Background()
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "a", Finished: true}))
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "b", Finished: false}))

	task, err := objectspace.TakeByValue[Task](ctx, s, "Finished", true)
	require.NoError(t, err)
	assert.Equal(t, "a", task.Name)

	remaining, err := objectspace.ReadAll[Task](ctx, s)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].Name)
}

func TestByValueUnqualifiedFieldName(t *testing.T) {
	s := objectspace.New()
	ctx := context.Background()
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "deploy", Finished: false}))

	task, ok, err := objectspace.TryReadByValue[Task](ctx, s, "finished", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "deploy", task.Name)
}

func TestByRangeHalfOpenInterval(t *testing.T) {
	s := objectspace.New()
	ctx := context.Background()
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "low", Start: 0}))
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "mid", Start: 5}))
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "high", Start: 10}))

	matches, err := objectspace.ReadAllByRange[Task](ctx, s, "Start", 0, 10)
	require.NoError(t, err)
	require.Len(t, matches, 2, "upper bound 10 is exclusive")
	assert.Equal(t, "low", matches[0].Name)
	assert.Equal(t, "mid", matches[1].Name)
}

func TestTakeAllByRangeRemovesOnlyMatches(t *testing.T) {
	s := objectspace.New()
	ctx := context.Background()
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "a", Start: 1}))
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "b", Start: 50}))

	taken, err := objectspace.TakeAllByRange[Task](ctx, s, "Start", 0, 10)
	require.NoError(t, err)
	require.Len(t, taken, 1)
	assert.Equal(t, "a", taken[0].Name)

	remaining, err := objectspace.ReadAll[Task](ctx, s)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].Name)
}

func TestBlockingTakeWakesOnWrite(t *testing.T) {
	s := objectspace.New()
	ctx := context.Background()
	done := make(chan Task, 1)
	go func() {
		task, err := objectspace.Take[Task](ctx, s)
		if err != nil {
			t.Error(err)
			return
		}
		done <- task
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, objectspace.Write(ctx, s, Task{Name: "arrived"}))

	select {
	case task := <-done:
		assert.Equal(t, "arrived", task.Name)
	case <-time.After(time.Second):
		t.Fatal("blocking Take did not wake within 1s of a matching write")
	}
}

func TestReadByRangeContextTimeout(t *testing.T) {
	s := objectspace.New()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := objectspace.ReadByRange[Task](ctx, s, "Start", 100, 200)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCloseUnblocksWaiters(t *testing.T) {
	s := objectspace.New()
	errCh := make(chan error, 1)
	go func() {
		_, err := objectspace.Take[Task](context.Background(), s)
		errCh <- err
	}()
	time.Sleep(20 * time.Millisecond)
	s.Close()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, objectspace.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("Close did not release a pending Take")
	}
}

func TestWriteUnsupportedTypeWrapsErrEncoding(t *testing.T) {
	s := objectspace.New()
	type bad struct{ Ch chan int }

	err := objectspace.Write(context.Background(), s, bad{Ch: make(chan int)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, objectspace.ErrEncoding))
}
