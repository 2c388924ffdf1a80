package kvstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/grocerly/shopcore/lib/mylog"
)

func TestPersisterLastWriteWins(t *testing.T) {
	c := context.TODO()
	kv, cleanup, err := NewInMemoryKV(c)
	assert.NoError(t, err)
	defer cleanup()

	sut := NewPersister(kv, mylog.New("test"))

	// given: a burst of writes to the same key
	for i := 0; i < 100; i++ {
		sut.Store(c, "counter", i)
	}

	// when
	sut.Flush()

	// then: the newest snapshot is the one that landed
	value, exists, err := kv.Get(c, "counter")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "99", value)
}

func TestPersisterKeysAreIndependent(t *testing.T) {
	c := context.TODO()
	kv, cleanup, err := NewInMemoryKV(c)
	assert.NoError(t, err)
	defer cleanup()

	sut := NewPersister(kv, mylog.New("test"))

	for i := 0; i < 10; i++ {
		sut.Store(c, "left", fmt.Sprintf("l%d", i))
		sut.Store(c, "right", fmt.Sprintf("r%d", i))
	}
	sut.Flush()

	left, _, _ := kv.Get(c, "left")
	right, _, _ := kv.Get(c, "right")
	assert.Equal(t, `"l9"`, left)
	assert.Equal(t, `"r9"`, right)
}

func TestPersisterDelete(t *testing.T) {
	c := context.TODO()
	kv, cleanup, err := NewInMemoryKV(c)
	assert.NoError(t, err)
	defer cleanup()

	sut := NewPersister(kv, mylog.New("test"))

	sut.Store(c, "doomed", "value")
	sut.Flush()
	sut.Delete(c, "doomed")
	sut.Flush()

	_, exists, err := kv.Get(c, "doomed")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestPersisterWriteFailureIsDroppedNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := context.TODO()
	kv := NewMockKV(ctrl)

	// a single attempt, no retry
	kv.EXPECT().Set(gomock.Any(), "flaky", `"value"`).Return(fmt.Errorf("store down")).Times(1)

	sut := NewPersister(kv, mylog.New("test"))
	sut.Store(c, "flaky", "value")
	sut.Flush()
}

func TestPersisterUnmarshalableValueIsNeverWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := context.TODO()
	kv := NewMockKV(ctrl)

	// no expectations on the mock: the store must not be touched
	sut := NewPersister(kv, mylog.New("test"))
	sut.Store(c, "bad", func() {})
	sut.Flush()
}
