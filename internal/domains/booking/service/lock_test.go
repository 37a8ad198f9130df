package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesOneKey(t *testing.T) {
	locks := newKeyedMutex()

	const goroutines = 50

	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			unlock := locks.Lock("booking-1")
			defer unlock()

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyedMutex_ReleasedEntriesAreDropped(t *testing.T) {
	locks := newKeyedMutex()

	unlock1 := locks.Lock("booking-1")
	unlock2 := locks.Lock("booking-2")

	assert.Equal(t, 2, locks.size())

	unlock1()
	assert.Equal(t, 1, locks.size())

	unlock2()
	assert.Equal(t, 0, locks.size())
}

func TestKeyedMutex_ContendedEntrySurvivesUntilLastRelease(t *testing.T) {
	locks := newKeyedMutex()

	unlock := locks.Lock("booking-1")

	acquired := make(chan func())
	go func() {
		acquired <- locks.Lock("booking-1")
	}()

	// The waiter keeps the entry referenced across the first release.
	unlock()

	secondUnlock := <-acquired
	assert.Equal(t, 1, locks.size())

	secondUnlock()
	assert.Equal(t, 0, locks.size())
}
