package stackpool

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestBorrowEmpty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	s := Borrow()
	s.Push(1)
	s.Push(2)
	Release(s)
	for i := 0; i < 5; i++ {
		s = Borrow()
		if !s.Empty() {
			t.Errorf("borrowed stack should be empty, has %d entries", s.Size())
		}
		s.Push(i)
		Release(s)
	}
}

func TestBorrowConcurrently(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := Borrow()
			defer Release(s)
			for j := 0; j < n; j++ {
				s.Push(j)
			}
			if s.Size() != n {
				t.Errorf("stack shared between borrowers: expected %d entries, have %d", n, s.Size())
			}
		}(i)
	}
	wg.Wait()
	if Active() != 0 {
		t.Errorf("expected all stacks to be returned, %d still active", Active())
	}
}
