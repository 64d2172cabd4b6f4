package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/model"
)

func newSeeded(t *testing.T) *Store {
	t.Helper()
	s, err := New(Seed()...)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return s
}

func TestStoreSeedOrder(t *testing.T) {
	s := newSeeded(t)
	got := s.List()
	if len(got) != 2 || s.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	want := []model.Product{
		{ID: 1, Name: "Basmati Rice", Category: "Rice", Price: 85.0, Stock: 100},
		{ID: 2, Name: "Sunflower Oil", Category: "Oil", Price: 180.0, Stock: 50},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("product %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStoreGet(t *testing.T) {
	s := newSeeded(t)
	p, err := s.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Sunflower Oil" || p.Price != 180.0 || p.Stock != 50 {
		t.Fatalf("unexpected: %+v", p)
	}
	if _, err := s.Get(999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestStoreListIsCopy(t *testing.T) {
	s := newSeeded(t)
	l := s.List()
	l[0].Stock = 0
	l[0].Name = "changed"
	p, _ := s.Get(1)
	if p.Stock != 100 || p.Name != "Basmati Rice" {
		t.Fatalf("store mutated through List: %+v", p)
	}
}

func TestStoreRejectsDuplicateAndInvalid(t *testing.T) {
	if _, err := New(Seed()[0], Seed()[0]); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if _, err := New(model.Product{ID: 3, Name: "Salt", Price: -2}); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	s, err := New()
	if err != nil || s.Len() != 0 {
		t.Fatalf("empty store: %v", err)
	}
}

func TestStoreConcurrentReads(t *testing.T) {
	s := newSeeded(t)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		id := i%2 + 1
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Get(id); err != nil {
				t.Errorf("get %d: %v", id, err)
			}
			if n := len(s.List()); n != 2 {
				t.Errorf("list len %d", n)
			}
		}()
	}
	wg.Wait()
}
