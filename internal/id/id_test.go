package id

import (
	"regexp"
	"strings"
	"sync"
	"testing"
)

// --- UUID Tests ---

func TestUUID_Format(t *testing.T) {
	id := UUID()

	// UUID v4 format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
	uuidRegex := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	if !uuidRegex.MatchString(id) {
		t.Errorf("UUID() = %q, does not match UUID v4 format", id)
	}
}

func TestUUID_Length(t *testing.T) {
	id := UUID()
	if len(id) != 36 {
		t.Errorf("UUID() length = %d, want 36", len(id))
	}
}

func TestUUID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := UUID()
		if seen[id] {
			t.Fatalf("UUID() generated duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestUUID_Concurrent(t *testing.T) {
	const goroutines = 50
	const perGoroutine = 100

	results := make(chan string, goroutines*perGoroutine)
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				results <- UUID()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, goroutines*perGoroutine)
	for id := range results {
		if seen[id] {
			t.Fatalf("UUID() concurrent duplicate: %s", id)
		}
		seen[id] = true
	}
}

// --- Short Tests ---

func TestShort_Length(t *testing.T) {
	id := Short()
	if len(id) != 16 {
		t.Errorf("Short() length = %d, want 16", len(id))
	}
}

func TestShort_HexOnly(t *testing.T) {
	hexRegex := regexp.MustCompile(`^[0-9a-f]{16}$`)
	for i := 0; i < 100; i++ {
		id := Short()
		if !hexRegex.MatchString(id) {
			t.Errorf("Short() = %q, not valid hex", id)
		}
	}
}

func TestShort_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := Short()
		if seen[id] {
			t.Fatalf("Short() generated duplicate: %s", id)
		}
		seen[id] = true
	}
}

// --- Resource Tests ---

func TestResource_Format(t *testing.T) {
	resourceRegex := regexp.MustCompile(`^req_[0-9a-z]{9}$`)
	for i := 0; i < 100; i++ {
		id := Resource()
		if !resourceRegex.MatchString(id) {
			t.Errorf("Resource() = %q, want req_ prefix plus 9 base36 chars", id)
		}
	}
}

func TestResource_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := Resource()
		if seen[id] {
			t.Fatalf("Resource() generated duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestResource_Concurrent(t *testing.T) {
	const goroutines = 50
	const perGoroutine = 100

	results := make(chan string, goroutines*perGoroutine)
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				results <- Resource()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, goroutines*perGoroutine)
	for id := range results {
		if seen[id] {
			t.Fatalf("Resource() concurrent duplicate: %s", id)
		}
		seen[id] = true
	}
}

// --- Source Tests ---

func TestRand_ImplementsSource(t *testing.T) {
	var src Source = Rand{}
	a := src.NextID()
	b := src.NextID()
	if a == b {
		t.Errorf("Rand.NextID() returned the same id twice: %s", a)
	}
	if !strings.HasPrefix(a, "req_") {
		t.Errorf("Rand.NextID() = %q, want req_ prefix", a)
	}
}

func TestSequence_Deterministic(t *testing.T) {
	src := &Sequence{Prefix: "res"}
	want := []string{"res_1", "res_2", "res_3"}
	for i, w := range want {
		if got := src.NextID(); got != w {
			t.Errorf("Sequence.NextID() call %d = %q, want %q", i+1, got, w)
		}
	}
}

func TestSequence_IndependentInstances(t *testing.T) {
	a := &Sequence{Prefix: "a"}
	b := &Sequence{Prefix: "b"}
	a.NextID()
	a.NextID()
	if got := b.NextID(); got != "b_1" {
		t.Errorf("Sequence instances share state: got %q, want b_1", got)
	}
}

// --- Benchmarks ---

func BenchmarkUUID(b *testing.B) {
	for b.Loop() {
		UUID()
	}
}

func BenchmarkShort(b *testing.B) {
	for b.Loop() {
		Short()
	}
}

func BenchmarkResource(b *testing.B) {
	for b.Loop() {
		Resource()
	}
}
