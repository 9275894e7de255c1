package helper

import "testing"

func TestRotationRoundRobin(t *testing.T) {
	agents := []string{"a", "b", "c"}
	r := NewRotation(agents)

	for i := 0; i < 9; i++ {
		got := r.Next()
		want := agents[i%3]
		if got != want {
			t.Fatalf("call %d: got %q, want %q", i, got, want)
		}
	}
}

func TestRotationDefaults(t *testing.T) {
	r := NewRotation(nil)
	if r.Next() == "" {
		t.Fatal("default rotation returned empty user agent")
	}
}
