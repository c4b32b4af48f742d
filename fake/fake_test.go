package fake

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestUUID(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	first := UUID(rng)
	if !pattern.MatchString(first) {
		t.Fatalf("not a v4 UUID: %q", first)
	}
	if second := UUID(rng); second == first {
		t.Fatal("consecutive UUIDs collided")
	}
}

func TestUUID_Deterministic(t *testing.T) {
	a := UUID(rand.New(rand.NewSource(9)))
	b := UUID(rand.New(rand.NewSource(9)))
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestIntRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		n := IntRange(rng, -5, 5)
		if n < -5 || n > 5 {
			t.Fatalf("draw %d outside [-5, 5]", n)
		}
	}
	if IntRange(rng, 7, 7) != 7 {
		t.Fatal("degenerate range must return lo")
	}
}

func TestFloatRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		f := FloatRange(rng, 1.5, 2.5)
		if f < 1.5 || f >= 2.5 {
			t.Fatalf("draw %v outside [1.5, 2.5)", f)
		}
	}
}

func TestBool_Probability(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	hits := 0
	for i := 0; i < 10000; i++ {
		if Bool(rng, 0.2) {
			hits++
		}
	}
	if hits < 1500 || hits > 2500 {
		t.Fatalf("p=0.2 produced %d/10000 hits", hits)
	}
	if Bool(rng, 0) {
		t.Fatal("p=0 returned true")
	}
	if !Bool(rng, 1) {
		t.Fatal("p=1 returned false")
	}
}

func TestEmail(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		email := Email(rng)
		if email != strings.ToLower(email) {
			t.Fatalf("email not lowercase: %q", email)
		}
		if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
			t.Fatalf("malformed email: %q", email)
		}
	}
}

func TestSentence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	s := Sentence(rng, 5)
	if !strings.HasSuffix(s, ".") {
		t.Fatalf("missing period: %q", s)
	}
	if got := len(strings.Fields(s)); got != 5 {
		t.Fatalf("expected 5 words, got %d in %q", got, s)
	}
	if s[:1] != strings.ToUpper(s[:1]) {
		t.Fatalf("not capitalized: %q", s)
	}

	if got := len(strings.Fields(Sentence(rng, 0))); got != 1 {
		t.Fatalf("zero-word request should yield one word, got %d", got)
	}
}

func TestTimestamp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	from := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		ts := Timestamp(rng, from, to)
		if ts.Before(from) || !ts.Before(to) {
			t.Fatalf("timestamp %v outside [%v, %v)", ts, from, to)
		}
		if ts.Location() != time.UTC {
			t.Fatalf("timestamp not UTC: %v", ts)
		}
	}

	if got := Timestamp(rng, to, from); !got.Equal(to) {
		t.Fatalf("inverted range should return from, got %v", got)
	}
}

func TestFullName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	name := FullName(rng)
	if len(strings.Fields(name)) != 2 {
		t.Fatalf("expected two parts, got %q", name)
	}
}
