package recast_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/recast"
	"github.com/aretw0/recast/pkg/domain"
	"github.com/aretw0/recast/pkg/pattern"
	"github.com/aretw0/recast/pkg/schema"
)

func accessDescriptor(t *testing.T) schema.Descriptor {
	t.Helper()
	desc, err := schema.NewBuilder(`(?P<code>\d{3})\s+(?P<path>\S+)`).
		Field("code", domain.KindInt).
		Field("path", domain.KindString).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return desc
}

func TestRunner_SkipsNoMatchLines(t *testing.T) {
	eng := recast.New(recast.WithCache(pattern.NewCache()))
	runner := recast.NewRunner(eng, accessDescriptor(t))

	input := "200 /ok\n# comment line\n404 /missing\n"
	var records []domain.Record
	err := runner.Run(strings.NewReader(input), func(rec domain.Record) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("want 2 records, got %d", len(records))
	}
	if records[0]["code"] != 200 || records[1]["code"] != 404 {
		t.Errorf("unexpected records: %v", records)
	}
}

func TestRunner_StrictFailsOnNoMatch(t *testing.T) {
	runner := recast.NewRunner(nil, accessDescriptor(t))
	runner.Strict = true

	err := runner.Run(strings.NewReader("200 /ok\nbogus\n"), func(domain.Record) error { return nil })
	if !errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("want ErrNoMatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error must carry the line number: %v", err)
	}
}

func TestRunner_FieldErrorsAlwaysFatal(t *testing.T) {
	// A matching line that fails coercion is a descriptor bug, not noise;
	// it aborts even without Strict.
	desc, err := schema.NewBuilder(`(?P<code>\S+)`).Field("code", domain.KindInt).Build()
	if err != nil {
		t.Fatal(err)
	}
	runner := recast.NewRunner(nil, desc)

	err = runner.Run(strings.NewReader("200\nnot-a-number\n"), func(domain.Record) error { return nil })
	if !errors.Is(err, domain.ErrTypeMismatch) {
		t.Fatalf("want ErrTypeMismatch, got %v", err)
	}
}

func TestRunner_SinkErrorStops(t *testing.T) {
	runner := recast.NewRunner(nil, accessDescriptor(t))
	sinkErr := errors.New("sink full")

	calls := 0
	err := runner.Run(strings.NewReader("200 /a\n201 /b\n"), func(domain.Record) error {
		calls++
		return sinkErr
	})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("want sink error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("sink called %d times after failing", calls)
	}
}

func TestRunner_RunJSON(t *testing.T) {
	runner := recast.NewRunner(nil, accessDescriptor(t))

	var out strings.Builder
	if err := runner.RunJSON(strings.NewReader("200 /ok\n"), &out); err != nil {
		t.Fatalf("RunJSON failed: %v", err)
	}
	got := strings.TrimSpace(out.String())
	want := `{"code":200,"path":"/ok"}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
