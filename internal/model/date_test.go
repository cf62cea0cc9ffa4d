package model

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.January, 30)

	if got := d.AddDays(3); got.String() != "2026-02-02" {
		t.Errorf("AddDays(3) = %s, want 2026-02-02", got)
	}
	if got := d.AddDays(-30); got.String() != "2025-12-31" {
		t.Errorf("AddDays(-30) = %s, want 2025-12-31", got)
	}
	if got := d.DaysUntil(d.AddDays(45)); got != 45 {
		t.Errorf("DaysUntil = %d, want 45", got)
	}
	if got := d.DaysUntil(d.AddDays(-7)); got != -7 {
		t.Errorf("DaysUntil backwards = %d, want -7", got)
	}
}

func TestDateAcrossLeapDay(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	if got := d.AddDays(1).String(); got != "2024-02-29" {
		t.Errorf("got %s, want 2024-02-29", got)
	}
	if got := d.DaysUntil(NewDate(2024, time.March, 1)); got != 2 {
		t.Errorf("DaysUntil = %d, want 2", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-26")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.August || d.Day() != 26 {
		t.Errorf("parsed %s", d)
	}

	if _, err := ParseDate("26/08/2026"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-03-05"` {
		t.Errorf("marshal = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip: %s != %s", back, d)
	}
}

func TestDateJSONMalformed(t *testing.T) {
	for _, raw := range []string{`"2024"`, `""`, `"x"`, `"2026-13-99"`, `42`} {
		var d Date
		if err := json.Unmarshal([]byte(raw), &d); err == nil {
			t.Errorf("unmarshal %s: expected an error", raw)
		}
	}
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("null should decode to the zero date, got %s", d)
	}
}

func TestDateJSONTimestamp(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-03-05T00:00:00Z"`), &d); err != nil {
		t.Fatalf("unmarshal timestamp: %v", err)
	}
	if d.String() != "2026-03-05" {
		t.Errorf("got %s, want 2026-03-05", d)
	}
}

func TestMinDate(t *testing.T) {
	a := NewDate(2026, time.January, 1)
	b := NewDate(2026, time.June, 1)
	if got := MinDate(a, b); !got.Equal(a) {
		t.Errorf("MinDate = %s, want %s", got, a)
	}
	if got := MinDate(b, a); !got.Equal(a) {
		t.Errorf("MinDate reversed = %s, want %s", got, a)
	}
}
