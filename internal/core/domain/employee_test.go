package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{"5200", 520000, false},
		{"5200.5", 520050, false},
		{"5200.50", 520050, false},
		{"0.07", 7, false},
		{"-120.25", -12025, false},
		{"5200.505", 0, true},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseMoney(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMoney(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMoney(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	e := Employee{ID: 1, Name: "Lina", Salary: 520050}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `"salary":5200.50`; !strings.Contains(string(b), want) {
		t.Fatalf("expected %s in %s", want, b)
	}

	var back Employee
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Salary != e.Salary {
		t.Fatalf("salary changed across round trip: %d vs %d", back.Salary, e.Salary)
	}
}
