package convert

import "testing"

func TestGetLong(t *testing.T) {
	tests := []struct {
		value string
		found bool
		want  int
		res   Result
	}{
		{"100", true, 100, OK},
		{"-1", true, -1, OK},
		{"abc", true, 0, Invalid},
		{"", false, 0, Absent},
	}
	for _, tt := range tests {
		got, res := GetLong(tt.value, tt.found)
		if res != tt.res {
			t.Errorf("GetLong(%q, %v) result = %v, want %v", tt.value, tt.found, res, tt.res)
		}
		if res == OK && got != tt.want {
			t.Errorf("GetLong(%q, %v) = %d, want %d", tt.value, tt.found, got, tt.want)
		}
	}
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		value string
		found bool
		want  bool
		res   Result
	}{
		{"YES", true, true, OK},
		{"0", true, false, OK},
		{"1", true, true, OK},
		{"true", true, true, OK},
		{"off", true, false, OK},
		{"abc", true, false, Invalid},
		{"", false, false, Absent},
	}
	for _, tt := range tests {
		got, res := GetBool(tt.value, tt.found)
		if res != tt.res {
			t.Errorf("GetBool(%q, %v) result = %v, want %v", tt.value, tt.found, res, tt.res)
		}
		if res == OK && got != tt.want {
			t.Errorf("GetBool(%q, %v) = %v, want %v", tt.value, tt.found, got, tt.want)
		}
	}
}
