package model

import "testing"

func TestValidEventStatus(t *testing.T) {
	for _, s := range EventStatuses {
		if !ValidEventStatus(s) {
			t.Errorf("ValidEventStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "PLANNING", "done", "in preparation"} {
		if ValidEventStatus(s) {
			t.Errorf("ValidEventStatus(%q) = true, want false", s)
		}
	}
}

func TestValidStaffStatus(t *testing.T) {
	for _, s := range StaffStatuses {
		if !ValidStaffStatus(s) {
			t.Errorf("ValidStaffStatus(%q) = false, want true", s)
		}
	}
	if ValidStaffStatus("retired") {
		t.Error("ValidStaffStatus(\"retired\") = true, want false")
	}
}

func TestInventoryItemLowStock(t *testing.T) {
	tests := []struct {
		name    string
		current int
		minimum int
		want    bool
	}{
		{"above minimum", 20, 10, false},
		{"at minimum", 10, 10, true},
		{"below minimum", 3, 10, true},
		{"zero stock", 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := InventoryItem{CurrentStock: tt.current, MinimumStock: tt.minimum}
			if got := it.LowStock(); got != tt.want {
				t.Errorf("LowStock() = %v, want %v", got, tt.want)
			}
		})
	}
}
