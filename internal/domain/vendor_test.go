package domain

import (
	"encoding/json"
	"testing"
)

func TestVendorFromFields_KeepsExtraColumns(t *testing.T) {
	v := VendorFromFields(map[string]string{
		"id":            "v1",
		"vendor_name":   "Kovai Pack Systems",
		"location":      "Coimbatore",
		"machine_types": "packing, filling",
		"gst_number":    "33ABCDE1234F1Z5",
	})

	if v.ID != "v1" || v.Name != "Kovai Pack Systems" || v.Location != "Coimbatore" {
		t.Errorf("unexpected vendor: %+v", v)
	}
	if v.Extra["gst_number"] != "33ABCDE1234F1Z5" {
		t.Errorf("expected extra column to be kept, got %v", v.Extra)
	}
}

func TestVendor_MarshalJSON_Flat(t *testing.T) {
	v := Vendor{ID: "v2", Name: "Salem Seal Works", Extra: map[string]string{"rating": "4.5"}}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["id"] != "v2" || m["vendor_name"] != "Salem Seal Works" || m["rating"] != "4.5" {
		t.Errorf("unexpected mapping: %v", m)
	}
	if _, ok := m["contact"]; !ok {
		t.Error("expected known columns to be present even when empty")
	}
}

func TestVendorTable_OrderAndDuplicates(t *testing.T) {
	table := NewVendorTable()
	table.Put(Vendor{ID: "v2", Name: "first v2"})
	table.Put(Vendor{ID: "v1", Name: "v1"})
	table.Put(Vendor{ID: "v2", Name: "second v2"})

	if table.Len() != 2 {
		t.Fatalf("expected 2 vendors, got %d", table.Len())
	}
	all := table.All()
	if all[0].ID != "v2" || all[1].ID != "v1" {
		t.Errorf("expected first-seen order [v2 v1], got [%s %s]", all[0].ID, all[1].ID)
	}
	if all[0].Name != "second v2" {
		t.Errorf("expected last row to win, got %q", all[0].Name)
	}
	if _, ok := table.Get("v9"); ok {
		t.Error("expected v9 to be missing")
	}
}

func TestVendorTable_ZeroValuePut(t *testing.T) {
	var table VendorTable
	table.Put(Vendor{ID: "v1"})
	if _, ok := table.Get("v1"); !ok {
		t.Error("expected zero-value table to accept vendors")
	}
}
