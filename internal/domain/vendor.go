package domain

import (
	"encoding/json"
	"fmt"
)

// Vendor column names shared by the CSV and Redis vendor sources.
const (
	VendorFieldID           = "id"
	VendorFieldName         = "vendor_name"
	VendorFieldLocation     = "location"
	VendorFieldContact      = "contact"
	VendorFieldLink         = "link"
	VendorFieldMachineTypes = "machine_types"
)

// Vendor is a supplier record. Columns beyond the known ones are kept in Extra
// and emitted alongside them, so a vendor serializes as the row it was read from.
type Vendor struct {
	ID           string
	Name         string
	Location     string
	Contact      string
	Link         string
	MachineTypes string
	Extra        map[string]string
}

// VendorFromFields builds a vendor from a column->value mapping.
func VendorFromFields(fields map[string]string) Vendor {
	v := Vendor{}
	for k, val := range fields {
		switch k {
		case VendorFieldID:
			v.ID = val
		case VendorFieldName:
			v.Name = val
		case VendorFieldLocation:
			v.Location = val
		case VendorFieldContact:
			v.Contact = val
		case VendorFieldLink:
			v.Link = val
		case VendorFieldMachineTypes:
			v.MachineTypes = val
		default:
			if v.Extra == nil {
				v.Extra = make(map[string]string)
			}
			v.Extra[k] = val
		}
	}
	return v
}

// Fields returns the vendor as a column->value mapping.
func (v Vendor) Fields() map[string]string {
	m := make(map[string]string, 6+len(v.Extra))
	for k, val := range v.Extra {
		m[k] = val
	}
	m[VendorFieldID] = v.ID
	m[VendorFieldName] = v.Name
	m[VendorFieldLocation] = v.Location
	m[VendorFieldContact] = v.Contact
	m[VendorFieldLink] = v.Link
	m[VendorFieldMachineTypes] = v.MachineTypes
	return m
}

// MarshalJSON emits the vendor as a flat object.
func (v Vendor) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(v.Fields())
	if err != nil {
		return nil, fmt.Errorf("marshal vendor %s: %w", v.ID, err)
	}
	return data, nil
}

// UnmarshalJSON reads a flat object of string values.
func (v *Vendor) UnmarshalJSON(data []byte) error {
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("unmarshal vendor: %w", err)
	}
	*v = VendorFromFields(fields)
	return nil
}

// VendorTable is the vendor set keyed by id. Iteration follows table order.
type VendorTable struct {
	ids  []string
	byID map[string]Vendor
}

// NewVendorTable creates an empty table.
func NewVendorTable() VendorTable {
	return VendorTable{byID: make(map[string]Vendor)}
}

// Put stores a vendor. A repeated id replaces the earlier record but keeps its position.
func (t *VendorTable) Put(v Vendor) {
	if t.byID == nil {
		t.byID = make(map[string]Vendor)
	}
	if _, ok := t.byID[v.ID]; !ok {
		t.ids = append(t.ids, v.ID)
	}
	t.byID[v.ID] = v
}

// Get returns the vendor with the given id.
func (t VendorTable) Get(id string) (Vendor, bool) {
	v, ok := t.byID[id]
	return v, ok
}

// Len returns the number of vendors.
func (t VendorTable) Len() int { return len(t.ids) }

// All returns vendors in table order.
func (t VendorTable) All() []Vendor {
	out := make([]Vendor, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.byID[id])
	}
	return out
}
