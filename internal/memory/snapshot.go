package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/consign/internal/domain"
)

// Snapshot is the JSON layout of a store:
//
//	{
//	  "shops": {"<shop uuid>": [{"code": "WH1", "multiple_shipping_supported": true}]},
//	  "inventory": [{"supplier": "WH1", "sku": "X1", "quantity": "3", "availability": "backorder"}],
//	  "digital": ["EBOOK-1"]
//	}
type Snapshot struct {
	Shops     map[string][]SnapshotWarehouse `json:"shops"`
	Inventory []SnapshotRecord               `json:"inventory"`
	Digital   []string                       `json:"digital"`
}

// SnapshotWarehouse is a warehouse entry in a Snapshot.
type SnapshotWarehouse struct {
	Code                      string `json:"code"`
	Name                      string `json:"name,omitempty"`
	MultipleShippingSupported bool   `json:"multiple_shipping_supported"`
}

// SnapshotRecord is a stock entry in a Snapshot. Availability defaults to
// "standard" when omitted.
type SnapshotRecord struct {
	Supplier      string          `json:"supplier"`
	SKU           string          `json:"sku"`
	Quantity      decimal.Decimal `json:"quantity"`
	Reserved      decimal.Decimal `json:"reserved"`
	Availability  string          `json:"availability,omitempty"`
	Disabled      bool            `json:"disabled,omitempty"`
	AvailableFrom *time.Time      `json:"available_from,omitempty"`
	AvailableTo   *time.Time      `json:"available_to,omitempty"`
	ReleaseDate   *time.Time      `json:"release_date,omitempty"`
}

// LoadSnapshot decodes a Snapshot from r into a new Store.
func LoadSnapshot(r io.Reader) (*Store, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, "memory.load_snapshot", "malformed snapshot")
	}
	return snap.Store()
}

// LoadSnapshotFile reads a Snapshot from the file at path.
func LoadSnapshotFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return LoadSnapshot(f)
}

// Store builds a Store from the snapshot.
func (snap *Snapshot) Store() (*Store, error) {
	const op = "memory.snapshot"
	s := NewStore()

	for id, warehouses := range snap.Shops {
		shopID, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.Errorf(domain.EINVALID, op, "invalid shop id %q", id)
		}
		for _, wh := range warehouses {
			if wh.Code == "" {
				return nil, domain.Errorf(domain.EINVALID, op, "shop %s has a warehouse without a code", id)
			}
			s.AddWarehouse(shopID, domain.Warehouse{
				Code:                      wh.Code,
				Name:                      wh.Name,
				MultipleShippingSupported: wh.MultipleShippingSupported,
			})
		}
	}

	for i, rec := range snap.Inventory {
		if rec.Supplier == "" || rec.SKU == "" {
			return nil, domain.Errorf(domain.EINVALID, op, "inventory[%d]: supplier and sku are required", i)
		}
		mode := domain.AvailabilityStandard
		if rec.Availability != "" {
			m, err := domain.ParseAvailabilityMode(rec.Availability)
			if err != nil {
				return nil, domain.Errorf(domain.EINVALID, op, "inventory[%d]: unknown availability %q", i, rec.Availability)
			}
			mode = m
		}
		s.PutInventory(domain.InventoryRecord{
			Supplier:      rec.Supplier,
			SKU:           rec.SKU,
			Quantity:      rec.Quantity,
			Reserved:      rec.Reserved,
			Mode:          mode,
			Disabled:      rec.Disabled,
			AvailableFrom: rec.AvailableFrom,
			AvailableTo:   rec.AvailableTo,
			ReleaseDate:   rec.ReleaseDate,
		})
	}

	for _, sku := range snap.Digital {
		s.SetDigital(sku, true)
	}

	return s, nil
}
